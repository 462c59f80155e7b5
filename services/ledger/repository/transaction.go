package repository

import (
	"context"
	"fmt"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// TransactionRepo implements the ledger repository over the record store
type TransactionRepo struct {
	store jsondb.Store
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(store jsondb.Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// ListByShop returns every transaction of a shop in insertion order
func (r *TransactionRepo) ListByShop(ctx context.Context, shopID string) ([]models.Transaction, error) {
	records, err := r.store.Find(ctx, jsondb.Transactions, jsondb.Matcher{"shopId": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return jsondb.DecodeAll[models.Transaction](records)
}

// ListByCustomer returns the transactions of one customer of a shop
func (r *TransactionRepo) ListByCustomer(ctx context.Context, shopID, customerName string) ([]models.Transaction, error) {
	records, err := r.store.Find(ctx, jsondb.Transactions, jsondb.Matcher{
		"shopId":       shopID,
		"customerName": customerName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list customer transactions: %w", err)
	}
	return jsondb.DecodeAll[models.Transaction](records)
}

// Create stores tx and fills in its generated id and createdAt
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	rec, err := jsondb.Encode(tx)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(ctx, jsondb.Transactions, rec)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return jsondb.Decode(stored, tx)
}

// DeleteByCustomer removes every transaction of one customer of a shop
func (r *TransactionRepo) DeleteByCustomer(ctx context.Context, shopID, customerName string) (int, error) {
	n, err := r.store.Delete(ctx, jsondb.Transactions, jsondb.Matcher{
		"shopId":       shopID,
		"customerName": customerName,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete customer transactions: %w", err)
	}
	return n, nil
}
