package repository

import (
	"context"
	"fmt"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// PaymentRepo implements billing.PaymentRepo over the record store
type PaymentRepo struct {
	store jsondb.Store
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(store jsondb.Store) *PaymentRepo {
	return &PaymentRepo{store: store}
}

// CreatePayment stores a payment and fills in its id and createdAt
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	rec, err := jsondb.Encode(payment)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(ctx, jsondb.Payments, rec)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return jsondb.Decode(stored, payment)
}

// GetPaymentByID returns the payment, or nil when the id is unknown
func (r *PaymentRepo) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	rec, err := r.store.FindOne(ctx, jsondb.Payments, jsondb.Matcher{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return decodePayment(rec)
}

// GetPaymentByTransactionID returns the payment recorded for a provider
// transaction id, or nil when there is none
func (r *PaymentRepo) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	rec, err := r.store.FindOne(ctx, jsondb.Payments, jsondb.Matcher{"transactionId": transactionID})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return decodePayment(rec)
}

// UpdatePaymentStatus sets the status. It returns nil, nil for an unknown id.
func (r *PaymentRepo) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	rec, err := r.store.Update(ctx, jsondb.Payments, id, jsondb.Record{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return decodePayment(rec)
}

// ListPayments returns every payment in submission order
func (r *PaymentRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	records, err := r.store.Get(ctx, jsondb.Payments)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return jsondb.DecodeAll[models.Payment](records)
}

func decodePayment(rec jsondb.Record) (*models.Payment, error) {
	if rec == nil {
		return nil, nil
	}
	var payment models.Payment
	if err := jsondb.Decode(rec, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
