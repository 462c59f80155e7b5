package ledger

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// LedgerRepo represents the transaction storage used by the ledger
type LedgerRepo interface {
	ListByShop(ctx context.Context, shopID string) ([]models.Transaction, error)
	ListByCustomer(ctx context.Context, shopID, customerName string) ([]models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
	DeleteByCustomer(ctx context.Context, shopID, customerName string) (int, error)
}
