package ledger

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dokanbaki/services/ledger LedgerUC

// LedgerUC represents the shop ledger usecase interface. Every method is scoped to one shop.
type LedgerUC interface {
	// balances
	CustomerBalances(ctx context.Context, shopID string) ([]models.CustomerDue, error)
	Customers(ctx context.Context, shopID string) ([]models.CustomerDue, error)
	DueList(ctx context.Context, shopID string) ([]models.CustomerDue, error)
	Search(ctx context.Context, shopID, query string) ([]models.CustomerDue, error)
	Summary(ctx context.Context, shopID string) (*models.ShopSummary, error)

	// customer history
	CustomerLedger(ctx context.Context, shopID, customerName string) (*models.CustomerLedger, error)
	DeleteCustomer(ctx context.Context, shopID, customerName string) error

	// entries
	AddDue(ctx context.Context, shopID string, req *models.EntryRequest) (*models.Transaction, error)
	AddPayment(ctx context.Context, shopID string, req *models.EntryRequest) (*models.Transaction, error)
}
