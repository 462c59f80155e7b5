package billing

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// PaymentRepo represents the subscription payment storage
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
}

// AccountRepo reads and updates subscriber accounts
type AccountRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ShopRepo lists a subscriber's shops
type ShopRepo interface {
	ListShopsByOwner(ctx context.Context, ownerID string) ([]models.Shop, error)
}

// LedgerRepo lists a shop's transactions
type LedgerRepo interface {
	ListByShop(ctx context.Context, shopID string) ([]models.Transaction, error)
}
