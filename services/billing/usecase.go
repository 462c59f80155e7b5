package billing

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dokanbaki/services/billing BillingUC,AdminUC

// BillingUC represents the subscription usecase interface used by shop owners
type BillingUC interface {
	Catalog() models.PlanCatalog
	Quote(plan models.Plan, billing string) (*models.Quote, error)
	SubmitPayment(ctx context.Context, userID string, req *models.PaymentSubmission) (*models.Payment, error)
	ConfirmGatewayPayment(ctx context.Context, req *models.GatewayConfirmation) (*models.Payment, error)
}

// AdminUC represents the super admin console usecase interface
type AdminUC interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	ApprovePayment(ctx context.Context, id string) (*models.Payment, error)
	RejectPayment(ctx context.Context, id string) (*models.Payment, error)
	UserStats(ctx context.Context) ([]models.UserStats, error)
	LiveUsers(ctx context.Context) (int, error)
}
