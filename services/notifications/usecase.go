package notifications

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dokanbaki/services/notifications NotificationUC

// NotificationUC represents the shop notification usecase interface
type NotificationUC interface {
	List(ctx context.Context, shopID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, shopID, id string) (*models.Notification, error)

	// CheckOverdue reminds customers whose dues passed their due date before today
	CheckOverdue(ctx context.Context, today string) (*models.OverdueReport, error)
}
