package notifications

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// NotificationRepo represents the notification storage
type NotificationRepo interface {
	ListByShop(ctx context.Context, shopID string) ([]models.Notification, error)
	GetByID(ctx context.Context, shopID, id string) (*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
}

// DueRepo reads DUE transactions across every shop
type DueRepo interface {
	ListDues(ctx context.Context) ([]models.Transaction, error)
	MarkReminded(ctx context.Context, transactionID, date string) error
}
