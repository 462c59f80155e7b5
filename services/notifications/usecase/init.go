package usecase

import (
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/notifications"
)

// defaultSendLimit bounds concurrent reminder sends in one overdue run
const defaultSendLimit = 8

// NotificationUC implements the notifications.NotificationUC interface
type NotificationUC struct {
	notificationRepo notifications.NotificationRepo
	dueRepo          notifications.DueRepo
	sender           notifications.Sender
	sendLimit        int
	now              func() time.Time
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	notificationRepo notifications.NotificationRepo,
	dueRepo notifications.DueRepo,
	sender notifications.Sender,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		dueRepo:          dueRepo,
		sender:           sender,
		sendLimit:        defaultSendLimit,
		now:              models.Now,
	}
}
