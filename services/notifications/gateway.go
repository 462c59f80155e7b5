package notifications

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/dokanbaki/services/notifications Sender

// Sender delivers a message on one channel and reports the outcome
type Sender interface {
	SendSMS(ctx context.Context, to, body string) error
	SendWhatsApp(ctx context.Context, to, body string) error
}

// Dispatcher hands a message off for delivery without waiting for it
type Dispatcher interface {
	Dispatch(ctx context.Context, msg models.Message)
}
