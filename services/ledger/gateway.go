package ledger

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// MessageGW delivers customer messages. Dispatch never blocks on delivery and never fails the caller.
type MessageGW interface {
	Dispatch(ctx context.Context, msg models.Message)
}
