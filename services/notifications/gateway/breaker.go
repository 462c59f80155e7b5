package gateway

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/circuitbreaker"
	"github.com/piresc/dokanbaki/services/notifications"
)

// BreakerSender guards each channel of a Sender with its own circuit breaker
type BreakerSender struct {
	next     notifications.Sender
	sms      *circuitbreaker.CircuitBreaker
	whatsapp *circuitbreaker.CircuitBreaker
}

// NewBreakerSender wraps next
func NewBreakerSender(next notifications.Sender) *BreakerSender {
	return &BreakerSender{
		next:     next,
		sms:      circuitbreaker.New(circuitbreaker.DefaultConfig("sms")),
		whatsapp: circuitbreaker.New(circuitbreaker.DefaultConfig("whatsapp")),
	}
}

// SendSMS sends through the SMS breaker
func (s *BreakerSender) SendSMS(ctx context.Context, to, body string) error {
	return s.sms.Execute(ctx, func(ctx context.Context) error {
		return s.next.SendSMS(ctx, to, body)
	})
}

// SendWhatsApp sends through the WhatsApp breaker
func (s *BreakerSender) SendWhatsApp(ctx context.Context, to, body string) error {
	return s.whatsapp.Execute(ctx, func(ctx context.Context) error {
		return s.next.SendWhatsApp(ctx, to, body)
	})
}
