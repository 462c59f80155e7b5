package gateway

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/utils"
)

// LogSender is a Sender that writes outbound messages to the log instead of a provider
type LogSender struct{}

// NewLogSender creates a logging sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// SendSMS logs an SMS
func (s *LogSender) SendSMS(ctx context.Context, to, body string) error {
	logger.Info("SMS sent",
		logger.String("to", utils.MaskMobile(to)),
		logger.Int("length", len(body)))
	return nil
}

// SendWhatsApp logs a WhatsApp message
func (s *LogSender) SendWhatsApp(ctx context.Context, to, body string) error {
	logger.Info("WhatsApp message sent",
		logger.String("to", utils.MaskMobile(to)),
		logger.Int("length", len(body)))
	return nil
}
