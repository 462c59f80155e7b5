package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dokanbaki/internal/pkg/circuitbreaker"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/pkg/retry"
	"github.com/piresc/dokanbaki/services/notifications"
	"github.com/piresc/dokanbaki/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliver(t *testing.T) {
	tests := []struct {
		name      string
		msg       models.Message
		mockSetup func(m *mocks.MockSender)
		wantErr   error
	}{
		{
			name: "sms",
			msg:  models.Message{Channel: models.ChannelSMS, To: "01711111111", Body: "otp"},
			mockSetup: func(m *mocks.MockSender) {
				m.EXPECT().SendSMS(gomock.Any(), "01711111111", "otp").Return(nil)
			},
		},
		{
			name: "whatsapp",
			msg:  models.Message{Channel: models.ChannelWhatsApp, To: "01711111111", Body: "due"},
			mockSetup: func(m *mocks.MockSender) {
				m.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "due").Return(nil)
			},
		},
		{
			name:      "unknown channel",
			msg:       models.Message{Channel: "pigeon"},
			mockSetup: func(m *mocks.MockSender) {},
			wantErr:   notifications.ErrUnknownChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mocks.NewMockSender(ctrl)
			tt.mockSetup(sender)

			err := Deliver(context.Background(), sender, tt.msg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDirectDispatcher_RetriesUntilDelivered(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	gomock.InOrder(
		sender.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "hello").Return(errors.New("timeout")),
		sender.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "hello").Return(nil),
	)
	d := NewDirectDispatcher(sender)
	d.retry = retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}

	// Act
	d.Dispatch(context.Background(), models.Message{Channel: models.ChannelWhatsApp, To: "01711111111", Body: "hello"})

	// Assert
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}

type recordingPublisher struct {
	topic string
	msg   interface{}
	err   error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topic = topic
	p.msg = message
	return p.err
}

type recordingDispatcher struct {
	msgs []models.Message
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg models.Message) {
	d.msgs = append(d.msgs, msg)
}

func TestQueueDispatcher(t *testing.T) {
	msg := models.Message{Channel: models.ChannelSMS, To: "01711111111", Body: "otp"}

	t.Run("publishes to topic", func(t *testing.T) {
		pub := &recordingPublisher{}
		fallback := &recordingDispatcher{}

		NewQueueDispatcher(pub, "khata.messages", fallback).Dispatch(context.Background(), msg)

		assert.Equal(t, "khata.messages", pub.topic)
		assert.Equal(t, msg, pub.msg)
		assert.Empty(t, fallback.msgs)
	})

	t.Run("falls back when publish fails", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("nsqd unreachable")}
		fallback := &recordingDispatcher{}

		NewQueueDispatcher(pub, "khata.messages", fallback).Dispatch(context.Background(), msg)

		assert.Equal(t, []models.Message{msg}, fallback.msgs)
	})
}

func TestMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	handle := MessageHandler(sender)

	body, err := json.Marshal(models.Message{Channel: models.ChannelWhatsApp, To: "01711111111", Body: "due"})
	require.NoError(t, err)

	sender.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "due").Return(nil)
	assert.NoError(t, handle(body))

	sender.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "due").Return(errors.New("provider down"))
	assert.Error(t, handle(body), "failed delivery is requeued")

	assert.NoError(t, handle([]byte("{not json")), "malformed body is dropped")
	assert.NoError(t, handle([]byte(`{"channel":"fax","to":"1"}`)), "unknown channel is dropped")
}

func TestLogSender(t *testing.T) {
	s := NewLogSender()
	assert.NoError(t, s.SendSMS(context.Background(), "01711111111", "otp"))
	assert.NoError(t, s.SendWhatsApp(context.Background(), "01711111111", "due"))
}

func TestBreakerSender_OpensAfterFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSender(ctrl)
	next.EXPECT().SendWhatsApp(gomock.Any(), "01711111111", "x").Return(errors.New("down")).Times(5)
	next.EXPECT().SendSMS(gomock.Any(), "01711111111", "otp").Return(nil)
	s := NewBreakerSender(next)

	for i := 0; i < 5; i++ {
		assert.Error(t, s.SendWhatsApp(context.Background(), "01711111111", "x"))
	}

	assert.ErrorIs(t, s.SendWhatsApp(context.Background(), "01711111111", "x"), circuitbreaker.ErrOpen)
	assert.NoError(t, s.SendSMS(context.Background(), "01711111111", "otp"), "channels trip independently")
}
