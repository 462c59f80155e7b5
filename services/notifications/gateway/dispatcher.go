package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/pkg/nsq"
	"github.com/piresc/dokanbaki/internal/pkg/retry"
	"github.com/piresc/dokanbaki/services/notifications"
)

// Deliver sends msg on its channel
func Deliver(ctx context.Context, sender notifications.Sender, msg models.Message) error {
	switch msg.Channel {
	case models.ChannelSMS:
		return sender.SendSMS(ctx, msg.To, msg.Body)
	case models.ChannelWhatsApp:
		return sender.SendWhatsApp(ctx, msg.To, msg.Body)
	default:
		return fmt.Errorf("%w: %q", notifications.ErrUnknownChannel, msg.Channel)
	}
}

// DirectDispatcher delivers each message in its own goroutine with retries
type DirectDispatcher struct {
	sender notifications.Sender
	retry  retry.Config
	wg     sync.WaitGroup
}

// NewDirectDispatcher creates a dispatcher that calls sender in-process
func NewDirectDispatcher(sender notifications.Sender) *DirectDispatcher {
	return &DirectDispatcher{sender: sender, retry: retry.DefaultConfig()}
}

// Dispatch starts delivery and returns immediately
func (d *DirectDispatcher) Dispatch(ctx context.Context, msg models.Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := retry.Do(ctx, d.retry, "deliver message", func(ctx context.Context) error {
			err := Deliver(ctx, d.sender, msg)
			if errors.Is(err, notifications.ErrUnknownChannel) {
				return retry.Permanent(err)
			}
			return err
		})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to deliver message",
				logger.String("channel", string(msg.Channel)),
				logger.Err(err))
		}
	}()
}

// Wait blocks until in-flight deliveries finish or ctx ends
func (d *DirectDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Publisher publishes a message to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// QueueDispatcher publishes messages to NSQ for a consumer to deliver
type QueueDispatcher struct {
	publisher Publisher
	topic     string
	fallback  notifications.Dispatcher
}

// NewQueueDispatcher creates a dispatcher publishing to topic. When publishing
// fails the message goes to fallback, if set.
func NewQueueDispatcher(publisher Publisher, topic string, fallback notifications.Dispatcher) *QueueDispatcher {
	return &QueueDispatcher{publisher: publisher, topic: topic, fallback: fallback}
}

// Dispatch publishes msg
func (d *QueueDispatcher) Dispatch(ctx context.Context, msg models.Message) {
	if err := d.publisher.Publish(d.topic, msg); err != nil {
		logger.WarnCtx(ctx, "Failed to queue message",
			logger.String("topic", d.topic),
			logger.Err(err))
		if d.fallback != nil {
			d.fallback.Dispatch(ctx, msg)
		}
	}
}

// MessageHandler returns the NSQ handler that delivers queued messages through sender
func MessageHandler(sender notifications.Sender) nsq.MessageHandler {
	return func(body []byte) error {
		var msg models.Message
		if err := nsq.UnmarshalMessage(body, &msg); err != nil {
			// a malformed body will never decode; drop it
			logger.Warn("Dropping malformed message", logger.Err(err))
			return nil
		}
		err := Deliver(context.Background(), sender, msg)
		if errors.Is(err, notifications.ErrUnknownChannel) {
			logger.Warn("Dropping message", logger.Err(err))
			return nil
		}
		return err
	}
}
