package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// NotificationRepo implements notifications.NotificationRepo and
// notifications.DueRepo over the record store
type NotificationRepo struct {
	store jsondb.Store
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(store jsondb.Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// ListByShop returns the shop's notifications, newest first
func (r *NotificationRepo) ListByShop(ctx context.Context, shopID string) ([]models.Notification, error) {
	records, err := r.store.Find(ctx, jsondb.Notifications, jsondb.Matcher{"shopId": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	list, err := jsondb.DecodeAll[models.Notification](records)
	if err != nil {
		return nil, err
	}
	// stored order is oldest first
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list, nil
}

// GetByID returns the notification when it belongs to shopID, or nil
func (r *NotificationRepo) GetByID(ctx context.Context, shopID, id string) (*models.Notification, error) {
	rec, err := r.store.FindOne(ctx, jsondb.Notifications, jsondb.Matcher{"id": id, "shopId": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return decodeNotification(rec)
}

// Create stores a notification
func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	rec, err := jsondb.Encode(n)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(ctx, jsondb.Notifications, rec)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return jsondb.Decode(stored, n)
}

// MarkRead sets isRead. It returns nil, nil for an unknown id.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	rec, err := r.store.Update(ctx, jsondb.Notifications, id, jsondb.Record{"isRead": true})
	if err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	return decodeNotification(rec)
}

// ListDues returns every DUE transaction of every shop
func (r *NotificationRepo) ListDues(ctx context.Context) ([]models.Transaction, error) {
	records, err := r.store.Find(ctx, jsondb.Transactions, jsondb.Matcher{"type": string(models.TransactionDue)})
	if err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}
	return jsondb.DecodeAll[models.Transaction](records)
}

// MarkReminded records the date an overdue reminder went out for a transaction
func (r *NotificationRepo) MarkReminded(ctx context.Context, transactionID, date string) error {
	if _, err := r.store.Update(ctx, jsondb.Transactions, transactionID, jsondb.Record{"remindedOn": date}); err != nil {
		return fmt.Errorf("failed to mark reminder: %w", err)
	}
	return nil
}

func decodeNotification(rec jsondb.Record) (*models.Notification, error) {
	if rec == nil {
		return nil, nil
	}
	var n models.Notification
	if err := jsondb.Decode(rec, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
