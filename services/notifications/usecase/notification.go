package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/notifications"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	overdueMessage = "Reminder: You have an overdue payment of Tk %s from date %s. Please pay as soon as possible. - Dokan Baki"
	alertMessage   = "Overdue reminder sent to %s for Tk %s (due %s)"
)

// List returns the shop's notifications, newest first
func (uc *NotificationUC) List(ctx context.Context, shopID string) ([]models.Notification, error) {
	list, err := uc.notificationRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

// MarkRead flags a notification of the shop as read
func (uc *NotificationUC) MarkRead(ctx context.Context, shopID, id string) (*models.Notification, error) {
	n, err := uc.notificationRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, notifications.ErrNotificationNotFound
	}
	if n.IsRead {
		return n, nil
	}

	updated, err := uc.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notifications.ErrNotificationNotFound
	}
	return updated, nil
}

// CheckOverdue sends a WhatsApp reminder for every DUE transaction whose due
// date is before today. A transaction is reminded at most once per day.
func (uc *NotificationUC) CheckOverdue(ctx context.Context, today string) (*models.OverdueReport, error) {
	if today == "" {
		today = models.FormatDate(uc.now())
	}
	if !models.IsDate(today) {
		return nil, fmt.Errorf("invalid check date %q", today)
	}

	dues, err := uc.dueRepo.ListDues(ctx)
	if err != nil {
		return nil, err
	}

	var sent atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.sendLimit)

	for _, tx := range dues {
		if tx.DueDate == "" || tx.DueDate >= today || tx.MobileNumber == "" || tx.RemindedOn == today {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if uc.remind(gctx, tx, today) {
				sent.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.OverdueReport{
		Checked: len(dues),
		Sent:    int(sent.Load()),
		Date:    today,
	}
	logger.Info("Overdue check finished",
		logger.Int("checked", report.Checked),
		logger.Int("sent", report.Sent),
		logger.String("date", today))
	return report, nil
}

// remind delivers one reminder and records it. Failures are logged only.
func (uc *NotificationUC) remind(ctx context.Context, tx models.Transaction, today string) bool {
	amount := decimal.NewFromFloat(tx.Amount).String()

	body := fmt.Sprintf(overdueMessage, amount, tx.Date)
	if err := uc.sender.SendWhatsApp(ctx, tx.MobileNumber, body); err != nil {
		logger.WarnCtx(ctx, "Failed to send overdue reminder",
			logger.String("transaction_id", tx.ID),
			logger.String("shop_id", tx.ShopID),
			logger.Err(err))
		return false
	}

	if err := uc.dueRepo.MarkReminded(ctx, tx.ID, today); err != nil {
		logger.WarnCtx(ctx, "Failed to record overdue reminder",
			logger.String("transaction_id", tx.ID),
			logger.Err(err))
	}

	alert := &models.Notification{
		ShopID:  tx.ShopID,
		Message: fmt.Sprintf(alertMessage, tx.CustomerName, amount, tx.DueDate),
		Type:    models.NotificationDueAlert,
		Date:    models.FormatTime(uc.now()),
	}
	if err := uc.notificationRepo.Create(ctx, alert); err != nil {
		logger.WarnCtx(ctx, "Failed to store overdue notification",
			logger.String("shop_id", tx.ShopID),
			logger.Err(err))
	}
	return true
}
