package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/ledger"
	"github.com/shopspring/decimal"
)

const (
	dueMessage     = "Hello *%s*,\nYour due of *Tk %s* has been added.\nDate: %s\n\n- Baki Khata App"
	paymentMessage = "Hello *%s*,\nWe received your payment of *Tk %s*.\n\n- Baki Khata App"
)

// CustomerBalances returns every customer of the shop, highest balance first
func (uc *LedgerUC) CustomerBalances(ctx context.Context, shopID string) ([]models.CustomerDue, error) {
	txs, err := uc.ledgerRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return ledger.CustomerBalances(txs), nil
}

// Customers returns the shop's customers ordered by name
func (uc *LedgerUC) Customers(ctx context.Context, shopID string) ([]models.CustomerDue, error) {
	balances, err := uc.CustomerBalances(ctx, shopID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(balances, func(i, j int) bool {
		a, b := strings.ToLower(balances[i].Name), strings.ToLower(balances[j].Name)
		if a != b {
			return a < b
		}
		return balances[i].Name < balances[j].Name
	})
	return balances, nil
}

// DueList returns the customers that still owe money
func (uc *LedgerUC) DueList(ctx context.Context, shopID string) ([]models.CustomerDue, error) {
	balances, err := uc.CustomerBalances(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]models.CustomerDue, 0, len(balances))
	for _, b := range balances {
		if b.TotalDue > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

// Search matches query against customer names, ignoring case, and phone numbers
func (uc *LedgerUC) Search(ctx context.Context, shopID, query string) ([]models.CustomerDue, error) {
	balances, err := uc.CustomerBalances(ctx, shopID)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return balances, nil
	}
	out := make([]models.CustomerDue, 0)
	for _, b := range balances {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(b.Phone, q) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Summary returns the dashboard figures of the shop for today
func (uc *LedgerUC) Summary(ctx context.Context, shopID string) (*models.ShopSummary, error) {
	txs, err := uc.ledgerRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	summary := ledger.Summarize(txs, uc.today())
	return &summary, nil
}

// CustomerLedger returns one customer's balance and history, newest first
func (uc *LedgerUC) CustomerLedger(ctx context.Context, shopID, customerName string) (*models.CustomerLedger, error) {
	txs, err := uc.ledgerRepo.ListByCustomer(ctx, shopID, customerName)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ledger.ErrCustomerNotFound
	}

	balances := ledger.CustomerBalances(txs)

	history := make([]models.Transaction, len(txs))
	copy(history, txs)
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Date != history[j].Date {
			return history[i].Date > history[j].Date
		}
		return history[i].CreatedAt > history[j].CreatedAt
	})

	return &models.CustomerLedger{
		Customer:     balances[0],
		Transactions: history,
	}, nil
}

// DeleteCustomer removes every transaction of the customer
func (uc *LedgerUC) DeleteCustomer(ctx context.Context, shopID, customerName string) error {
	n, err := uc.ledgerRepo.DeleteByCustomer(ctx, shopID, customerName)
	if err != nil {
		return err
	}
	logger.Info("Customer deleted",
		logger.String("shop_id", shopID),
		logger.Int("transactions", n))
	return nil
}

// AddDue records a new due. The date defaults to today.
func (uc *LedgerUC) AddDue(ctx context.Context, shopID string, req *models.EntryRequest) (*models.Transaction, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = uc.today()
	}
	tx, amount, err := uc.newEntry(shopID, req, models.TransactionDue, date)
	if err != nil {
		return nil, err
	}

	if err := uc.ledgerRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	uc.notify(ctx, tx, fmt.Sprintf(dueMessage, tx.CustomerName, amount.String(), tx.Date))
	return tx, nil
}

// AddPayment records a payment received today
func (uc *LedgerUC) AddPayment(ctx context.Context, shopID string, req *models.EntryRequest) (*models.Transaction, error) {
	tx, amount, err := uc.newEntry(shopID, req, models.TransactionPayment, uc.today())
	if err != nil {
		return nil, err
	}

	if err := uc.ledgerRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	uc.notify(ctx, tx, fmt.Sprintf(paymentMessage, tx.CustomerName, amount.String()))
	return tx, nil
}

func (uc *LedgerUC) newEntry(shopID string, req *models.EntryRequest, typ models.TransactionType, date string) (*models.Transaction, decimal.Decimal, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, decimal.Zero, ledger.ErrCustomerRequired
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, decimal.Zero, ledger.ErrInvalidAmount
	}

	if !models.IsDate(date) {
		return nil, decimal.Zero, ledger.ErrInvalidDate
	}

	dueDate := strings.TrimSpace(req.DueDate)
	if dueDate != "" && !models.IsDate(dueDate) {
		return nil, decimal.Zero, ledger.ErrInvalidDate
	}

	return &models.Transaction{
		ShopID:       shopID,
		CustomerName: name,
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Amount:       amount.InexactFloat64(),
		Type:         typ,
		Date:         date,
		DueDate:      dueDate,
		ProductName:  strings.TrimSpace(req.ProductName),
	}, amount, nil
}

// notify hands the customer message to the gateway, detached from the request context
func (uc *LedgerUC) notify(ctx context.Context, tx *models.Transaction, body string) {
	if tx.MobileNumber == "" || uc.messageGW == nil {
		return
	}
	uc.messageGW.Dispatch(context.WithoutCancel(ctx), models.Message{
		Channel: models.ChannelWhatsApp,
		To:      tx.MobileNumber,
		Body:    body,
	})
}
