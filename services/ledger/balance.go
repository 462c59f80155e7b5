package ledger

import (
	"sort"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/shopspring/decimal"
)

type customerTotals struct {
	name      string
	phone     string
	phoneDate string
	hasPhone  bool
	lastDate  string
	total     decimal.Decimal
}

// CustomerBalances groups transactions by exact customer name and derives
// each customer's balance. Dues add and payments subtract, so an overpaid
// customer has a negative total. Phone comes from the latest-dated
// transaction carrying a mobile number; on equal dates the later one wins.
// The result is ordered by total descending, keeping encounter order for
// equal totals.
func CustomerBalances(txs []models.Transaction) []models.CustomerDue {
	groups := make(map[string]*customerTotals)
	var order []string

	for _, tx := range txs {
		acc, ok := groups[tx.CustomerName]
		if !ok {
			acc = &customerTotals{name: tx.CustomerName}
			groups[tx.CustomerName] = acc
			order = append(order, tx.CustomerName)
		}

		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case models.TransactionDue:
			acc.total = acc.total.Add(amount)
		case models.TransactionPayment:
			acc.total = acc.total.Sub(amount)
		}

		if tx.MobileNumber != "" && (!acc.hasPhone || tx.Date >= acc.phoneDate) {
			acc.phone = tx.MobileNumber
			acc.phoneDate = tx.Date
			acc.hasPhone = true
		}
		if tx.Date > acc.lastDate {
			acc.lastDate = tx.Date
		}
	}

	out := make([]models.CustomerDue, 0, len(order))
	for _, name := range order {
		acc := groups[name]
		out = append(out, models.CustomerDue{
			Name:     acc.name,
			Phone:    acc.phone,
			TotalDue: acc.total.InexactFloat64(),
			LastDate: acc.lastDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDue > out[j].TotalDue
	})
	return out
}

// Summarize builds the shop dashboard figures. Advance is the sum of the
// negative balances and stays negative.
func Summarize(txs []models.Transaction, today string) models.ShopSummary {
	balances := CustomerBalances(txs)

	var receivable, advance, todayDue, todayCollection decimal.Decimal
	for _, b := range balances {
		total := decimal.NewFromFloat(b.TotalDue)
		if total.IsPositive() {
			receivable = receivable.Add(total)
		} else if total.IsNegative() {
			advance = advance.Add(total)
		}
	}
	for _, tx := range txs {
		if tx.Date != today {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case models.TransactionDue:
			todayDue = todayDue.Add(amount)
		case models.TransactionPayment:
			todayCollection = todayCollection.Add(amount)
		}
	}

	return models.ShopSummary{
		CustomerCount:   len(balances),
		TotalReceivable: receivable.InexactFloat64(),
		TotalAdvance:    advance.InexactFloat64(),
		TodayDue:        todayDue.InexactFloat64(),
		TodayCollection: todayCollection.InexactFloat64(),
	}
}
