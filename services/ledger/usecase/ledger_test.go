package usecase

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/ledger"
	"github.com/piresc/dokanbaki/services/ledger/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGW struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (g *recordingGW) Dispatch(_ context.Context, msg models.Message) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.msgs = append(g.msgs, msg)
}

func setupLedgerUC(t *testing.T) (*LedgerUC, *recordingGW) {
	store, err := jsondb.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	gw := &recordingGW{}
	uc := NewLedgerUC(repository.NewTransactionRepo(store), gw)
	uc.now = func() time.Time { return time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC) }
	return uc, gw
}

func TestLedgerUC_AddDueAndPayment(t *testing.T) {
	// Arrange
	uc, gw := setupLedgerUC(t)
	ctx := context.Background()

	// Act
	due, err := uc.AddDue(ctx, "S1", &models.EntryRequest{
		CustomerName: "  Karim ",
		MobileNumber: "01711111111",
		Amount:       "500",
		Date:         "2024-01-01",
		ProductName:  "Rice",
	})
	require.NoError(t, err)
	pay, err := uc.AddPayment(ctx, "S1", &models.EntryRequest{
		CustomerName: "Karim",
		MobileNumber: "01711111111",
		Amount:       "200",
		Date:         "2023-12-01",
	})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "Karim", due.CustomerName)
	assert.Equal(t, models.TransactionDue, due.Type)
	assert.Equal(t, "Rice", due.ProductName)
	assert.NotEmpty(t, due.ID)
	assert.Equal(t, "2024-01-05", pay.Date, "payments are always dated today")

	balances, err := uc.CustomerBalances(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []models.CustomerDue{
		{Name: "Karim", Phone: "01711111111", TotalDue: 300, LastDate: "2024-01-05"},
	}, balances)

	require.Len(t, gw.msgs, 2)
	assert.Equal(t, models.ChannelWhatsApp, gw.msgs[0].Channel)
	assert.Equal(t, "01711111111", gw.msgs[0].To)
	assert.Equal(t, "Hello *Karim*,\nYour due of *Tk 500* has been added.\nDate: 2024-01-01\n\n- Baki Khata App", gw.msgs[0].Body)
	assert.Equal(t, "Hello *Karim*,\nWe received your payment of *Tk 200*.\n\n- Baki Khata App", gw.msgs[1].Body)
}

func TestLedgerUC_AddDue_DefaultsAndValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.EntryRequest
		wantErr error
	}{
		{name: "missing customer", req: models.EntryRequest{CustomerName: "  ", Amount: "10"}, wantErr: ledger.ErrCustomerRequired},
		{name: "zero amount", req: models.EntryRequest{CustomerName: "Karim", Amount: "0"}, wantErr: ledger.ErrInvalidAmount},
		{name: "negative amount", req: models.EntryRequest{CustomerName: "Karim", Amount: "-5"}, wantErr: ledger.ErrInvalidAmount},
		{name: "not a number", req: models.EntryRequest{CustomerName: "Karim", Amount: "ten"}, wantErr: ledger.ErrInvalidAmount},
		{name: "bad date", req: models.EntryRequest{CustomerName: "Karim", Amount: "10", Date: "05/01/2024"}, wantErr: ledger.ErrInvalidDate},
		{name: "bad due date", req: models.EntryRequest{CustomerName: "Karim", Amount: "10", DueDate: "tomorrow"}, wantErr: ledger.ErrInvalidDate},
		{name: "defaults to today", req: models.EntryRequest{CustomerName: "Karim", Amount: "10.50", DueDate: "2024-02-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gw := setupLedgerUC(t)

			tx, err := uc.AddDue(context.Background(), "S1", &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-01-05", tx.Date)
			assert.Equal(t, "2024-02-01", tx.DueDate)
			assert.Equal(t, 10.5, tx.Amount)
			assert.Empty(t, gw.msgs, "no mobile, no message")
		})
	}
}

func TestLedgerUC_Views(t *testing.T) {
	// Arrange
	uc, _ := setupLedgerUC(t)
	ctx := context.Background()
	entries := []struct {
		due    bool
		name   string
		mobile string
		amount string
	}{
		{true, "rahim", "01800000000", "100"},
		{false, "rahim", "", "150"},
		{true, "Karim", "01711111111", "500"},
		{true, "alam", "", "40"},
	}
	for _, e := range entries {
		req := &models.EntryRequest{CustomerName: e.name, MobileNumber: e.mobile, Amount: e.amount}
		var err error
		if e.due {
			_, err = uc.AddDue(ctx, "S1", req)
		} else {
			_, err = uc.AddPayment(ctx, "S1", req)
		}
		require.NoError(t, err)
	}

	t.Run("customers by name", func(t *testing.T) {
		got, err := uc.Customers(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"alam", "Karim", "rahim"}, []string{got[0].Name, got[1].Name, got[2].Name})
	})

	t.Run("due list excludes advances", func(t *testing.T) {
		got, err := uc.DueList(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Karim", got[0].Name)
		assert.Equal(t, "alam", got[1].Name)
	})

	t.Run("search by name ignores case", func(t *testing.T) {
		got, err := uc.Search(ctx, "S1", "KAR")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Karim", got[0].Name)
	})

	t.Run("search by phone", func(t *testing.T) {
		got, err := uc.Search(ctx, "S1", "0180")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "rahim", got[0].Name)
	})

	t.Run("summary", func(t *testing.T) {
		got, err := uc.Summary(ctx, "S1")
		require.NoError(t, err)
		assert.Equal(t, &models.ShopSummary{
			CustomerCount:   3,
			TotalReceivable: 540,
			TotalAdvance:    -50,
			TodayDue:        640,
			TodayCollection: 150,
		}, got)
	})

	t.Run("empty shop", func(t *testing.T) {
		got, err := uc.CustomerBalances(ctx, "S2")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLedgerUC_CustomerLedger(t *testing.T) {
	// Arrange
	uc, _ := setupLedgerUC(t)
	ctx := context.Background()
	_, err := uc.AddDue(ctx, "S1", &models.EntryRequest{CustomerName: "Karim", Amount: "500", Date: "2024-01-01"})
	require.NoError(t, err)
	_, err = uc.AddDue(ctx, "S1", &models.EntryRequest{CustomerName: "Karim", Amount: "50", Date: "2024-01-03"})
	require.NoError(t, err)
	_, err = uc.AddPayment(ctx, "S1", &models.EntryRequest{CustomerName: "Karim", Amount: "200"})
	require.NoError(t, err)

	// Act
	got, err := uc.CustomerLedger(ctx, "S1", "Karim")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 350.0, got.Customer.TotalDue)
	require.Len(t, got.Transactions, 3)
	assert.Equal(t, "2024-01-05", got.Transactions[0].Date)
	assert.Equal(t, "2024-01-03", got.Transactions[1].Date)
	assert.Equal(t, "2024-01-01", got.Transactions[2].Date)

	_, err = uc.CustomerLedger(ctx, "S1", "karim")
	assert.ErrorIs(t, err, ledger.ErrCustomerNotFound)
}

func TestLedgerUC_DeleteCustomer(t *testing.T) {
	// Arrange
	uc, _ := setupLedgerUC(t)
	ctx := context.Background()
	_, err := uc.AddDue(ctx, "S1", &models.EntryRequest{CustomerName: "Karim", Amount: "500"})
	require.NoError(t, err)
	_, err = uc.AddDue(ctx, "S1", &models.EntryRequest{CustomerName: "Rahim", Amount: "5"})
	require.NoError(t, err)

	// Act
	err = uc.DeleteCustomer(ctx, "S1", "Karim")

	// Assert
	require.NoError(t, err)
	got, err := uc.CustomerBalances(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rahim", got[0].Name)

	assert.NoError(t, uc.DeleteCustomer(ctx, "S1", "Nobody"))
}
