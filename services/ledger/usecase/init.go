package usecase

import (
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/ledger"
)

// LedgerUC implements ledger.LedgerUC
type LedgerUC struct {
	ledgerRepo ledger.LedgerRepo
	messageGW  ledger.MessageGW
	now        func() time.Time
}

// NewLedgerUC creates a new ledger usecase instance
func NewLedgerUC(
	ledgerRepo ledger.LedgerRepo,
	messageGW ledger.MessageGW,
) *LedgerUC {
	return &LedgerUC{
		ledgerRepo: ledgerRepo,
		messageGW:  messageGW,
		now:        models.Now,
	}
}

func (uc *LedgerUC) today() string {
	return models.FormatDate(uc.now())
}
