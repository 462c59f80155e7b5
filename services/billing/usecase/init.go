package usecase

import (
	"sync"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/pkg/presence"
	"github.com/piresc/dokanbaki/services/billing"
)

// BillingUC implements billing.BillingUC
type BillingUC struct {
	paymentRepo billing.PaymentRepo
	accountRepo billing.AccountRepo
	catalog     models.PlanCatalog
	now         func() time.Time

	reviewMu *sync.Mutex
}

// NewBillingUC creates a new billing usecase instance. reviewMu must be the
// lock given to NewAdminUC; nil creates a private one.
func NewBillingUC(
	paymentRepo billing.PaymentRepo,
	accountRepo billing.AccountRepo,
	catalog models.PlanCatalog,
	reviewMu *sync.Mutex,
) *BillingUC {
	if reviewMu == nil {
		reviewMu = &sync.Mutex{}
	}
	return &BillingUC{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		catalog:     catalog,
		now:         models.Now,
		reviewMu:    reviewMu,
	}
}

// AdminUC implements billing.AdminUC
type AdminUC struct {
	paymentRepo billing.PaymentRepo
	accountRepo billing.AccountRepo
	shopRepo    billing.ShopRepo
	ledgerRepo  billing.LedgerRepo
	tracker     presence.Tracker
	catalog     models.PlanCatalog
	cfg         *models.Config
	now         func() time.Time

	// serializes payment status transitions and plan application
	reviewMu *sync.Mutex
}

// NewAdminUC creates a new admin console usecase instance
func NewAdminUC(
	paymentRepo billing.PaymentRepo,
	accountRepo billing.AccountRepo,
	shopRepo billing.ShopRepo,
	ledgerRepo billing.LedgerRepo,
	tracker presence.Tracker,
	catalog models.PlanCatalog,
	cfg *models.Config,
	reviewMu *sync.Mutex,
) *AdminUC {
	if reviewMu == nil {
		reviewMu = &sync.Mutex{}
	}
	return &AdminUC{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		shopRepo:    shopRepo,
		ledgerRepo:  ledgerRepo,
		tracker:     tracker,
		catalog:     catalog,
		cfg:         cfg,
		now:         models.Now,
		reviewMu:    reviewMu,
	}
}
