package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/billing"
)

// Catalog returns the purchasable plans
func (u *BillingUC) Catalog() models.PlanCatalog {
	return u.catalog
}

// Quote prices a plan for a billing cycle. Packs ignore the cycle.
func (u *BillingUC) Quote(plan models.Plan, cycle string) (*models.Quote, error) {
	spec, ok := u.catalog[plan]
	if !ok {
		return nil, billing.ErrUnknownPlan
	}

	if plan == models.PlanSMSPack {
		return &models.Quote{Plan: plan, Name: spec.Name, Billing: billing.BillingOnce, Amount: spec.Price}, nil
	}

	cycle = strings.ToLower(strings.TrimSpace(cycle))
	var amount float64
	switch cycle {
	case billing.BillingMonthly:
		amount = spec.MonthlyPrice
	case billing.BillingYearly:
		amount = spec.YearlyPrice
	default:
		return nil, billing.ErrInvalidBilling
	}
	return &models.Quote{Plan: plan, Name: spec.Name, Billing: cycle, Amount: amount}, nil
}

// SubmitPayment records a manual mobile money payment for admin review
func (u *BillingUC) SubmitPayment(ctx context.Context, userID string, req *models.PaymentSubmission) (*models.Payment, error) {
	payment := &models.Payment{
		UserID:        userID,
		Plan:          req.Plan,
		Amount:        req.Amount,
		Method:        strings.TrimSpace(req.Method),
		SenderNumber:  strings.TrimSpace(req.SenderNumber),
		TransactionID: strings.TrimSpace(req.TransactionID),
		Status:        models.PaymentPending,
	}
	if payment.Plan == "" || payment.Amount <= 0 || payment.Method == "" ||
		payment.SenderNumber == "" || payment.TransactionID == "" {
		return nil, billing.ErrMissingFields
	}
	if _, ok := u.catalog[payment.Plan]; !ok {
		return nil, billing.ErrUnknownPlan
	}

	if err := u.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment submitted",
		logger.String("payment_id", payment.ID),
		logger.String("user_id", userID),
		logger.String("plan", string(payment.Plan)))
	return payment, nil
}

// ConfirmGatewayPayment records a payment already verified by a gateway and
// applies the plan at once. A transaction id seen before returns the stored
// payment without applying the plan again; one left PENDING by an earlier
// failed attempt is finished.
func (u *BillingUC) ConfirmGatewayPayment(ctx context.Context, req *models.GatewayConfirmation) (*models.Payment, error) {
	txID := strings.TrimSpace(req.TransactionID)
	if req.UserID == "" || req.Plan == "" || req.Amount <= 0 || txID == "" {
		return nil, billing.ErrMissingFields
	}
	if _, ok := u.catalog[req.Plan]; !ok {
		return nil, billing.ErrUnknownPlan
	}

	u.reviewMu.Lock()
	defer u.reviewMu.Unlock()

	payment, err := u.paymentRepo.GetPaymentByTransactionID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if payment != nil && payment.Status != models.PaymentPending {
		logger.Warn("Duplicate gateway confirmation", logger.String("transaction_id", txID))
		return payment, nil
	}

	if payment == nil {
		user, err := u.accountRepo.GetUserByID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, billing.ErrUserNotFound
		}

		// recorded first so an applied plan always has a payment behind it
		payment = &models.Payment{
			UserID:        req.UserID,
			Plan:          req.Plan,
			Amount:        req.Amount,
			Method:        strings.TrimSpace(req.Method),
			SenderNumber:  "Online",
			TransactionID: txID,
			Status:        models.PaymentPending,
		}
		if err := u.paymentRepo.CreatePayment(ctx, payment); err != nil {
			return nil, err
		}
	}

	if err := applyPlan(ctx, u.accountRepo, u.catalog, payment, u.now()); err != nil {
		return nil, err
	}
	approved, err := u.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, models.PaymentApproved)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, billing.ErrPaymentNotFound
	}
	return approved, nil
}

// applyPlan updates the payer's account for an approved payment
func applyPlan(ctx context.Context, accounts billing.AccountRepo, catalog models.PlanCatalog, payment *models.Payment, now time.Time) error {
	user, err := accounts.GetUserByID(ctx, payment.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return billing.ErrUserNotFound
	}

	if _, err := accounts.UpdateUser(ctx, user.ID, billing.PlanUpdate(user, payment, catalog, now)); err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	logger.Info("Plan applied",
		logger.String("user_id", user.ID),
		logger.String("plan", string(payment.Plan)),
		logger.Float64("amount", payment.Amount))
	return nil
}
