package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sort"

	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/pkg/presence"
	"github.com/piresc/dokanbaki/services/billing"
	"github.com/piresc/dokanbaki/services/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// adminUserID is the subject of admin tokens
const adminUserID = "admin"

const statsConcurrency = 4

// Login checks the configured super admin credentials. An unset password disables admin login.
func (u *AdminUC) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	admin := u.cfg.Admin
	if admin.Password == "" ||
		subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) != 1 ||
		subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) != 1 {
		logger.WarnCtx(ctx, "Rejected admin login", logger.String("username", username))
		return nil, billing.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(adminUserID, "", jwtpkg.RoleAdmin, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		UserID:    adminUserID,
		Role:      jwtpkg.RoleAdmin,
		ExpiresAt: expiresAt,
	}, nil
}

// ListPayments returns pending payments first, newest first within each group
func (u *AdminUC) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := u.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		pi, pj := payments[i].Status == models.PaymentPending, payments[j].Status == models.PaymentPending
		if pi != pj {
			return pi
		}
		return payments[i].CreatedAt > payments[j].CreatedAt
	})
	return payments, nil
}

// ApprovePayment applies a pending payment's plan and marks it approved
func (u *AdminUC) ApprovePayment(ctx context.Context, id string) (*models.Payment, error) {
	u.reviewMu.Lock()
	defer u.reviewMu.Unlock()

	payment, err := u.pendingPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPlan(ctx, u.accountRepo, u.catalog, payment, u.now()); err != nil {
		return nil, err
	}
	return u.setStatus(ctx, id, models.PaymentApproved)
}

// RejectPayment marks a pending payment rejected
func (u *AdminUC) RejectPayment(ctx context.Context, id string) (*models.Payment, error) {
	u.reviewMu.Lock()
	defer u.reviewMu.Unlock()

	if _, err := u.pendingPayment(ctx, id); err != nil {
		return nil, err
	}
	return u.setStatus(ctx, id, models.PaymentRejected)
}

func (u *AdminUC) pendingPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := u.paymentRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, billing.ErrPaymentNotFound
	}
	if payment.Status != models.PaymentPending {
		return nil, billing.ErrPaymentNotPending
	}
	return payment, nil
}

func (u *AdminUC) setStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	payment, err := u.paymentRepo.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, billing.ErrPaymentNotFound
	}
	logger.Info("Payment reviewed",
		logger.String("payment_id", id),
		logger.String("status", string(status)))
	return payment, nil
}

// UserStats builds the per-user console rows: shops, customers and money owed to them
func (u *AdminUC) UserStats(ctx context.Context) ([]models.UserStats, error) {
	accounts, err := u.accountRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]models.UserStats, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for i := range accounts {
		g.Go(func() error {
			row, err := u.userStats(gctx, &accounts[i])
			if err != nil {
				return err
			}
			stats[i] = *row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (u *AdminUC) userStats(ctx context.Context, user *models.User) (*models.UserStats, error) {
	shopList, err := u.shopRepo.ListShopsByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	row := &models.UserStats{
		ID:                 user.ID,
		Name:               user.Name,
		Mobile:             user.Mobile,
		SubscriptionPlan:   user.SubscriptionPlan,
		SubscriptionExpiry: user.SubscriptionExpiry,
		ShopCount:          len(shopList),
		ShopNames:          make([]string, 0, len(shopList)),
	}

	var total decimal.Decimal
	for _, shop := range shopList {
		row.ShopNames = append(row.ShopNames, shop.Name)

		txs, err := u.ledgerRepo.ListByShop(ctx, shop.ID)
		if err != nil {
			return nil, err
		}
		balances := ledger.CustomerBalances(txs)
		row.TotalCustomers += len(balances)
		for _, b := range balances {
			total = total.Add(decimal.NewFromFloat(b.TotalDue))
		}
	}
	row.TotalDue = total.InexactFloat64()
	return row, nil
}

// LiveUsers counts users seen within presence.LiveWindow
func (u *AdminUC) LiveUsers(ctx context.Context) (int, error) {
	if u.tracker == nil {
		return 0, nil
	}
	return u.tracker.LiveCount(ctx, presence.LiveWindow)
}
