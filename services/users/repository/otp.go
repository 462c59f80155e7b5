package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// OTPRepo implements users.OTPRepo over the record store
type OTPRepo struct {
	store jsondb.Store
	now   func() time.Time

	// held across the delete and insert of SaveOTP so one mobile keeps one code
	mu sync.Mutex
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(store jsondb.Store) *OTPRepo {
	return &OTPRepo{store: store, now: models.Now}
}

// SaveOTP replaces any pending code for mobile with a new one valid for models.OTPTTL
func (r *OTPRepo) SaveOTP(ctx context.Context, mobile, code string) (*models.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.deleteOTP(ctx, mobile); err != nil {
		return nil, err
	}

	otp := &models.OTP{
		Mobile:    mobile,
		Code:      code,
		ExpiresAt: models.FormatTime(r.now().Add(models.OTPTTL)),
	}
	rec, err := jsondb.Encode(otp)
	if err != nil {
		return nil, err
	}
	if _, err := r.store.Insert(ctx, jsondb.OTPs, rec); err != nil {
		return nil, fmt.Errorf("failed to save OTP: %w", err)
	}
	return otp, nil
}

// GetOTP returns the pending code for mobile, or nil when there is none
func (r *OTPRepo) GetOTP(ctx context.Context, mobile string) (*models.OTP, error) {
	rec, err := r.store.FindOne(ctx, jsondb.OTPs, jsondb.Matcher{"mobile": mobile})
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	var otp models.OTP
	if err := jsondb.Decode(rec, &otp); err != nil {
		return nil, err
	}
	return &otp, nil
}

// DeleteOTP removes every code stored for mobile
func (r *OTPRepo) DeleteOTP(ctx context.Context, mobile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteOTP(ctx, mobile)
}

func (r *OTPRepo) deleteOTP(ctx context.Context, mobile string) error {
	if _, err := r.store.Delete(ctx, jsondb.OTPs, jsondb.Matcher{"mobile": mobile}); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
