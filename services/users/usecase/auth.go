package usecase

import (
	"context"
	"fmt"
	"strings"

	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
	"golang.org/x/crypto/bcrypt"
)

const otpMessage = "Your Baki Khata OTP is: %s. Valid for 5 minutes."

// Register creates a FREE account. Mobile numbers and emails are unique.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Mobile) == "" || req.Password == "" {
		return nil, users.ErrMissingFields
	}

	mobile, err := utils.NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !utils.IsValidEmail(email) {
		return nil, users.ErrInvalidEmail
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, users.ErrMobileExists
	}

	if email != "" {
		existing, err = u.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, users.ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:             name,
		Mobile:           mobile,
		Email:            email,
		Password:         string(hash),
		SubscriptionPlan: models.PlanFree,
		SMSBalance:       0,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID),
		logger.String("mobile", utils.MaskMobile(mobile)))

	public := user.Public()
	return &public, nil
}

// Login authenticates with a mobile number or, when the identifier contains
// "@", an email address.
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, users.ErrMissingFields
	}

	user, err := u.lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidPassword
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Mobile, jwtpkg.RoleUser, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	public := user.Public()
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      jwtpkg.RoleUser,
		ExpiresAt: expiresAt,
		User:      &public,
	}, nil
}

func (u *UserUC) lookup(ctx context.Context, identifier string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if utils.LooksLikeEmail(identifier) {
		user, err = u.userRepo.GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		mobile, normErr := utils.NormalizeMobile(identifier)
		if normErr != nil {
			return nil, users.ErrUserNotFound
		}
		user, err = u.userRepo.GetUserByMobile(ctx, mobile)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

// SendPasswordResetOTP texts a fresh 4 digit code to a registered number
func (u *UserUC) SendPasswordResetOTP(ctx context.Context, mobile string) error {
	normalized, err := utils.NormalizeMobile(mobile)
	if err != nil {
		return err
	}

	user, err := u.userRepo.GetUserByMobile(ctx, normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return users.ErrUserNotFound
	}

	code, err := utils.GenerateNumericCode(4)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if _, err := u.otpRepo.SaveOTP(ctx, normalized, code); err != nil {
		return err
	}

	if err := u.smsGW.SendSMS(ctx, normalized, fmt.Sprintf(otpMessage, code)); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// ResetPassword sets a new password with a pending OTP. Each code works once.
func (u *UserUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	mobile, err := utils.NormalizeMobile(req.Mobile)
	if err != nil {
		return err
	}

	otp, err := u.otpRepo.GetOTP(ctx, mobile)
	if err != nil {
		return err
	}
	if otp == nil {
		return users.ErrOTPNotFound
	}
	if otp.Code != strings.TrimSpace(req.OTP) {
		return users.ErrOTPMismatch
	}
	expiresAt, err := models.ParseTime(otp.ExpiresAt)
	if err != nil || u.now().After(expiresAt) {
		if delErr := u.otpRepo.DeleteOTP(ctx, mobile); delErr != nil {
			logger.Warn("Failed to delete expired OTP", logger.Err(delErr))
		}
		return users.ErrOTPExpired
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := u.userRepo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return err
	}
	if user == nil {
		return users.ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := u.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{"password": string(hash)}); err != nil {
		return err
	}

	if err := u.otpRepo.DeleteOTP(ctx, mobile); err != nil {
		return err
	}

	logger.Info("Password reset", logger.String("user_id", user.ID))
	return nil
}
