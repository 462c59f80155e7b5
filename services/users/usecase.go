package users

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dokanbaki/services/users UserUC

// UserUC represents the account usecase interface
type UserUC interface {
	// Auth
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdate) (*models.User, error)

	// Password reset
	SendPasswordResetOTP(ctx context.Context, mobile string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}
