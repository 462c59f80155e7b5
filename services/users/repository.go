package users

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// UserRepo represents the user account storage. Lookups return nil, nil when nothing matches.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// OTPRepo represents the one-time password storage, keyed by mobile number
type OTPRepo interface {
	SaveOTP(ctx context.Context, mobile, code string) (*models.OTP, error)
	GetOTP(ctx context.Context, mobile string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, mobile string) error
}
