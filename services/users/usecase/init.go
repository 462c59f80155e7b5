package usecase

import (
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/users"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements users.UserUC
type UserUC struct {
	userRepo   users.UserRepo
	otpRepo    users.OTPRepo
	smsGW      users.SMSGW
	cfg        *models.Config
	bcryptCost int
	now        func() time.Time
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	otpRepo users.OTPRepo,
	smsGW users.SMSGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		smsGW:      smsGW,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		now:        models.Now,
	}
}
