package usecase

import (
	"context"
	"strings"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
)

// GetProfile returns the user without the password hash
func (u *UserUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, users.ErrUserNotFound
	}
	public := user.Public()
	return &public, nil
}

// UpdateProfile replaces the editable profile fields. A changed email must stay unique.
func (u *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdate) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, users.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" {
		if !utils.IsValidEmail(email) {
			return nil, users.ErrInvalidEmail
		}
		other, err := u.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, users.ErrEmailExists
		}
	}

	user, err := u.userRepo.UpdateUser(ctx, userID, map[string]interface{}{
		"name":    name,
		"email":   email,
		"address": strings.TrimSpace(req.Address),
		"image":   strings.TrimSpace(req.Image),
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, users.ErrUserNotFound
	}
	public := user.Public()
	return &public, nil
}
