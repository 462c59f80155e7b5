package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
)

// UserHandler handles HTTP requests for the signed-in user's profile
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile returns the authenticated user
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the authenticated user
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err, "Failed to update profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}
