package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
)

// AuthHandler handles registration, login and password reset
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) || errors.Is(err, users.ErrInvalidPassword) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return respondError(c, err, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RequestPasswordReset sends a password reset OTP
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.SendPasswordResetOTP(c.Request().Context(), req.Mobile); err != nil {
		return respondError(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// ResetPassword sets a new password using an OTP
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return respondError(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

// respondError maps usecase errors to HTTP responses
func respondError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, users.ErrMissingFields),
		errors.Is(err, users.ErrInvalidEmail),
		errors.Is(err, users.ErrOTPMismatch),
		errors.Is(err, users.ErrOTPExpired),
		errors.Is(err, users.ErrOTPNotFound),
		errors.Is(err, utils.ErrInvalidMobile),
		errors.Is(err, utils.ErrWeakPassword):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrMobileExists), errors.Is(err, users.ErrEmailExists):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, users.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
