package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/services/users/handler/http"
)

// Handler coordinates the account HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes registers the public auth routes and the profile routes behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, authLimiter ...echo.MiddlewareFunc) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth", authLimiter...)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/password/otp", h.authHandler.RequestPasswordReset)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)

	userGroup := e.Group("/users/me", auth)
	userGroup.GET("", h.userHandler.GetProfile)
	userGroup.PUT("", h.userHandler.UpdateProfile)
}
