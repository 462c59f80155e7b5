package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/services/billing/handler/http"
)

// Handler coordinates the billing and admin console handlers
type Handler struct {
	billingHandler *http.BillingHandler
	adminHandler   *http.AdminHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(billingHandler *http.BillingHandler, adminHandler *http.AdminHandler) *Handler {
	return &Handler{
		billingHandler: billingHandler,
		adminHandler:   adminHandler,
	}
}

// RegisterRoutes registers the billing routes for signed-in users and the
// admin console routes. auth must authenticate the bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, loginLimiter ...echo.MiddlewareFunc) {
	e.GET("/billing/plans", h.billingHandler.GetPlans)
	e.GET("/billing/quote", h.billingHandler.GetQuote)

	billingGroup := e.Group("/billing", auth)
	billingGroup.POST("/payments", h.billingHandler.SubmitPayment)

	e.POST("/admin/login", h.adminHandler.Login, loginLimiter...)

	adminGroup := e.Group("/admin", auth, middleware.RequireRole(jwt.RoleAdmin))
	adminGroup.GET("/payments", h.adminHandler.ListPayments)
	adminGroup.POST("/payments/gateway", h.billingHandler.ConfirmGatewayPayment)
	adminGroup.POST("/payments/:id/approve", h.adminHandler.ApprovePayment)
	adminGroup.POST("/payments/:id/reject", h.adminHandler.RejectPayment)
	adminGroup.GET("/users", h.adminHandler.ListUsers)
	adminGroup.GET("/live", h.adminHandler.LiveUsers)
}
