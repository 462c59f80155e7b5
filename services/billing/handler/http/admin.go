package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/billing"
)

// AdminHandler handles the super admin console
type AdminHandler struct {
	adminUC billing.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC billing.AdminUC) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges the admin credentials for an admin token
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err, "Failed to login")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ListPayments returns every payment, pending first
func (h *AdminHandler) ListPayments(c echo.Context) error {
	payments, err := h.adminUC.ListPayments(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list payments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

// ApprovePayment approves a pending payment
func (h *AdminHandler) ApprovePayment(c echo.Context) error {
	payment, err := h.adminUC.ApprovePayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to approve payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment approved", payment)
}

// RejectPayment rejects a pending payment
func (h *AdminHandler) RejectPayment(c echo.Context) error {
	payment, err := h.adminUC.RejectPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to reject payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment rejected", payment)
}

// ListUsers returns the per-user statistics
func (h *AdminHandler) ListUsers(c echo.Context) error {
	stats, err := h.adminUC.UserStats(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to load users")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", stats)
}

// LiveUsers returns how many users were active in the last few minutes
func (h *AdminHandler) LiveUsers(c echo.Context) error {
	n, err := h.adminUC.LiveUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to count live users")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Live users counted", map[string]int{"live": n})
}
