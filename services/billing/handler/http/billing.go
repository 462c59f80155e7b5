package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/billing"
)

// BillingHandler handles plan pricing and payment submission
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

// GetPlans returns the plan catalog
func (h *BillingHandler) GetPlans(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Plans retrieved successfully", h.billingUC.Catalog())
}

// GetQuote prices ?plan= for ?billing=
func (h *BillingHandler) GetQuote(c echo.Context) error {
	plan := models.Plan(strings.ToUpper(c.QueryParam("plan")))
	quote, err := h.billingUC.Quote(plan, c.QueryParam("billing"))
	if err != nil {
		return respondError(c, err, "Failed to quote plan")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quote generated", quote)
}

// SubmitPayment records a manual payment for review
func (h *BillingHandler) SubmitPayment(c echo.Context) error {
	var req models.PaymentSubmission
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	payment, err := h.billingUC.SubmitPayment(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err, "Failed to submit payment")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment submitted for review", payment)
}

// ConfirmGatewayPayment records a gateway-verified payment and applies the plan
func (h *BillingHandler) ConfirmGatewayPayment(c echo.Context) error {
	var req models.GatewayConfirmation
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	payment, err := h.billingUC.ConfirmGatewayPayment(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to confirm payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", payment)
}

func respondError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, billing.ErrUnknownPlan),
		errors.Is(err, billing.ErrInvalidBilling),
		errors.Is(err, billing.ErrMissingFields):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, billing.ErrPaymentNotFound), errors.Is(err, billing.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, billing.ErrPaymentNotPending):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, billing.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
