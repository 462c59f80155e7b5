package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/notifications"
)

// NotificationHandler handles HTTP requests for shop notifications
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// List returns the current shop's notifications
func (h *NotificationHandler) List(c echo.Context) error {
	list, err := h.notificationUC.List(c.Request().Context(), middleware.ShopID(c))
	if err != nil {
		return h.fail(c, err, "Failed to load notifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// MarkRead flags one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Notification ID is required")
	}

	n, err := h.notificationUC.MarkRead(c.Request().Context(), middleware.ShopID(c), id)
	if err != nil {
		return h.fail(c, err, "Failed to update notification")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", n)
}

// CheckOverdue runs the overdue reminder job. An optional date query
// parameter overrides today.
func (h *NotificationHandler) CheckOverdue(c echo.Context) error {
	date := c.QueryParam("date")
	if date != "" && !models.IsDate(date) {
		return utils.BadRequestResponse(c, "Date must be YYYY-MM-DD")
	}

	report, err := h.notificationUC.CheckOverdue(c.Request().Context(), date)
	if err != nil {
		return h.fail(c, err, "Failed to check overdue dues")
	}
	return utils.SuccessResponse(c, http.StatusOK, overdueSummary(report), report)
}

func overdueSummary(r *models.OverdueReport) string {
	return fmt.Sprintf("Checked %d due transactions. Sent %d reminders.", r.Checked, r.Sent)
}

func (h *NotificationHandler) fail(c echo.Context, err error, msg string) error {
	if errors.Is(err, notifications.ErrNotificationNotFound) {
		return utils.NotFoundResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("shop_id", middleware.ShopID(c)),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
