package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/services/notifications/handler/http"
)

// Handler registers the notification routes
type Handler struct {
	notificationHandler *http.NotificationHandler
}

// NewHandler creates the notification route handler
func NewHandler(notificationHandler *http.NotificationHandler) *Handler {
	return &Handler{
		notificationHandler: notificationHandler,
	}
}

// RegisterRoutes mounts /notifications behind shopMW and the overdue trigger
// under /admin behind adminMW
func (h *Handler) RegisterRoutes(e *echo.Echo, shopMW, adminMW []echo.MiddlewareFunc) {
	g := e.Group("/notifications", shopMW...)
	g.GET("", h.notificationHandler.List)
	g.POST("/:id/read", h.notificationHandler.MarkRead)

	admin := e.Group("/admin", adminMW...)
	admin.POST("/overdue/check", h.notificationHandler.CheckOverdue)
}
