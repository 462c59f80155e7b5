package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/services/shops/handler/http"
)

// Handler registers the shop routes
type Handler struct {
	shopHandler *http.ShopHandler
}

// NewHandler creates the shop route handler
func NewHandler(shopHandler *http.ShopHandler) *Handler {
	return &Handler{
		shopHandler: shopHandler,
	}
}

// RegisterRoutes mounts shop management under /shops behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	g := e.Group("/shops", auth...)
	g.GET("", h.shopHandler.ListShops)
	g.POST("", h.shopHandler.CreateShop)
	g.GET("/:id", h.shopHandler.GetShop)
	g.PUT("/:id", h.shopHandler.UpdateShop)
}
