package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/shops"
)

// ShopHandler handles HTTP requests for shop management
type ShopHandler struct {
	shopUC shops.ShopUC
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopUC shops.ShopUC) *ShopHandler {
	return &ShopHandler{
		shopUC: shopUC,
	}
}

// CreateShop handles shop creation requests
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req models.ShopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err, "Failed to create shop")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Shop created successfully", shop)
}

// ListShops returns the caller's shops
func (h *ShopHandler) ListShops(c echo.Context) error {
	list, err := h.shopUC.ListShops(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to list shops")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shops retrieved successfully", list)
}

// GetShop returns one of the caller's shops
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve shop")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shop retrieved successfully", shop)
}

// UpdateShop updates one of the caller's shops
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req models.ShopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		return respondError(c, err, "Failed to update shop")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shop updated successfully", shop)
}

func respondError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, shops.ErrShopNameRequired):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, shops.ErrShopLimitReached):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, shops.ErrShopForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, shops.ErrShopNotFound), errors.Is(err, shops.ErrOwnerNotFound):
		return utils.NotFoundResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("user_id", middleware.UserID(c)),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
