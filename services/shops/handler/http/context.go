package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/shops"
)

// ShopContext resolves the active shop from the X-Shop-ID header and stores
// it in the echo context. It must run after JWTAuthMiddleware.
func ShopContext(shopUC shops.ShopUC) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			shopID := c.Request().Header.Get(middleware.HeaderShopID)
			if shopID == "" {
				return utils.BadRequestResponse(c, "X-Shop-ID header is required")
			}

			if _, err := shopUC.AuthorizeShop(c.Request().Context(), middleware.UserID(c), shopID); err != nil {
				return respondError(c, err, "Failed to resolve shop")
			}

			c.Set(middleware.ContextShopID, shopID)
			return next(c)
		}
	}
}
