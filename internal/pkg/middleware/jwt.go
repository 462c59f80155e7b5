package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
)

// Echo context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
	ContextMobile   = "user_mobile"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextMobile, claims.Mobile)

			return next(c)
		}
	}
}

// RequireRole rejects authenticated requests whose role differs from role
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if got, _ := c.Get(ContextUserRole).(string); got != role {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or "" outside JWTAuthMiddleware
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

// ContextShopID is set by the shop context middleware once the shop is authorized
const ContextShopID = "shop_id"

// HeaderShopID selects the active shop of a request
const HeaderShopID = "X-Shop-ID"

// ShopID returns the authorized shop id of the request, or ""
func ShopID(c echo.Context) string {
	id, _ := c.Get(ContextShopID).(string)
	return id
}
