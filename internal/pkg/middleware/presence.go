package middleware

import (
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/presence"
)

// PresenceMiddleware marks the authenticated user as online. Admin sessions
// are not counted. Tracking failures are logged only.
func PresenceMiddleware(tracker presence.Tracker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			if userID := UserID(c); userID != "" && role != jwtpkg.RoleAdmin {
				if err := tracker.Track(c.Request().Context(), userID); err != nil {
					logger.WarnCtx(c.Request().Context(), "Failed to track presence",
						logger.String("user_id", userID),
						logger.Err(err))
				}
			}
			return next(c)
		}
	}
}
