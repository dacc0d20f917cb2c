package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventease/platform-api/internal/core/domain"
)

// RequireKind enforces account-kind access control on routes behind Auth.
func RequireKind(allowedKinds ...domain.Kind) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedKinds))
	for _, k := range allowedKinds {
		allowed[string(k)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			kind, _ := c.Get("kind").(string)
			if _, ok := allowed[kind]; !ok {
				return c.JSON(http.StatusForbidden, map[string]any{"success": false, "message": "access forbidden"})
			}
			return next(c)
		}
	}
}
