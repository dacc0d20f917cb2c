package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware. A missing user_id means the route was wired without the
// middleware; fail closed with 401.
func ctxIdentity(c echo.Context) (userID, kind string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	kind, _ = c.Get("kind").(string)
	return userID, kind, nil
}
