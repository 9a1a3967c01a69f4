package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ownerID returns the authenticated user's id set by the auth middleware.
// Owner identity only ever comes from the token, never from the request
// body or query.
func ownerID(c echo.Context) (string, error) {
	id, ok := c.Get("user_id").(string)
	if !ok || id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return id, nil
}
