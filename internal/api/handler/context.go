package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. A nil user
// means the middleware did not run on this route; reject with 401 rather
// than panic downstream.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
