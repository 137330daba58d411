package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
)

// Shared handler state, wired once by RegisterRoutes.
var (
	authService *auth.Service
	userRepo    *database.UserRepo
	placeRepo   *database.PlaceRepo
	bookingRepo *database.BookingRepo
	auditRepo   *database.AuditRepo
)

// audit records a security event. Best effort: a failed write is logged
// and the request proceeds.
func audit(c echo.Context, userID, action, target string) {
	if err := auditRepo.Log(userID, action, target, c.RealIP()); err != nil {
		c.Logger().Error("audit log error: ", err)
	}
}

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// errJSON is the uniform error response shape.
func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{
		"error": msg,
	})
}
