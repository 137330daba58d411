package api

import (
	"github.com/labstack/echo/v4"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
)

var loginLimiter = auth.DefaultRateLimiter()

// RegisterRoutes sets up all routes on e. Paths match the public wire
// surface the frontend already speaks.
func RegisterRoutes(e *echo.Echo, authSvc *auth.Service) {
	authService = authSvc
	userRepo = database.NewUserRepo()
	placeRepo = database.NewPlaceRepo()
	bookingRepo = database.NewBookingRepo()
	auditRepo = database.NewAuditRepo()

	tokens := authSvc.Tokens()

	// Health check (public)
	e.GET("/", healthCheck)

	// Account routes
	e.POST("/register", registerHandler)
	e.POST("/login", loginHandler, loginLimiter.Middleware())
	e.GET("/profile", profileHandler, auth.OptionalAuth(tokens))
	e.POST("/logout", logoutHandler)

	// Place routes; the directory and single-place reads are public,
	// everything else requires an identity
	e.GET("/places", listPlacesHandler)
	e.GET("/places/:id", getPlaceHandler)
	e.POST("/places", createPlaceHandler, auth.RequireAuth(tokens))
	e.PUT("/places", updatePlaceHandler, auth.RequireAuth(tokens))
	e.GET("/user-places", listUserPlacesHandler, auth.RequireAuth(tokens))

	// Booking routes (authenticated)
	e.POST("/bookings", createBookingHandler, auth.RequireAuth(tokens))
	e.GET("/bookings", listBookingsHandler, auth.RequireAuth(tokens))
}
