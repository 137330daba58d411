package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
	"roost-backend/internal/models"
)

const dateLayout = "2006-01-02"

// createBookingHandler handles POST /bookings. The booking is always
// attributed to the authenticated identity, and the total price is
// recomputed from the place's nightly rate rather than trusted from the
// client.
func createBookingHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.PlaceID == "" || req.Name == "" {
		return errJSON(c, http.StatusBadRequest, "place_id and name are required")
	}
	if req.Guests < 1 {
		return errJSON(c, http.StatusBadRequest, "at least one guest is required")
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return errJSON(c, http.StatusUnprocessableEntity, "check_in must be a YYYY-MM-DD date")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return errJSON(c, http.StatusUnprocessableEntity, "check_out must be a YYYY-MM-DD date")
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return errJSON(c, http.StatusUnprocessableEntity, "check_out must be after check_in")
	}

	place, err := placeRepo.GetByID(req.PlaceID)
	if err != nil {
		if errors.Is(err, database.ErrPlaceNotFound) {
			return errJSON(c, http.StatusNotFound, "place not found")
		}
		c.Logger().Error("create booking error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to create booking")
	}
	if place.MaxGuests > 0 && req.Guests > place.MaxGuests {
		return errJSON(c, http.StatusUnprocessableEntity, "guest count exceeds place capacity")
	}

	total := nights * place.Price
	if req.Price != 0 && req.Price != total {
		return errJSON(c, http.StatusUnprocessableEntity, "price does not match nightly rate")
	}

	booking, err := bookingRepo.Create(identity.UserID, &req, total)
	if err != nil {
		c.Logger().Error("create booking error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to create booking")
	}

	audit(c, identity.UserID, models.ActionBookingCreate, booking.ID)

	return c.JSON(http.StatusCreated, booking)
}

// listBookingsHandler handles GET /bookings, returning only the
// caller's own bookings with their places joined.
func listBookingsHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	bookings, err := bookingRepo.ListByUser(identity.UserID)
	if err != nil {
		c.Logger().Error("list bookings error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to list bookings")
	}

	return c.JSON(http.StatusOK, bookings)
}
