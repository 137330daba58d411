package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
	"roost-backend/internal/models"
)

// createPlaceHandler handles POST /places. The owner is the
// authenticated identity; the payload cannot name one.
func createPlaceHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	var req models.PlaceRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Address == "" {
		return errJSON(c, http.StatusBadRequest, "title and address are required")
	}

	place, err := placeRepo.Create(identity.UserID, &req)
	if err != nil {
		c.Logger().Error("create place error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to create place")
	}

	audit(c, identity.UserID, models.ActionPlaceCreate, place.ID)

	return c.JSON(http.StatusCreated, place)
}

// listUserPlacesHandler handles GET /user-places
func listUserPlacesHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	places, err := placeRepo.ListByOwner(identity.UserID)
	if err != nil {
		c.Logger().Error("list user places error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to list places")
	}

	return c.JSON(http.StatusOK, places)
}

// getPlaceHandler handles GET /places/:id
func getPlaceHandler(c echo.Context) error {
	place, err := placeRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrPlaceNotFound) {
			return errJSON(c, http.StatusNotFound, "place not found")
		}
		c.Logger().Error("get place error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to load place")
	}

	return c.JSON(http.StatusOK, place)
}

// updatePlaceHandler handles PUT /places. Only the stored owner may
// mutate a place; anyone else gets an explicit 403 and the record stays
// untouched.
func updatePlaceHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	var req models.PlaceRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.ID == "" {
		return errJSON(c, http.StatusBadRequest, "place id is required")
	}

	if err := placeRepo.Update(req.ID, identity.UserID, &req); err != nil {
		switch {
		case errors.Is(err, database.ErrPlaceNotFound):
			return errJSON(c, http.StatusNotFound, "place not found")
		case errors.Is(err, database.ErrNotOwner):
			audit(c, identity.UserID, models.ActionPlaceUpdateDenied, req.ID)
			return errJSON(c, http.StatusForbidden, "only the owner can update this place")
		default:
			c.Logger().Error("update place error: ", err)
			return errJSON(c, http.StatusInternalServerError, "failed to update place")
		}
	}

	audit(c, identity.UserID, models.ActionPlaceUpdate, req.ID)

	return c.JSON(http.StatusOK, "ok")
}

// listPlacesHandler handles GET /places, the public directory.
func listPlacesHandler(c echo.Context) error {
	places, err := placeRepo.List()
	if err != nil {
		c.Logger().Error("list places error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to list places")
	}

	return c.JSON(http.StatusOK, places)
}
