package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roost-backend/internal/models"
)

const placeBody = `{
	"title": "Harbour Flat",
	"address": "1 Harbour St",
	"photos": ["photo1.jpg"],
	"description": "quiet flat by the water",
	"perks": ["wifi"],
	"extra_info": "no parties",
	"check_in": "14:00",
	"check_out": "11:00",
	"max_guests": 4,
	"price": 120
}`

func TestCreatePlace_RequiresAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/places", placeBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePlace_OwnerFromIdentity(t *testing.T) {
	e := newTestServer(t)
	cookie, userID := registerAndLogin(t, e, "Alice", "alice@example.com", "hunter22")

	// A conflicting owner_id in the payload is ignored outright.
	body := `{"owner_id":"someone-else",` + placeBody[1:]
	rec := doJSON(e, http.MethodPost, "/places", body, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var place models.Place
	decodeJSON(t, rec, &place)
	assert.Equal(t, userID, place.OwnerID)
	assert.Equal(t, "Harbour Flat", place.Title)
}

func TestGetPlace_Public(t *testing.T) {
	e := newTestServer(t)
	cookie, _ := registerAndLogin(t, e, "Alice", "alice@example.com", "hunter22")

	rec := doJSON(e, http.MethodPost, "/places", placeBody, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var place models.Place
	decodeJSON(t, rec, &place)

	// No cookie needed on the read side.
	rec = doJSON(e, http.MethodGet, "/places/"+place.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/places/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/places", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Place
	decodeJSON(t, rec, &all)
	assert.Len(t, all, 1)
}

func TestUpdatePlace_ForeignOwnerForbidden(t *testing.T) {
	e := newTestServer(t)

	aliceCookie, _ := registerAndLogin(t, e, "Alice", "alice@example.com", "hunter22")
	bobCookie, _ := registerAndLogin(t, e, "Bob", "bob@example.com", "hunter23")

	rec := doJSON(e, http.MethodPost, "/places", placeBody, aliceCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	var place models.Place
	decodeJSON(t, rec, &place)

	update := `{"id":"` + place.ID + `","title":"Bob Was Here","address":"1 Harbour St"}`
	rec = doJSON(e, http.MethodPut, "/places", update, bobCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	// The listing is untouched.
	rec = doJSON(e, http.MethodGet, "/places/"+place.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Place
	decodeJSON(t, rec, &got)
	assert.Equal(t, "Harbour Flat", got.Title)

	// The rightful owner can still update it.
	update = `{"id":"` + place.ID + `","title":"Harbour Flat Deluxe","address":"1 Harbour St","price":150}`
	rec = doJSON(e, http.MethodPut, "/places", update, aliceCookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "\"ok\"\n", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/places/"+place.ID, "")
	decodeJSON(t, rec, &got)
	assert.Equal(t, "Harbour Flat Deluxe", got.Title)
	assert.Equal(t, 150, got.Price)
}

func TestUserPlaces_ScopedToOwner(t *testing.T) {
	e := newTestServer(t)

	aliceCookie, aliceID := registerAndLogin(t, e, "Alice", "alice@example.com", "hunter22")
	bobCookie, _ := registerAndLogin(t, e, "Bob", "bob@example.com", "hunter23")

	rec := doJSON(e, http.MethodPost, "/places", placeBody, aliceCookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/user-places", "", aliceCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Place
	decodeJSON(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceID, mine[0].OwnerID)

	rec = doJSON(e, http.MethodGet, "/user-places", "", bobCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var theirs []models.Place
	decodeJSON(t, rec, &theirs)
	assert.Empty(t, theirs)
}
