package models

import "time"

// Booking represents a reservation of a place. UserID is always the
// identity that made the request, regardless of what the client sent.
type Booking struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CheckIn   string    `json:"check_in"`  // date, "2006-01-02"
	CheckOut  string    `json:"check_out"` // date, "2006-01-02"
	Guests    int       `json:"guests"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Price     int       `json:"price"` // total for the stay
	CreatedAt time.Time `json:"created_at"`
}

// BookingWithPlace is the denormalized view returned when listing a
// user's bookings: the booking plus its referenced place.
type BookingWithPlace struct {
	Booking
	Place Place `json:"place"`
}

// BookingRequest represents the request body for creating a booking.
// It has no user field on purpose; attribution is taken from the
// authenticated identity only.
type BookingRequest struct {
	PlaceID  string `json:"place_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Price    int    `json:"price"` // client estimate, verified server-side
}
