package models

import "time"

// Place represents a listing. OwnerID is set from the authenticated
// identity at creation time and never changes afterwards.
type Place struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	Photos      []string  `json:"photos"`
	Description string    `json:"description"`
	Perks       []string  `json:"perks"`
	ExtraInfo   string    `json:"extra_info"`
	CheckIn     string    `json:"check_in"`  // time of day, e.g. "14:00"
	CheckOut    string    `json:"check_out"` // time of day, e.g. "11:00"
	MaxGuests   int       `json:"max_guests"`
	Price       int       `json:"price"` // nightly price
	CreatedAt   time.Time `json:"created_at"`
}

// PlaceRequest carries the editable fields of a place. The owner is
// never part of the payload; it always comes from the resolved identity.
type PlaceRequest struct {
	ID          string   `json:"id,omitempty"` // only meaningful on update
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extra_info"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	MaxGuests   int      `json:"max_guests"`
	Price       int      `json:"price"`
}
