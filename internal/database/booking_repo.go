package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"roost-backend/internal/models"
)

// BookingRepo handles booking database operations
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{db: DB}
}

// Create persists a new booking attributed to userID. Attribution comes
// from the caller's resolved identity only; the request payload has no
// say in it.
func (r *BookingRepo) Create(userID string, req *models.BookingRequest, price int) (*models.Booking, error) {
	booking := &models.Booking{
		ID:        uuid.New().String(),
		PlaceID:   req.PlaceID,
		UserID:    userID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
		Name:      req.Name,
		Phone:     req.Phone,
		Price:     price,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO bookings (
			id, place_id, user_id, check_in, check_out, guests, name, phone, price, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		booking.ID, booking.PlaceID, booking.UserID, booking.CheckIn, booking.CheckOut,
		booking.Guests, booking.Name, booking.Phone, booking.Price, booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// ListByUser retrieves all bookings made by userID, each joined with
// its referenced place. Bookings are never listable across users.
func (r *BookingRepo) ListByUser(userID string) ([]*models.BookingWithPlace, error) {
	rows, err := r.db.Query(`
		SELECT b.id, b.place_id, b.user_id, b.check_in, b.check_out,
		       b.guests, b.name, b.phone, b.price, b.created_at,
		       p.id, p.owner_id, p.title, p.address, p.photos, p.description,
		       p.perks, p.extra_info, p.check_in, p.check_out, p.max_guests, p.price, p.created_at
		FROM bookings b
		JOIN places p ON p.id = b.place_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*models.BookingWithPlace{}
	for rows.Next() {
		bp := &models.BookingWithPlace{}
		var photos, perks string

		err := rows.Scan(
			&bp.ID, &bp.PlaceID, &bp.UserID, &bp.CheckIn, &bp.CheckOut,
			&bp.Guests, &bp.Name, &bp.Phone, &bp.Booking.Price, &bp.Booking.CreatedAt,
			&bp.Place.ID, &bp.Place.OwnerID, &bp.Place.Title, &bp.Place.Address, &photos,
			&bp.Place.Description, &perks, &bp.Place.ExtraInfo,
			&bp.Place.CheckIn, &bp.Place.CheckOut, &bp.Place.MaxGuests, &bp.Place.Price,
			&bp.Place.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bp.Place.Photos = unmarshalList(photos)
		bp.Place.Perks = unmarshalList(perks)

		bookings = append(bookings, bp)
	}

	return bookings, rows.Err()
}
