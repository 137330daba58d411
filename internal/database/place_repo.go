package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"roost-backend/internal/models"
)

var (
	ErrPlaceNotFound = errors.New("place not found")
	ErrNotOwner      = errors.New("requester does not own this place")
)

// PlaceRepo handles place database operations
type PlaceRepo struct {
	db *sql.DB
}

// NewPlaceRepo creates a new place repository
func NewPlaceRepo() *PlaceRepo {
	return &PlaceRepo{db: DB}
}

// Create persists a new place owned by ownerID. The owner always comes
// from the caller's resolved identity, never from the request payload.
func (r *PlaceRepo) Create(ownerID string, req *models.PlaceRequest) (*models.Place, error) {
	place := &models.Place{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.Photos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO places (
			id, owner_id, title, address, photos, description,
			perks, extra_info, check_in, check_out, max_guests, price, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		place.ID, place.OwnerID, place.Title, place.Address, marshalList(place.Photos),
		place.Description, marshalList(place.Perks), place.ExtraInfo,
		place.CheckIn, place.CheckOut, place.MaxGuests, place.Price, place.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return place, nil
}

// GetByID retrieves a place by ID
func (r *PlaceRepo) GetByID(id string) (*models.Place, error) {
	row := r.db.QueryRow(`
		SELECT id, owner_id, title, address, photos, description,
		       perks, extra_info, check_in, check_out, max_guests, price, created_at
		FROM places WHERE id = ?
	`, id)

	place, err := scanPlace(row)
	if err == sql.ErrNoRows {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, err
	}

	return place, nil
}

// List retrieves all places, newest first. Public directory listing.
func (r *PlaceRepo) List() ([]*models.Place, error) {
	return r.queryPlaces(`
		SELECT id, owner_id, title, address, photos, description,
		       perks, extra_info, check_in, check_out, max_guests, price, created_at
		FROM places ORDER BY created_at DESC
	`)
}

// ListByOwner retrieves all places owned by ownerID, newest first.
func (r *PlaceRepo) ListByOwner(ownerID string) ([]*models.Place, error) {
	return r.queryPlaces(`
		SELECT id, owner_id, title, address, photos, description,
		       perks, extra_info, check_in, check_out, max_guests, price, created_at
		FROM places WHERE owner_id = ? ORDER BY created_at DESC
	`, ownerID)
}

// Update replaces the editable fields of the place with id. The stored
// owner is compared against requesterID: a mismatch returns ErrNotOwner
// and leaves the record untouched. A missing place returns
// ErrPlaceNotFound. The owner itself is never modified.
func (r *PlaceRepo) Update(id, requesterID string, req *models.PlaceRequest) error {
	var ownerID string
	err := r.db.QueryRow("SELECT owner_id FROM places WHERE id = ?", id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return ErrPlaceNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != requesterID {
		return ErrNotOwner
	}

	// Owner check repeated in the WHERE clause so the write itself can
	// never land on a row the requester does not own.
	result, err := r.db.Exec(`
		UPDATE places SET
			title = ?,
			address = ?,
			photos = ?,
			description = ?,
			perks = ?,
			extra_info = ?,
			check_in = ?,
			check_out = ?,
			max_guests = ?,
			price = ?
		WHERE id = ? AND owner_id = ?
	`,
		req.Title, req.Address, marshalList(req.Photos), req.Description,
		marshalList(req.Perks), req.ExtraInfo, req.CheckIn, req.CheckOut,
		req.MaxGuests, req.Price, id, requesterID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

func (r *PlaceRepo) queryPlaces(query string, args ...any) ([]*models.Place, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := []*models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}

	return places, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(row scanner) (*models.Place, error) {
	place := &models.Place{}
	var photos, perks string

	err := row.Scan(
		&place.ID, &place.OwnerID, &place.Title, &place.Address, &photos,
		&place.Description, &perks, &place.ExtraInfo,
		&place.CheckIn, &place.CheckOut, &place.MaxGuests, &place.Price, &place.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.Photos = unmarshalList(photos)
	place.Perks = unmarshalList(perks)

	return place, nil
}

func marshalList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func unmarshalList(s string) []string {
	list := []string{}
	if s != "" {
		_ = json.Unmarshal([]byte(s), &list)
	}
	return list
}
