package database

import (
	"path/filepath"
	"testing"

	"roost-backend/internal/models"
)

// openTestDB points the package-wide connection at a fresh on-disk
// database for one test. Tests sharing the global DB must not run in
// parallel.
func openTestDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	if err := Open(Config{Path: path}); err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { Close() })
}

func createTestUser(t *testing.T, repo *UserRepo, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, PasswordHash: "x"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

func testPlaceRequest(title string) *models.PlaceRequest {
	return &models.PlaceRequest{
		Title:       title,
		Address:     "1 Harbour St",
		Photos:      []string{"photo1.jpg", "photo2.jpg"},
		Description: "a quiet flat by the water",
		Perks:       []string{"wifi", "parking"},
		ExtraInfo:   "no parties",
		CheckIn:     "14:00",
		CheckOut:    "11:00",
		MaxGuests:   4,
		Price:       120,
	}
}
