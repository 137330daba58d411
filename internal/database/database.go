package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection and runs migrations
func Open(cfg Config) error {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	DB, err = sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Run migrations
	if err := migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// migrate runs all database migrations
func migrate() error {
	// Create migrations table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Run each migration
	for _, m := range migrations {
		if err := runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}

	return nil
}

type migration struct {
	name string
	up   string
}

func runMigration(m migration) error {
	// Check if already applied
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	// Run migration
	if _, err := DB.Exec(m.up); err != nil {
		return err
	}

	// Record migration
	_, err = DB.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_users",
		up: `
			CREATE TABLE users (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_users_email ON users(email);
		`,
	},
	{
		name: "002_create_places",
		up: `
			CREATE TABLE places (
				id TEXT PRIMARY KEY,
				owner_id TEXT NOT NULL,
				title TEXT NOT NULL,
				address TEXT NOT NULL,
				photos TEXT NOT NULL DEFAULT '[]',
				description TEXT,
				perks TEXT NOT NULL DEFAULT '[]',
				extra_info TEXT,
				check_in TEXT,
				check_out TEXT,
				max_guests INTEGER NOT NULL DEFAULT 1,
				price INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);
			CREATE INDEX idx_places_owner_id ON places(owner_id);
		`,
	},
	{
		name: "003_create_bookings",
		up: `
			CREATE TABLE bookings (
				id TEXT PRIMARY KEY,
				place_id TEXT NOT NULL,
				user_id TEXT NOT NULL,
				check_in TEXT NOT NULL,
				check_out TEXT NOT NULL,
				guests INTEGER NOT NULL DEFAULT 1,
				name TEXT NOT NULL,
				phone TEXT,
				price INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (place_id) REFERENCES places(id),
				FOREIGN KEY (user_id) REFERENCES users(id)
			);
			CREATE INDEX idx_bookings_user_id ON bookings(user_id);
			CREATE INDEX idx_bookings_place_id ON bookings(place_id);
		`,
	},
	{
		name: "004_create_audit_logs",
		up: `
			CREATE TABLE audit_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
				user_id TEXT,
				action TEXT NOT NULL,
				target TEXT,
				ip_address TEXT
			);
			CREATE INDEX idx_audit_logs_timestamp ON audit_logs(timestamp);
			CREATE INDEX idx_audit_logs_user_id ON audit_logs(user_id);
			CREATE INDEX idx_audit_logs_action ON audit_logs(action);
		`,
	},
}
