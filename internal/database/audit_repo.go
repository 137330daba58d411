package database

import (
	"database/sql"
	"time"

	"roost-backend/internal/models"
)

// AuditRepo handles audit log database operations
type AuditRepo struct {
	db *sql.DB
}

// NewAuditRepo creates a new audit repository
func NewAuditRepo() *AuditRepo {
	return &AuditRepo{db: DB}
}

// Log records an event with the current timestamp. Audit writes are
// best effort; callers log failures but never fail the request on them.
func (r *AuditRepo) Log(userID, action, target, ipAddress string) error {
	_, err := r.db.Exec(`
		INSERT INTO audit_logs (timestamp, user_id, action, target, ip_address)
		VALUES (?, ?, ?, ?, ?)
	`, time.Now(), userID, action, target, ipAddress)
	return err
}

// ListRecent retrieves the most recent entries, newest first.
func (r *AuditRepo) ListRecent(limit int) ([]*models.AuditLog, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp, user_id, action, target, ip_address
		FROM audit_logs ORDER BY timestamp DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*models.AuditLog{}
	for rows.Next() {
		entry := &models.AuditLog{}
		err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.UserID,
			&entry.Action, &entry.Target, &entry.IPAddress)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
