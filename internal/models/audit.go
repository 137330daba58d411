package models

import "time"

// AuditLog records a security-relevant event: who did what to which
// resource, and from where.
type AuditLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	IPAddress string    `json:"ip_address"`
}

// Audited actions
const (
	ActionRegister          = "user.register"
	ActionLogin             = "user.login"
	ActionLoginDenied       = "user.login_denied"
	ActionPlaceCreate       = "place.create"
	ActionPlaceUpdate       = "place.update"
	ActionPlaceUpdateDenied = "place.update_denied"
	ActionBookingCreate     = "booking.create"
)
