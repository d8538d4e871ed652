package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	UserID       string         `json:"userID" db:"user_id"`
	Username     string         `json:"username" db:"username"`
	PasswordHash string         `json:"-" db:"password_hash"`
	Name         string         `json:"name" db:"name"`
	Role         string         `json:"role" db:"role"`
	GoogleID     sql.NullString `json:"-" db:"google_id"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
