package domain

import "time"

// UserRole distinguishes customers, drivers and backoffice admins.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleDriver   UserRole = "DRIVER"
	RoleAdmin    UserRole = "ADMIN"
)

// User represents an account on the platform.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	// GoogleID is set for accounts created through Google sign-in.
	GoogleID *string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo is the subset of the Google userinfo payload the platform consumes.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
