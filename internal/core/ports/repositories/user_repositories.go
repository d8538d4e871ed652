package repositories

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByGoogleID retrieves a user by their Google account ID.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)

	// ListUsers retrieves users with limit/offset (backoffice view).
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser replaces the mutable fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
