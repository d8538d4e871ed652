package services

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
)

// UserSvcFacade exposes account operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// FindOrCreateGoogleUser resolves a verified Google identity to a local
	// account, creating a customer account on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}
