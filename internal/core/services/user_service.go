package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/middleware"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils"
)

// userService implements account operations.
type userService struct {
	repo portsrepo.UserRepositoryFacade
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates the account service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if _, err := s.repo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %s already taken: %w", username, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleCustomer
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("user created",
		slog.String("userID", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	return s.repo.DeleteUser(ctx, userID, deleterUserID)
}

// FindOrCreateGoogleUser resolves a verified Google identity to a local
// account. First sign-in creates a customer account keyed on the Google ID;
// the email becomes the username.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.ID == "" {
		return nil, fmt.Errorf("%w: google user info missing ID", apperrors.ErrValidation)
	}

	user, err := s.repo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(info.Email))
	if username == "" {
		return nil, fmt.Errorf("%w: google account has no email", apperrors.ErrValidation)
	}

	now := time.Now()
	userID := uuid.NewString()
	googleID := info.ID
	newUser := domain.User{
		UserID:   userID,
		Username: username,
		Name:     info.Name,
		Role:     domain.RoleCustomer,
		GoogleID: &googleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.repo.SaveUser(ctx, newUser); err != nil {
		// The email may already exist as a password account; do not link
		// silently, the user must sign in with their password instead.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("account with email %s already exists: %w", username, apperrors.ErrDuplicate)
		}
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("google user created", slog.String("userID", newUser.UserID))
	return &newUser, nil
}
