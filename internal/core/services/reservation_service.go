package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/middleware"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/pagination"
)

// reservationService implements booking operations. The price charged is
// snapshotted at creation time; later rate edits never reprice a booking.
type reservationService struct {
	repo     portsrepo.ReservationRepositoryFacade
	userRepo portsrepo.UserReader
	pricing  portssvc.PricingSvcFacade
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// NewReservationService creates the booking service.
func NewReservationService(repo portsrepo.ReservationRepositoryFacade, userRepo portsrepo.UserReader, pricing portssvc.PricingSvcFacade) portssvc.ReservationSvcFacade {
	return &reservationService{repo: repo, userRepo: userRepo, pricing: pricing}
}

func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, userID string) (*domain.Reservation, error) {
	if req.PickupTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: pickup time must be in the future", apperrors.ErrValidation)
	}

	quote := dto.QuoteRequest{
		DistanceKm:     req.DistanceKm,
		VehicleType:    req.VehicleType,
		Options:        req.Options,
		PickupTime:     req.PickupTime,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
	}
	breakdown, err := s.pricing.CalculatePrice(ctx, quote.ToQuoteInput())
	if err != nil {
		return nil, fmt.Errorf("failed to price reservation: %w", err)
	}

	now := time.Now()
	reservation := domain.Reservation{
		ReservationID:  uuid.NewString(),
		UserID:         userID,
		VehicleType:    req.VehicleType,
		Options:        req.Options,
		PickupTime:     req.PickupTime,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		DistanceKm:     req.DistanceKm,
		Status:         domain.ReservationPending,
		EstimatedPrice: breakdown.Total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.repo.SaveReservation(ctx, reservation); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("reservation created",
		slog.String("reservationID", reservation.ReservationID),
		slog.String("vehicleType", reservation.VehicleType),
		slog.Bool("fallbackPricing", breakdown.Fallback))
	return &reservation, nil
}

// GetReservation enforces ownership: customers see only their own bookings,
// drivers only their assigned rides, admins everything.
func (s *reservationService) GetReservation(ctx context.Context, reservationID string, requesterID string, requesterRole domain.UserRole) (*domain.Reservation, error) {
	reservation, err := s.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !canViewReservation(reservation, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: reservation belongs to another user", apperrors.ErrForbidden)
	}
	return reservation, nil
}

func canViewReservation(r *domain.Reservation, requesterID string, role domain.UserRole) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RoleDriver:
		return r.UserID == requesterID || (r.DriverID != nil && *r.DriverID == requesterID)
	default:
		return r.UserID == requesterID
	}
}

func decodeListParams(params dto.ListReservationsParams) (portsrepo.ListReservationsParams, error) {
	repoParams := portsrepo.ListReservationsParams{Limit: params.Limit}
	if repoParams.Limit <= 0 {
		repoParams.Limit = 20
	}
	if params.NextToken != "" {
		pickupTime, createdAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return repoParams, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		repoParams.AfterPickupTime = pickupTime
		repoParams.AfterCreatedAt = createdAt
	}
	return repoParams, nil
}

func buildListResponse(reservations []domain.Reservation, limit int) *dto.ListReservationsResponse {
	resp := &dto.ListReservationsResponse{
		Reservations: dto.ToListReservationResponse(reservations),
	}
	if len(reservations) == limit {
		last := reservations[len(reservations)-1]
		resp.NextToken = pagination.EncodeToken(last.PickupTime, last.CreatedAt)
	}
	return resp
}

func (s *reservationService) ListUserReservations(ctx context.Context, userID string, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	repoParams, err := decodeListParams(params)
	if err != nil {
		return nil, err
	}
	reservations, err := s.repo.ListReservationsByUser(ctx, userID, repoParams)
	if err != nil {
		return nil, err
	}
	return buildListResponse(reservations, repoParams.Limit), nil
}

func (s *reservationService) ListAllReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	repoParams, err := decodeListParams(params)
	if err != nil {
		return nil, err
	}
	reservations, err := s.repo.ListReservations(ctx, repoParams)
	if err != nil {
		return nil, err
	}
	return buildListResponse(reservations, repoParams.Limit), nil
}

// UpdateReservationStatus applies one lifecycle transition. Customers may
// only cancel their own pending or confirmed bookings; the remaining
// transitions are for drivers on their assigned rides and admins.
func (s *reservationService) UpdateReservationStatus(ctx context.Context, reservationID string, req dto.UpdateReservationStatusRequest, requesterID string, requesterRole domain.UserRole) (*domain.Reservation, error) {
	reservation, err := s.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	target := domain.ReservationStatus(req.Status)
	if !domain.CanTransition(reservation.Status, target) {
		return nil, fmt.Errorf("%w: cannot move reservation from %s to %s",
			apperrors.ErrValidation, reservation.Status, target)
	}
	if err := checkTransitionAllowed(reservation, target, requesterID, requesterRole); err != nil {
		return nil, err
	}

	reservation.Status = target
	if target == domain.ReservationCompleted {
		if req.FinalPrice != nil {
			reservation.FinalPrice = req.FinalPrice
		} else {
			estimated := reservation.EstimatedPrice
			reservation.FinalPrice = &estimated
		}
	}
	reservation.LastUpdatedAt = time.Now()
	reservation.LastUpdatedBy = requesterID

	if err := s.repo.UpdateReservation(ctx, *reservation); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("reservation status updated",
		slog.String("reservationID", reservationID),
		slog.String("status", string(target)))
	return reservation, nil
}

func checkTransitionAllowed(r *domain.Reservation, target domain.ReservationStatus, requesterID string, role domain.UserRole) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if role == domain.RoleDriver && r.DriverID != nil && *r.DriverID == requesterID {
		if target == domain.ReservationInProgress || target == domain.ReservationCompleted {
			return nil
		}
	}
	if r.UserID == requesterID && target == domain.ReservationCancelled {
		return nil
	}
	return fmt.Errorf("%w: not allowed to move this reservation to %s", apperrors.ErrForbidden, target)
}

// AssignDriver attaches a driver account to a pending or confirmed booking.
func (s *reservationService) AssignDriver(ctx context.Context, reservationID string, driverID string, updaterUserID string) (*domain.Reservation, error) {
	reservation, err := s.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.IsTerminal() {
		return nil, fmt.Errorf("%w: reservation is already %s", apperrors.ErrValidation, reservation.Status)
	}

	driver, err := s.userRepo.FindUserByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("driver lookup failed: %w", err)
	}
	if driver.Role != domain.RoleDriver {
		return nil, fmt.Errorf("%w: user %s is not a driver", apperrors.ErrValidation, driverID)
	}

	reservation.DriverID = &driver.UserID
	reservation.LastUpdatedAt = time.Now()
	reservation.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateReservation(ctx, *reservation); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("driver assigned",
		slog.String("reservationID", reservationID),
		slog.String("driverID", driverID))
	return reservation, nil
}
