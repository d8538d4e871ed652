package services

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
)

// ReservationSvcFacade exposes booking operations. Read and mutate
// operations take the requester's identity and role so ownership checks
// live in one place.
type ReservationSvcFacade interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, userID string) (*domain.Reservation, error)
	GetReservation(ctx context.Context, reservationID string, requesterID string, requesterRole domain.UserRole) (*domain.Reservation, error)
	ListUserReservations(ctx context.Context, userID string, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error)
	ListAllReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error)
	UpdateReservationStatus(ctx context.Context, reservationID string, req dto.UpdateReservationStatusRequest, requesterID string, requesterRole domain.UserRole) (*domain.Reservation, error)
	AssignDriver(ctx context.Context, reservationID string, driverID string, updaterUserID string) (*domain.Reservation, error)
}
