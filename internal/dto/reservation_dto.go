package dto

import (
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReservationRequest defines the structure for booking a ride.
type CreateReservationRequest struct {
	DistanceKm     float64   `json:"distanceKm" binding:"min=0"`
	VehicleType    string    `json:"vehicleType" binding:"required,uppercase"`
	Options        []string  `json:"options"`
	PickupTime     time.Time `json:"pickupTime" binding:"required"`
	PickupAddress  string    `json:"pickupAddress" binding:"required"`
	DropoffAddress string    `json:"dropoffAddress" binding:"required"`
}

// UpdateReservationStatusRequest moves a reservation through its lifecycle.
// FinalPrice is only consulted when the target status is COMPLETED; when
// omitted the estimated price is carried over.
type UpdateReservationStatusRequest struct {
	Status     string           `json:"status" binding:"required,oneof=CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
	FinalPrice *decimal.Decimal `json:"finalPrice,omitempty"`
}

// AssignDriverRequest attaches a validated driver to a reservation.
type AssignDriverRequest struct {
	DriverID string `json:"driverID" binding:"required"`
}

// ListReservationsParams carries query parameters for reservation listings.
type ListReservationsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ReservationResponse defines the API shape of a reservation.
type ReservationResponse struct {
	ReservationID  string           `json:"reservationID"`
	UserID         string           `json:"userID"`
	DriverID       *string          `json:"driverID,omitempty"`
	VehicleType    string           `json:"vehicleType"`
	Options        []string         `json:"options"`
	PickupTime     time.Time        `json:"pickupTime"`
	PickupAddress  string           `json:"pickupAddress"`
	DropoffAddress string           `json:"dropoffAddress"`
	DistanceKm     float64          `json:"distanceKm"`
	Status         string           `json:"status"`
	EstimatedPrice decimal.Decimal  `json:"estimatedPrice"`
	FinalPrice     *decimal.Decimal `json:"finalPrice,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListReservationsResponse is one page of reservations plus the resume token.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToReservationResponse converts a domain.Reservation to the API DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID:  r.ReservationID,
		UserID:         r.UserID,
		DriverID:       r.DriverID,
		VehicleType:    r.VehicleType,
		Options:        r.Options,
		PickupTime:     r.PickupTime,
		PickupAddress:  r.PickupAddress,
		DropoffAddress: r.DropoffAddress,
		DistanceKm:     r.DistanceKm,
		Status:         string(r.Status),
		EstimatedPrice: r.EstimatedPrice,
		FinalPrice:     r.FinalPrice,
		CreatedAt:      r.CreatedAt,
	}
}

// ToListReservationResponse converts a slice of domain reservations to response DTOs.
func ToListReservationResponse(rs []domain.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, len(rs))
	for i := range rs {
		responses[i] = ToReservationResponse(&rs[i])
	}
	return responses
}
