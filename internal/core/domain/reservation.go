package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle state of a booking.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationInProgress ReservationStatus = "IN_PROGRESS"
	ReservationCompleted  ReservationStatus = "COMPLETED"
	ReservationCancelled  ReservationStatus = "CANCELLED"
)

// reservationTransitions encodes the allowed status flow.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:    {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed:  {ReservationInProgress, ReservationCancelled},
	ReservationInProgress: {ReservationCompleted},
}

// CanTransition reports whether a reservation may move from one status to another.
func CanTransition(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Reservation is a customer booking. EstimatedPrice is a snapshot of the
// pricing calculation at creation time; later rate changes do not alter it.
// FinalPrice is set when the ride completes.
type Reservation struct {
	ReservationID  string            `json:"reservationID"`
	UserID         string            `json:"userID"`
	DriverID       *string           `json:"driverID,omitempty"`
	VehicleType    string            `json:"vehicleType"`
	Options        []string          `json:"options"`
	PickupTime     time.Time         `json:"pickupTime"`
	PickupAddress  string            `json:"pickupAddress"`
	DropoffAddress string            `json:"dropoffAddress"`
	DistanceKm     float64           `json:"distanceKm"`
	Status         ReservationStatus `json:"status"`
	EstimatedPrice decimal.Decimal   `json:"estimatedPrice"`
	FinalPrice     *decimal.Decimal  `json:"finalPrice,omitempty"`
	AuditFields
}

// IsTerminal reports whether the reservation can no longer change status.
func (r Reservation) IsTerminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationCancelled
}
