package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a row of the reservations table. Options are stored as a
// text array; estimated_price is the pricing snapshot taken at creation.
type Reservation struct {
	ReservationID  string           `json:"reservationID" db:"reservation_id"`
	UserID         string           `json:"userID" db:"user_id"`
	DriverID       *string          `json:"driverID" db:"driver_id"`
	VehicleType    string           `json:"vehicleType" db:"vehicle_type"`
	Options        []string         `json:"options" db:"options"`
	PickupTime     time.Time        `json:"pickupTime" db:"pickup_time"`
	PickupAddress  string           `json:"pickupAddress" db:"pickup_address"`
	DropoffAddress string           `json:"dropoffAddress" db:"dropoff_address"`
	DistanceKm     float64          `json:"distanceKm" db:"distance_km"`
	Status         string           `json:"status" db:"status"`
	EstimatedPrice decimal.Decimal  `json:"estimatedPrice" db:"estimated_price"`
	FinalPrice     *decimal.Decimal `json:"finalPrice" db:"final_price"`
	AuditFields
}
