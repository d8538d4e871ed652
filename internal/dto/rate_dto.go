package dto

import (
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleRateRequest defines the structure for creating a vehicle rate.
type CreateVehicleRateRequest struct {
	VehicleType string          `json:"vehicleType" binding:"required,uppercase"`
	BasePrice   decimal.Decimal `json:"basePrice" binding:"required"`
	PricePerKm  decimal.Decimal `json:"pricePerKm" binding:"required"`
	MinPrice    decimal.Decimal `json:"minPrice" binding:"required"`
}

// UpdateVehicleRateRequest defines the structure for updating a vehicle rate.
// The vehicle type itself is immutable; only the amounts change.
type UpdateVehicleRateRequest struct {
	BasePrice  decimal.Decimal `json:"basePrice" binding:"required"`
	PricePerKm decimal.Decimal `json:"pricePerKm" binding:"required"`
	MinPrice   decimal.Decimal `json:"minPrice" binding:"required"`
}

// VehicleRateResponse defines the structure for API responses containing rate details.
type VehicleRateResponse struct {
	RateID        string          `json:"rateID"`
	VehicleType   string          `json:"vehicleType"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	PricePerKm    decimal.Decimal `json:"pricePerKm"`
	MinPrice      decimal.Decimal `json:"minPrice"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToVehicleRateResponse converts a domain.VehicleRate to VehicleRateResponse DTO
func ToVehicleRateResponse(rate *domain.VehicleRate) VehicleRateResponse {
	return VehicleRateResponse{
		RateID:        rate.RateID,
		VehicleType:   rate.VehicleType,
		BasePrice:     rate.BasePrice,
		PricePerKm:    rate.PricePerKm,
		MinPrice:      rate.MinPrice,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListVehicleRateResponse converts a slice of domain rates to response DTOs.
func ToListVehicleRateResponse(rates []domain.VehicleRate) []VehicleRateResponse {
	responses := make([]VehicleRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToVehicleRateResponse(&rates[i])
	}
	return responses
}
