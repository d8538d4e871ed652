package dto

import (
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOptionRateRequest defines the structure for creating an option rate.
type CreateOptionRateRequest struct {
	OptionType string          `json:"optionType" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
}

// UpdateOptionRateRequest defines the structure for updating an option rate.
type UpdateOptionRateRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// OptionRateResponse defines the structure for API responses containing option rate details.
type OptionRateResponse struct {
	OptionRateID  string          `json:"optionRateID"`
	OptionType    string          `json:"optionType"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToOptionRateResponse converts a domain.OptionRate to OptionRateResponse DTO
func ToOptionRateResponse(rate *domain.OptionRate) OptionRateResponse {
	return OptionRateResponse{
		OptionRateID:  rate.OptionRateID,
		OptionType:    rate.OptionType,
		Price:         rate.Price,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListOptionRateResponse converts a slice of domain option rates to response DTOs.
func ToListOptionRateResponse(rates []domain.OptionRate) []OptionRateResponse {
	responses := make([]OptionRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToOptionRateResponse(&rates[i])
	}
	return responses
}
