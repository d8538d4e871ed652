package services

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
)

// VehicleRateSvcFacade exposes the rates-admin operations. Every successful
// write publishes a change event so running rate stores refresh.
type VehicleRateSvcFacade interface {
	CreateVehicleRate(ctx context.Context, req dto.CreateVehicleRateRequest, creatorUserID string) (*domain.VehicleRate, error)
	GetVehicleRateByType(ctx context.Context, vehicleType string) (*domain.VehicleRate, error)
	ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error)
	UpdateVehicleRate(ctx context.Context, vehicleType string, req dto.UpdateVehicleRateRequest, updaterUserID string) (*domain.VehicleRate, error)
	DeleteVehicleRate(ctx context.Context, vehicleType string, deleterUserID string) error
}

// OptionRateSvcFacade exposes the option-rates-admin operations.
type OptionRateSvcFacade interface {
	CreateOptionRate(ctx context.Context, req dto.CreateOptionRateRequest, creatorUserID string) (*domain.OptionRate, error)
	GetOptionRateByType(ctx context.Context, optionType string) (*domain.OptionRate, error)
	ListOptionRates(ctx context.Context) ([]domain.OptionRate, error)
	UpdateOptionRate(ctx context.Context, optionType string, req dto.UpdateOptionRateRequest, updaterUserID string) (*domain.OptionRate, error)
	DeleteOptionRate(ctx context.Context, optionType string, deleterUserID string) error
}
