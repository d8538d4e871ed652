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
)

// vehicleRateService implements the rates-admin operations. Writes go to the
// repository first; a change event is published afterwards so every running
// rate store refreshes its snapshot.
type vehicleRateService struct {
	repo      portsrepo.VehicleRateRepositoryFacade
	publisher portsrepo.RateChangePublisher
}

var _ portssvc.VehicleRateSvcFacade = (*vehicleRateService)(nil)

// NewVehicleRateService creates the rates-admin service. The publisher may be
// nil when no feed is configured.
func NewVehicleRateService(repo portsrepo.VehicleRateRepositoryFacade, publisher portsrepo.RateChangePublisher) portssvc.VehicleRateSvcFacade {
	return &vehicleRateService{repo: repo, publisher: publisher}
}

// publishChange is fire-and-forget: a lost event only delays snapshot refresh
// on other instances, it never fails the admin write.
func (s *vehicleRateService) publishChange(ctx context.Context, action string) {
	if s.publisher == nil {
		return
	}
	event := portsrepo.RateChangeEvent{
		Table:      portsrepo.FeedTableRates,
		Action:     action,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishRateChange(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to publish rate change",
			slog.String("action", action), slog.String("error", err.Error()))
	}
}

func (s *vehicleRateService) CreateVehicleRate(ctx context.Context, req dto.CreateVehicleRateRequest, creatorUserID string) (*domain.VehicleRate, error) {
	now := time.Now()
	rate := domain.VehicleRate{
		RateID:      uuid.NewString(),
		VehicleType: req.VehicleType,
		BasePrice:   req.BasePrice,
		PricePerKm:  req.PricePerKm,
		MinPrice:    req.MinPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := rate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.repo.SaveVehicleRate(ctx, rate); err != nil {
		return nil, err
	}

	s.publishChange(ctx, portsrepo.FeedActionInsert)
	return &rate, nil
}

func (s *vehicleRateService) GetVehicleRateByType(ctx context.Context, vehicleType string) (*domain.VehicleRate, error) {
	return s.repo.FindVehicleRateByType(ctx, vehicleType)
}

func (s *vehicleRateService) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	return s.repo.ListVehicleRates(ctx)
}

func (s *vehicleRateService) UpdateVehicleRate(ctx context.Context, vehicleType string, req dto.UpdateVehicleRateRequest, updaterUserID string) (*domain.VehicleRate, error) {
	existing, err := s.repo.FindVehicleRateByType(ctx, vehicleType)
	if err != nil {
		return nil, err
	}

	existing.BasePrice = req.BasePrice
	existing.PricePerKm = req.PricePerKm
	existing.MinPrice = req.MinPrice
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.repo.UpdateVehicleRate(ctx, *existing); err != nil {
		return nil, err
	}

	s.publishChange(ctx, portsrepo.FeedActionUpdate)
	return existing, nil
}

func (s *vehicleRateService) DeleteVehicleRate(ctx context.Context, vehicleType string, deleterUserID string) error {
	if err := s.repo.DeleteVehicleRate(ctx, vehicleType); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("vehicle rate deleted",
		slog.String("vehicleType", vehicleType), slog.String("by", deleterUserID))
	s.publishChange(ctx, portsrepo.FeedActionDelete)
	return nil
}
