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

// optionRateService implements the option-rates-admin operations.
type optionRateService struct {
	repo      portsrepo.OptionRateRepositoryFacade
	publisher portsrepo.RateChangePublisher
}

var _ portssvc.OptionRateSvcFacade = (*optionRateService)(nil)

// NewOptionRateService creates the option-rates-admin service.
func NewOptionRateService(repo portsrepo.OptionRateRepositoryFacade, publisher portsrepo.RateChangePublisher) portssvc.OptionRateSvcFacade {
	return &optionRateService{repo: repo, publisher: publisher}
}

func (s *optionRateService) publishChange(ctx context.Context, action string) {
	if s.publisher == nil {
		return
	}
	event := portsrepo.RateChangeEvent{
		Table:      portsrepo.FeedTableOptionRates,
		Action:     action,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishRateChange(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to publish option rate change",
			slog.String("action", action), slog.String("error", err.Error()))
	}
}

func (s *optionRateService) CreateOptionRate(ctx context.Context, req dto.CreateOptionRateRequest, creatorUserID string) (*domain.OptionRate, error) {
	now := time.Now()
	rate := domain.OptionRate{
		OptionRateID: uuid.NewString(),
		OptionType:   req.OptionType,
		Price:        req.Price,
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

	if err := s.repo.SaveOptionRate(ctx, rate); err != nil {
		return nil, err
	}

	s.publishChange(ctx, portsrepo.FeedActionInsert)
	return &rate, nil
}

func (s *optionRateService) GetOptionRateByType(ctx context.Context, optionType string) (*domain.OptionRate, error) {
	return s.repo.FindOptionRateByType(ctx, optionType)
}

func (s *optionRateService) ListOptionRates(ctx context.Context) ([]domain.OptionRate, error) {
	return s.repo.ListOptionRates(ctx)
}

func (s *optionRateService) UpdateOptionRate(ctx context.Context, optionType string, req dto.UpdateOptionRateRequest, updaterUserID string) (*domain.OptionRate, error) {
	existing, err := s.repo.FindOptionRateByType(ctx, optionType)
	if err != nil {
		return nil, err
	}

	existing.Price = req.Price
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.repo.UpdateOptionRate(ctx, *existing); err != nil {
		return nil, err
	}

	s.publishChange(ctx, portsrepo.FeedActionUpdate)
	return existing, nil
}

func (s *optionRateService) DeleteOptionRate(ctx context.Context, optionType string, deleterUserID string) error {
	if err := s.repo.DeleteOptionRate(ctx, optionType); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("option rate deleted",
		slog.String("optionType", optionType), slog.String("by", deleterUserID))
	s.publishChange(ctx, portsrepo.FeedActionDelete)
	return nil
}
