package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
)

// rateSnapshot is one immutable, internally consistent view of all pricing
// data. Readers always see a whole snapshot, never a mix of two fetches.
type rateSnapshot struct {
	rates       map[string]domain.VehicleRate
	optionRates map[string]domain.OptionRate

	rateList   []domain.VehicleRate
	optionList []domain.OptionRate
}

// rateStoreService caches vehicle and option rates in memory and swaps the
// whole snapshot atomically on refresh. A failed refresh keeps the previous
// snapshot serving reads.
type rateStoreService struct {
	rateReader   portsrepo.VehicleRateReader
	optionReader portsrepo.OptionRateReader
	feed         portsrepo.RateChangeSubscriber
	logger       *slog.Logger

	snapshot atomic.Pointer[rateSnapshot]
	initMu   sync.Mutex

	stopOnce sync.Once
	cancel   context.CancelFunc
}

var _ portssvc.RateStoreSvcFacade = (*rateStoreService)(nil)

// NewRateStoreService creates the rate cache. The feed may be nil; the store
// then only refreshes when Refresh is called explicitly.
func NewRateStoreService(rateReader portsrepo.VehicleRateReader, optionReader portsrepo.OptionRateReader, feed portsrepo.RateChangeSubscriber, logger *slog.Logger) portssvc.RateStoreSvcFacade {
	return &rateStoreService{
		rateReader:   rateReader,
		optionReader: optionReader,
		feed:         feed,
		logger:       logger.With(slog.String("component", "rate_store")),
	}
}

func (s *rateStoreService) fetchSnapshot(ctx context.Context) (*rateSnapshot, error) {
	rates, err := s.rateReader.ListVehicleRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching vehicle rates: %v", apperrors.ErrUnavailable, err)
	}
	optionRates, err := s.optionReader.ListOptionRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching option rates: %v", apperrors.ErrUnavailable, err)
	}

	snap := &rateSnapshot{
		rates:       make(map[string]domain.VehicleRate, len(rates)),
		optionRates: make(map[string]domain.OptionRate, len(optionRates)),
		rateList:    rates,
		optionList:  optionRates,
	}
	for _, r := range rates {
		snap.rates[r.VehicleType] = r
	}
	for _, o := range optionRates {
		snap.optionRates[o.OptionType] = o
	}
	return snap, nil
}

// Initialize performs the first full fetch. Concurrent callers serialize on
// initMu; once a snapshot exists the call is a no-op.
func (s *rateStoreService) Initialize(ctx context.Context) error {
	if s.snapshot.Load() != nil {
		return nil
	}

	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.snapshot.Load() != nil {
		return nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("rate store initialization failed: %w", err)
	}
	s.snapshot.Store(snap)
	s.logger.Info("rate store initialized",
		slog.Int("vehicleRates", len(snap.rateList)),
		slog.Int("optionRates", len(snap.optionList)))
	return nil
}

// Refresh re-fetches everything and atomically replaces the snapshot. When
// two refreshes race, whichever stores last wins; both are complete views.
func (s *rateStoreService) Refresh(ctx context.Context) error {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping previous snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("rate store refresh failed: %w", err)
	}
	s.snapshot.Store(snap)
	s.logger.Info("rate snapshot refreshed",
		slog.Int("vehicleRates", len(snap.rateList)),
		slog.Int("optionRates", len(snap.optionList)))
	return nil
}

func (s *rateStoreService) GetRate(vehicleType string) (domain.VehicleRate, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return domain.VehicleRate{}, apperrors.ErrNotInitialized
	}
	rate, ok := snap.rates[vehicleType]
	if !ok {
		return domain.VehicleRate{}, fmt.Errorf("rate for vehicle type %s %w", vehicleType, apperrors.ErrNotFound)
	}
	return rate, nil
}

func (s *rateStoreService) AllRates() ([]domain.VehicleRate, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return snap.rateList, nil
}

func (s *rateStoreService) AllOptionRates() ([]domain.OptionRate, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return snap.optionList, nil
}

// Start subscribes to the change feed. Every event, whatever its table or
// action, triggers a full refresh; the payload is not consumed beyond logging.
func (s *rateStoreService) Start(ctx context.Context) error {
	if s.feed == nil {
		s.logger.Warn("no rate change feed configured, snapshot refreshes only on demand")
		return nil
	}

	feedCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	err := s.feed.SubscribeRateChanges(feedCtx, func(event portsrepo.RateChangeEvent) {
		s.logger.Info("rate change received",
			slog.String("table", event.Table),
			slog.String("action", event.Action))
		if err := s.Refresh(feedCtx); err != nil {
			s.logger.Error("feed-triggered refresh failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start rate change subscription: %w", err)
	}
	return nil
}

// Stop cancels the feed subscription. Safe to call more than once.
func (s *rateStoreService) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
