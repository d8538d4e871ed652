package services

import (
	"log/slog"

	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/platform/config"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/tariff"
	"github.com/shopspring/decimal"
)

// NewServiceContainer wires every service to its repositories and returns the
// container the handlers consume. The feed may be nil in single-instance
// deployments; the rate store then refreshes only on demand.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, feed portsrepo.RateChangeFeed, cfg *config.Config, logger *slog.Logger) *portssvc.ServiceContainer {
	var publisher portsrepo.RateChangePublisher
	var subscriber portsrepo.RateChangeSubscriber
	if feed != nil {
		publisher = feed
		subscriber = feed
	}

	rateStore := NewRateStoreService(repos.VehicleRateRepo, repos.OptionRateRepo, subscriber, logger)

	fallback := FallbackRates{
		Enabled:    cfg.FallbackPricingEnabled,
		BasePrice:  decimal.NewFromFloat(cfg.FallbackBasePrice),
		PricePerKm: decimal.NewFromFloat(cfg.FallbackPricePerKm),
		MinPrice:   decimal.NewFromFloat(cfg.FallbackMinPrice),
	}
	pricing := NewPricingService(rateStore, tariff.FixedFrenchHolidays{}, fallback, logger)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		VehicleRate: NewVehicleRateService(repos.VehicleRateRepo, publisher),
		OptionRate:  NewOptionRateService(repos.OptionRateRepo, publisher),
		RateStore:   rateStore,
		Pricing:     pricing,
		Reservation: NewReservationService(repos.ReservationRepo, repos.UserRepo, pricing),
		GoogleAuth:  NewGoogleAuthService(cfg),
	}
}
