package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/tariff"
)

// Wednesday 14:00, peak, no holiday.
var weekdayAfternoon = time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)

type PricingServiceTestSuite struct {
	suite.Suite
	rateRepo   *MockVehicleRateRepository
	optionRepo *MockOptionRateRepository
	store      portssvc.RateStoreSvcFacade
	pricing    portssvc.PricingSvcFacade
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.rateRepo = new(MockVehicleRateRepository)
	suite.optionRepo = new(MockOptionRateRepository)
	suite.store = services.NewRateStoreService(suite.rateRepo, suite.optionRepo, nil, testLogger())
	suite.pricing = services.NewPricingService(suite.store, tariff.FixedFrenchHolidays{}, services.FallbackRates{}, testLogger())
}

func (suite *PricingServiceTestSuite) seedStore(rates []domain.VehicleRate, options []domain.OptionRate) {
	suite.rateRepo.On("ListVehicleRates", mock.Anything).Return(rates, nil)
	suite.optionRepo.On("ListOptionRates", mock.Anything).Return(options, nil)
	suite.Require().NoError(suite.store.Initialize(context.Background()))
}

func parisInput(distanceKm float64) domain.QuoteInput {
	return domain.QuoteInput{
		DistanceKm:     distanceKm,
		VehicleType:    domain.VehicleStandard,
		PickupTime:     weekdayAfternoon,
		PickupAddress:  "12 Rue de Rivoli, 75001 Paris",
		DropoffAddress: "Gare de Lyon, 75012 Paris",
	}
}

func (suite *PricingServiceTestSuite) TestStandardTrip() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	// base 30 + 2 * 10km = 50, above the 35 floor
	breakdown, err := suite.pricing.CalculatePrice(context.Background(), parisInput(10))

	suite.Require().NoError(err)
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(50)), "got %s", breakdown.Total)
	suite.True(breakdown.Base.Equal(decimal.NewFromInt(30)))
	suite.True(breakdown.Distance.Equal(decimal.NewFromInt(20)))
	suite.True(breakdown.Options.IsZero())
	suite.Equal(domain.ZoneParis, breakdown.Zone)
	suite.Equal(domain.PeriodPeak, breakdown.Period)
	suite.Equal("EUR", breakdown.Currency)
	suite.False(breakdown.Fallback)
}

func (suite *PricingServiceTestSuite) TestMinimumFareFloor() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	// base 30 + 2 * 1km = 32, lifted to the 35 floor
	breakdown, err := suite.pricing.CalculatePrice(context.Background(), parisInput(1))

	suite.Require().NoError(err)
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(35)), "got %s", breakdown.Total)
}

func (suite *PricingServiceTestSuite) TestOptionsAdded() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, []domain.OptionRate{
		{OptionType: "CHILD_SEAT", Price: decimal.NewFromInt(15)},
		{OptionType: "PETS", Price: decimal.NewFromInt(10)},
	})

	input := parisInput(10)
	input.Options = []string{"CHILD_SEAT", "PETS"}

	breakdown, err := suite.pricing.CalculatePrice(context.Background(), input)

	suite.Require().NoError(err)
	suite.True(breakdown.Options.Equal(decimal.NewFromInt(25)))
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(75)))
}

func (suite *PricingServiceTestSuite) TestUnknownOptionContributesZero() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, []domain.OptionRate{
		{OptionType: "CHILD_SEAT", Price: decimal.NewFromInt(15)},
	})

	input := parisInput(10)
	input.Options = []string{"CHILD_SEAT", "JACUZZI"}

	breakdown, err := suite.pricing.CalculatePrice(context.Background(), input)

	suite.Require().NoError(err)
	suite.True(breakdown.Options.Equal(decimal.NewFromInt(15)))
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(65)))
}

func (suite *PricingServiceTestSuite) TestSuburbMultiplierOnPreOptionsSubtotal() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, []domain.OptionRate{
		{OptionType: "CHILD_SEAT", Price: decimal.NewFromInt(15)},
	})

	input := parisInput(10)
	input.DropoffAddress = "5 Avenue Jean Jaurès, 93100 Montreuil"
	input.Options = []string{"CHILD_SEAT"}

	breakdown, err := suite.pricing.CalculatePrice(context.Background(), input)

	suite.Require().NoError(err)
	suite.Equal(domain.ZoneSuburb, breakdown.Zone)
	// (30 + 20) * 1.15 + 15 = 72.5; the option is not multiplied
	suite.True(breakdown.Total.Equal(decimal.NewFromFloat(72.5)), "got %s", breakdown.Total)
}

func (suite *PricingServiceTestSuite) TestAirportMultiplier() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	input := parisInput(25)
	input.DropoffAddress = "Aéroport CDG Terminal 2E"

	breakdown, err := suite.pricing.CalculatePrice(context.Background(), input)

	suite.Require().NoError(err)
	suite.Equal(domain.ZoneAirport, breakdown.Zone)
	// (30 + 50) * 1.20 = 96
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(96)), "got %s", breakdown.Total)
}

func (suite *PricingServiceTestSuite) TestMonotonicInDistance() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	prev := decimal.Zero
	for _, km := range []float64{0, 1, 2.5, 5, 10, 50, 200} {
		breakdown, err := suite.pricing.CalculatePrice(context.Background(), parisInput(km))
		suite.Require().NoError(err)
		suite.True(breakdown.Total.GreaterThanOrEqual(prev), "total decreased at %v km", km)
		prev = breakdown.Total
	}
}

func (suite *PricingServiceTestSuite) TestDeterministic() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	first, err := suite.pricing.CalculatePrice(context.Background(), parisInput(12.3))
	suite.Require().NoError(err)
	second, err := suite.pricing.CalculatePrice(context.Background(), parisInput(12.3))
	suite.Require().NoError(err)
	suite.True(first.Total.Equal(second.Total))
}

func (suite *PricingServiceTestSuite) TestNegativeDistanceRejected() {
	_, err := suite.pricing.CalculatePrice(context.Background(), parisInput(-1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PricingServiceTestSuite) TestUnknownVehicleTypeWithoutFallback() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	input := parisInput(10)
	input.VehicleType = "HELICOPTER"

	_, err := suite.pricing.CalculatePrice(context.Background(), input)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PricingServiceTestSuite) TestFallbackWhenStoreUnavailable() {
	suite.rateRepo.On("ListVehicleRates", mock.Anything).Return(nil, assert.AnError)

	fallback := services.FallbackRates{
		Enabled:    true,
		BasePrice:  decimal.NewFromInt(30),
		PricePerKm: decimal.NewFromInt(2),
		MinPrice:   decimal.NewFromInt(35),
	}
	pricing := services.NewPricingService(suite.store, tariff.FixedFrenchHolidays{}, fallback, testLogger())

	breakdown, err := pricing.CalculatePrice(context.Background(), parisInput(10))

	suite.Require().NoError(err)
	suite.True(breakdown.Fallback)
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(50)))
}

func (suite *PricingServiceTestSuite) TestNightPeriodReported() {
	suite.seedStore([]domain.VehicleRate{standardRate()}, nil)

	input := parisInput(10)
	input.PickupTime = time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)

	breakdown, err := suite.pricing.CalculatePrice(context.Background(), input)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodNight, breakdown.Period)
	// Period is informational; the amounts do not change with it.
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(50)))
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
