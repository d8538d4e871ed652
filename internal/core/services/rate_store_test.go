package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func standardRate() domain.VehicleRate {
	return domain.VehicleRate{
		RateID:      "rate-1",
		VehicleType: domain.VehicleStandard,
		BasePrice:   decimal.NewFromInt(30),
		PricePerKm:  decimal.NewFromInt(2),
		MinPrice:    decimal.NewFromInt(35),
	}
}

type RateStoreTestSuite struct {
	suite.Suite
	rateRepo   *MockVehicleRateRepository
	optionRepo *MockOptionRateRepository
	feed       *fakeRateChangeFeed
	store      portssvc.RateStoreSvcFacade
}

func (suite *RateStoreTestSuite) SetupTest() {
	suite.rateRepo = new(MockVehicleRateRepository)
	suite.optionRepo = new(MockOptionRateRepository)
	suite.feed = &fakeRateChangeFeed{}
	suite.store = services.NewRateStoreService(suite.rateRepo, suite.optionRepo, suite.feed, testLogger())
}

func (suite *RateStoreTestSuite) expectFetch(rates []domain.VehicleRate, options []domain.OptionRate) {
	suite.rateRepo.On("ListVehicleRates", mock.Anything).Return(rates, nil).Once()
	suite.optionRepo.On("ListOptionRates", mock.Anything).Return(options, nil).Once()
}

func (suite *RateStoreTestSuite) TestReadsBeforeInitialize() {
	_, err := suite.store.GetRate(domain.VehicleStandard)
	suite.ErrorIs(err, apperrors.ErrNotInitialized)

	_, err = suite.store.AllRates()
	suite.ErrorIs(err, apperrors.ErrNotInitialized)

	_, err = suite.store.AllOptionRates()
	suite.ErrorIs(err, apperrors.ErrNotInitialized)
}

func (suite *RateStoreTestSuite) TestInitializeAndGet() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, []domain.OptionRate{
		{OptionRateID: "opt-1", OptionType: "CHILD_SEAT", Price: decimal.NewFromInt(15)},
	})

	suite.Require().NoError(suite.store.Initialize(context.Background()))

	rate, err := suite.store.GetRate(domain.VehicleStandard)
	suite.Require().NoError(err)
	suite.True(rate.BasePrice.Equal(decimal.NewFromInt(30)))

	options, err := suite.store.AllOptionRates()
	suite.Require().NoError(err)
	suite.Len(options, 1)

	suite.rateRepo.AssertExpectations(suite.T())
}

func (suite *RateStoreTestSuite) TestInitializeIsIdempotent() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, nil)

	suite.Require().NoError(suite.store.Initialize(context.Background()))
	// Second call must not hit the repository again.
	suite.Require().NoError(suite.store.Initialize(context.Background()))

	suite.rateRepo.AssertNumberOfCalls(suite.T(), "ListVehicleRates", 1)
}

func (suite *RateStoreTestSuite) TestInitializeFailureLeavesStoreUninitialized() {
	suite.rateRepo.On("ListVehicleRates", mock.Anything).Return(nil, assert.AnError).Once()

	err := suite.store.Initialize(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)

	_, err = suite.store.GetRate(domain.VehicleStandard)
	suite.ErrorIs(err, apperrors.ErrNotInitialized)
}

func (suite *RateStoreTestSuite) TestGetRateUnknownType() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, nil)
	suite.Require().NoError(suite.store.Initialize(context.Background()))

	_, err := suite.store.GetRate("HELICOPTER")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateStoreTestSuite) TestRefreshReplacesSnapshot() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, nil)
	suite.Require().NoError(suite.store.Initialize(context.Background()))

	updated := standardRate()
	updated.BasePrice = decimal.NewFromInt(40)
	suite.expectFetch([]domain.VehicleRate{updated}, nil)

	suite.Require().NoError(suite.store.Refresh(context.Background()))

	rate, err := suite.store.GetRate(domain.VehicleStandard)
	suite.Require().NoError(err)
	suite.True(rate.BasePrice.Equal(decimal.NewFromInt(40)))
}

func (suite *RateStoreTestSuite) TestRefreshFailureKeepsPreviousSnapshot() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, nil)
	suite.Require().NoError(suite.store.Initialize(context.Background()))

	suite.rateRepo.On("ListVehicleRates", mock.Anything).Return(nil, assert.AnError).Once()

	err := suite.store.Refresh(context.Background())
	suite.Require().Error(err)

	// Stale reads still serve.
	rate, err := suite.store.GetRate(domain.VehicleStandard)
	suite.Require().NoError(err)
	suite.True(rate.BasePrice.Equal(decimal.NewFromInt(30)))
}

func (suite *RateStoreTestSuite) TestFeedEventTriggersRefresh() {
	suite.expectFetch([]domain.VehicleRate{standardRate()}, nil)
	suite.Require().NoError(suite.store.Initialize(context.Background()))

	suite.Require().NoError(suite.store.Start(context.Background()))
	suite.Require().NotNil(suite.feed.handler)

	updated := standardRate()
	updated.PricePerKm = decimal.NewFromInt(3)
	suite.expectFetch([]domain.VehicleRate{updated}, nil)

	// The fake feed delivers synchronously.
	suite.feed.handler(portsrepo.RateChangeEvent{Table: portsrepo.FeedTableRates, Action: portsrepo.FeedActionUpdate})

	rate, err := suite.store.GetRate(domain.VehicleStandard)
	suite.Require().NoError(err)
	suite.True(rate.PricePerKm.Equal(decimal.NewFromInt(3)))

	suite.store.Stop()
}

func TestRateStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RateStoreTestSuite))
}
