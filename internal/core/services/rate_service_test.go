package services_test

import (
	"context"
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
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
)

type VehicleRateServiceTestSuite struct {
	suite.Suite
	repo      *MockVehicleRateRepository
	publisher *MockRateChangePublisher
	service   portssvc.VehicleRateSvcFacade
}

func (suite *VehicleRateServiceTestSuite) SetupTest() {
	suite.repo = new(MockVehicleRateRepository)
	suite.publisher = new(MockRateChangePublisher)
	suite.service = services.NewVehicleRateService(suite.repo, suite.publisher)
}

func (suite *VehicleRateServiceTestSuite) TestCreateSuccess() {
	req := dto.CreateVehicleRateRequest{
		VehicleType: "SHUTTLE",
		BasePrice:   decimal.NewFromInt(40),
		PricePerKm:  decimal.NewFromFloat(2.5),
		MinPrice:    decimal.NewFromInt(45),
	}
	suite.repo.On("SaveVehicleRate", mock.Anything, mock.AnythingOfType("domain.VehicleRate")).Return(nil)
	suite.publisher.On("PublishRateChange", mock.Anything, mock.MatchedBy(func(e portsrepo.RateChangeEvent) bool {
		return e.Table == portsrepo.FeedTableRates && e.Action == portsrepo.FeedActionInsert
	})).Return(nil)

	rate, err := suite.service.CreateVehicleRate(context.Background(), req, "admin-1")

	suite.Require().NoError(err)
	suite.NotEmpty(rate.RateID)
	suite.Equal("SHUTTLE", rate.VehicleType)
	suite.Equal("admin-1", rate.CreatedBy)
	suite.repo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *VehicleRateServiceTestSuite) TestCreateNegativePriceRejected() {
	req := dto.CreateVehicleRateRequest{
		VehicleType: "SHUTTLE",
		BasePrice:   decimal.NewFromInt(-1),
		PricePerKm:  decimal.NewFromInt(2),
		MinPrice:    decimal.NewFromInt(35),
	}

	_, err := suite.service.CreateVehicleRate(context.Background(), req, "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "SaveVehicleRate", mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "PublishRateChange", mock.Anything, mock.Anything)
}

func (suite *VehicleRateServiceTestSuite) TestCreateDuplicateType() {
	req := dto.CreateVehicleRateRequest{
		VehicleType: domain.VehicleStandard,
		BasePrice:   decimal.NewFromInt(30),
		PricePerKm:  decimal.NewFromInt(2),
		MinPrice:    decimal.NewFromInt(35),
	}
	suite.repo.On("SaveVehicleRate", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateVehicleRate(context.Background(), req, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.publisher.AssertNotCalled(suite.T(), "PublishRateChange", mock.Anything, mock.Anything)
}

func (suite *VehicleRateServiceTestSuite) TestUpdateSuccessPublishes() {
	existing := standardRate()
	suite.repo.On("FindVehicleRateByType", mock.Anything, domain.VehicleStandard).Return(&existing, nil)
	suite.repo.On("UpdateVehicleRate", mock.Anything, mock.MatchedBy(func(r domain.VehicleRate) bool {
		return r.BasePrice.Equal(decimal.NewFromInt(32)) && r.LastUpdatedBy == "admin-2"
	})).Return(nil)
	suite.publisher.On("PublishRateChange", mock.Anything, mock.MatchedBy(func(e portsrepo.RateChangeEvent) bool {
		return e.Action == portsrepo.FeedActionUpdate
	})).Return(nil)

	req := dto.UpdateVehicleRateRequest{
		BasePrice:  decimal.NewFromInt(32),
		PricePerKm: decimal.NewFromInt(2),
		MinPrice:   decimal.NewFromInt(35),
	}
	updated, err := suite.service.UpdateVehicleRate(context.Background(), domain.VehicleStandard, req, "admin-2")

	suite.Require().NoError(err)
	suite.True(updated.BasePrice.Equal(decimal.NewFromInt(32)))
	suite.repo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *VehicleRateServiceTestSuite) TestUpdateUnknownType() {
	suite.repo.On("FindVehicleRateByType", mock.Anything, "HELICOPTER").Return(nil, apperrors.ErrNotFound)

	req := dto.UpdateVehicleRateRequest{
		BasePrice:  decimal.NewFromInt(32),
		PricePerKm: decimal.NewFromInt(2),
		MinPrice:   decimal.NewFromInt(35),
	}
	_, err := suite.service.UpdateVehicleRate(context.Background(), "HELICOPTER", req, "admin-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VehicleRateServiceTestSuite) TestDeletePublishes() {
	suite.repo.On("DeleteVehicleRate", mock.Anything, domain.VehicleVan).Return(nil)
	suite.publisher.On("PublishRateChange", mock.Anything, mock.MatchedBy(func(e portsrepo.RateChangeEvent) bool {
		return e.Action == portsrepo.FeedActionDelete
	})).Return(nil)

	err := suite.service.DeleteVehicleRate(context.Background(), domain.VehicleVan, "admin-1")

	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *VehicleRateServiceTestSuite) TestPublishFailureDoesNotFailWrite() {
	suite.repo.On("DeleteVehicleRate", mock.Anything, domain.VehicleVan).Return(nil)
	suite.publisher.On("PublishRateChange", mock.Anything, mock.Anything).Return(assert.AnError)

	err := suite.service.DeleteVehicleRate(context.Background(), domain.VehicleVan, "admin-1")

	suite.Require().NoError(err)
}

func (suite *VehicleRateServiceTestSuite) TestNilPublisherIsSafe() {
	service := services.NewVehicleRateService(suite.repo, nil)
	suite.repo.On("DeleteVehicleRate", mock.Anything, domain.VehicleVan).Return(nil)

	suite.Require().NoError(service.DeleteVehicleRate(context.Background(), domain.VehicleVan, "admin-1"))
}

func TestVehicleRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRateServiceTestSuite))
}
