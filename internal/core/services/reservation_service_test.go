package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/pagination"
)

type ReservationServiceTestSuite struct {
	suite.Suite
	repo     *MockReservationRepository
	userRepo *MockUserRepository
	pricing  *MockPricingService
	service  portssvc.ReservationSvcFacade
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.repo = new(MockReservationRepository)
	suite.userRepo = new(MockUserRepository)
	suite.pricing = new(MockPricingService)
	suite.service = services.NewReservationService(suite.repo, suite.userRepo, suite.pricing)
}

func createRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		DistanceKm:     10,
		VehicleType:    domain.VehicleStandard,
		Options:        []string{"CHILD_SEAT"},
		PickupTime:     time.Now().Add(24 * time.Hour),
		PickupAddress:  "12 Rue de Rivoli, 75001 Paris",
		DropoffAddress: "Gare de Lyon, 75012 Paris",
	}
}

func pendingReservation(userID string) *domain.Reservation {
	return &domain.Reservation{
		ReservationID:  "res-1",
		UserID:         userID,
		VehicleType:    domain.VehicleStandard,
		PickupTime:     time.Now().Add(24 * time.Hour),
		Status:         domain.ReservationPending,
		EstimatedPrice: decimal.NewFromInt(65),
	}
}

func (suite *ReservationServiceTestSuite) TestCreateSnapshotsEstimatedPrice() {
	suite.pricing.On("CalculatePrice", mock.Anything, mock.Anything).
		Return(&domain.PriceBreakdown{Total: decimal.NewFromInt(65), Currency: "EUR"}, nil)
	suite.repo.On("SaveReservation", mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Status == domain.ReservationPending &&
			r.EstimatedPrice.Equal(decimal.NewFromInt(65)) &&
			r.UserID == "user-1"
	})).Return(nil)

	reservation, err := suite.service.CreateReservation(context.Background(), createRequest(), "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(reservation.ReservationID)
	suite.Equal(domain.ReservationPending, reservation.Status)
	suite.Nil(reservation.FinalPrice)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateRejectsPastPickup() {
	req := createRequest()
	req.PickupTime = time.Now().Add(-time.Hour)

	_, err := suite.service.CreateReservation(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.pricing.AssertNotCalled(suite.T(), "CalculatePrice", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCreatePropagatesPricingFailure() {
	suite.pricing.On("CalculatePrice", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotInitialized)

	_, err := suite.service.CreateReservation(context.Background(), createRequest(), "user-1")

	suite.ErrorIs(err, apperrors.ErrNotInitialized)
	suite.repo.AssertNotCalled(suite.T(), "SaveReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestGetOwnReservation() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)

	reservation, err := suite.service.GetReservation(context.Background(), "res-1", "user-1", domain.RoleCustomer)

	suite.Require().NoError(err)
	suite.Equal("res-1", reservation.ReservationID)
}

func (suite *ReservationServiceTestSuite) TestGetForeignReservationForbidden() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)

	_, err := suite.service.GetReservation(context.Background(), "res-1", "user-2", domain.RoleCustomer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReservationServiceTestSuite) TestAdminSeesAnyReservation() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)

	_, err := suite.service.GetReservation(context.Background(), "res-1", "admin-1", domain.RoleAdmin)

	suite.Require().NoError(err)
}

func (suite *ReservationServiceTestSuite) TestAssignedDriverSeesReservation() {
	reservation := pendingReservation("user-1")
	driverID := "driver-1"
	reservation.DriverID = &driverID
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(reservation, nil)

	_, err := suite.service.GetReservation(context.Background(), "res-1", "driver-1", domain.RoleDriver)

	suite.Require().NoError(err)
}

func (suite *ReservationServiceTestSuite) TestCustomerCancelsOwnBooking() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)
	suite.repo.On("UpdateReservation", mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Status == domain.ReservationCancelled
	})).Return(nil)

	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationCancelled)}
	updated, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "user-1", domain.RoleCustomer)

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationCancelled, updated.Status)
}

func (suite *ReservationServiceTestSuite) TestCustomerCannotConfirm() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)

	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationConfirmed)}
	_, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "user-1", domain.RoleCustomer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestInvalidTransitionRejected() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)

	// PENDING cannot jump straight to COMPLETED.
	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationCompleted)}
	_, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "admin-1", domain.RoleAdmin)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestDriverCompletesAssignedRide() {
	reservation := pendingReservation("user-1")
	driverID := "driver-1"
	reservation.DriverID = &driverID
	reservation.Status = domain.ReservationInProgress
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(reservation, nil)
	suite.repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationCompleted)}
	updated, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "driver-1", domain.RoleDriver)

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationCompleted, updated.Status)
	// FinalPrice defaults to the estimate when the request omits it.
	suite.Require().NotNil(updated.FinalPrice)
	suite.True(updated.FinalPrice.Equal(decimal.NewFromInt(65)))
}

func (suite *ReservationServiceTestSuite) TestCompleteWithExplicitFinalPrice() {
	reservation := pendingReservation("user-1")
	driverID := "driver-1"
	reservation.DriverID = &driverID
	reservation.Status = domain.ReservationInProgress
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(reservation, nil)
	suite.repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	final := decimal.NewFromInt(70)
	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationCompleted), FinalPrice: &final}
	updated, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "admin-1", domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.True(updated.FinalPrice.Equal(decimal.NewFromInt(70)))
}

func (suite *ReservationServiceTestSuite) TestUnassignedDriverCannotProgressRide() {
	reservation := pendingReservation("user-1")
	reservation.Status = domain.ReservationConfirmed
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(reservation, nil)

	req := dto.UpdateReservationStatusRequest{Status: string(domain.ReservationInProgress)}
	_, err := suite.service.UpdateReservationStatus(context.Background(), "res-1", req, "driver-9", domain.RoleDriver)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReservationServiceTestSuite) TestAssignDriver() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)
	suite.userRepo.On("FindUserByID", mock.Anything, "driver-1").
		Return(&domain.User{UserID: "driver-1", Role: domain.RoleDriver}, nil)
	suite.repo.On("UpdateReservation", mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.DriverID != nil && *r.DriverID == "driver-1"
	})).Return(nil)

	updated, err := suite.service.AssignDriver(context.Background(), "res-1", "driver-1", "admin-1")

	suite.Require().NoError(err)
	suite.Equal("driver-1", *updated.DriverID)
}

func (suite *ReservationServiceTestSuite) TestAssignNonDriverRejected() {
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(pendingReservation("user-1"), nil)
	suite.userRepo.On("FindUserByID", mock.Anything, "user-2").
		Return(&domain.User{UserID: "user-2", Role: domain.RoleCustomer}, nil)

	_, err := suite.service.AssignDriver(context.Background(), "res-1", "user-2", "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestAssignDriverToTerminalReservation() {
	reservation := pendingReservation("user-1")
	reservation.Status = domain.ReservationCancelled
	suite.repo.On("FindReservationByID", mock.Anything, "res-1").Return(reservation, nil)

	_, err := suite.service.AssignDriver(context.Background(), "res-1", "driver-1", "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.userRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestListEmitsTokenOnFullPage() {
	now := time.Now().Truncate(time.Second)
	page := make([]domain.Reservation, 2)
	for i := range page {
		page[i] = *pendingReservation("user-1")
		page[i].ReservationID = "res-" + string(rune('a'+i))
		page[i].PickupTime = now.Add(time.Duration(-i) * time.Hour)
		page[i].CreatedAt = now
	}
	suite.repo.On("ListReservationsByUser", mock.Anything, "user-1", portsrepo.ListReservationsParams{Limit: 2}).
		Return(page, nil)

	resp, err := suite.service.ListUserReservations(context.Background(), "user-1", dto.ListReservationsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Reservations, 2)
	suite.NotEmpty(resp.NextToken)

	// The token resumes after the last row of the page.
	pickupTime, createdAt, err := pagination.DecodeToken(resp.NextToken)
	suite.Require().NoError(err)
	suite.True(pickupTime.Equal(page[1].PickupTime))
	suite.True(createdAt.Equal(page[1].CreatedAt))
}

func (suite *ReservationServiceTestSuite) TestListShortPageHasNoToken() {
	suite.repo.On("ListReservationsByUser", mock.Anything, "user-1", mock.Anything).
		Return([]domain.Reservation{*pendingReservation("user-1")}, nil)

	resp, err := suite.service.ListUserReservations(context.Background(), "user-1", dto.ListReservationsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Reservations, 1)
	suite.Empty(resp.NextToken)
}

func (suite *ReservationServiceTestSuite) TestListRejectsMalformedToken() {
	_, err := suite.service.ListUserReservations(context.Background(), "user-1",
		dto.ListReservationsParams{NextToken: "not-a-token"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "ListReservationsByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
