package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
)

// Shared repository mocks for the service tests in this package.

// --- Mock VehicleRateRepository ---
type MockVehicleRateRepository struct {
	mock.Mock
}

func (m *MockVehicleRateRepository) FindVehicleRateByType(ctx context.Context, vehicleType string) (*domain.VehicleRate, error) {
	args := m.Called(ctx, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRate), args.Error(1)
}

func (m *MockVehicleRateRepository) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleRate), args.Error(1)
}

func (m *MockVehicleRateRepository) SaveVehicleRate(ctx context.Context, rate domain.VehicleRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockVehicleRateRepository) UpdateVehicleRate(ctx context.Context, rate domain.VehicleRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockVehicleRateRepository) DeleteVehicleRate(ctx context.Context, vehicleType string) error {
	args := m.Called(ctx, vehicleType)
	return args.Error(0)
}

// --- Mock OptionRateRepository ---
type MockOptionRateRepository struct {
	mock.Mock
}

func (m *MockOptionRateRepository) FindOptionRateByType(ctx context.Context, optionType string) (*domain.OptionRate, error) {
	args := m.Called(ctx, optionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptionRate), args.Error(1)
}

func (m *MockOptionRateRepository) ListOptionRates(ctx context.Context) ([]domain.OptionRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OptionRate), args.Error(1)
}

func (m *MockOptionRateRepository) SaveOptionRate(ctx context.Context, rate domain.OptionRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockOptionRateRepository) UpdateOptionRate(ctx context.Context, rate domain.OptionRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockOptionRateRepository) DeleteOptionRate(ctx context.Context, optionType string) error {
	args := m.Called(ctx, optionType)
	return args.Error(0)
}

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsByUser(ctx context.Context, userID string, params portsrepo.ListReservationsParams) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, params portsrepo.ListReservationsParams) ([]domain.Reservation, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	args := m.Called(ctx, userID, deletedBy)
	return args.Error(0)
}

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) CalculatePrice(ctx context.Context, input domain.QuoteInput) (*domain.PriceBreakdown, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceBreakdown), args.Error(1)
}

// --- Mock RateChangePublisher ---
type MockRateChangePublisher struct {
	mock.Mock
}

func (m *MockRateChangePublisher) PublishRateChange(ctx context.Context, event portsrepo.RateChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeRateChangeFeed captures the handler so tests can inject events.
type fakeRateChangeFeed struct {
	handler func(portsrepo.RateChangeEvent)
}

func (f *fakeRateChangeFeed) SubscribeRateChanges(ctx context.Context, handler func(portsrepo.RateChangeEvent)) error {
	f.handler = handler
	return nil
}
