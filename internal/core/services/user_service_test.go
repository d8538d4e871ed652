package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	repo    *MockUserRepository
	service portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.repo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.repo)
}

func (suite *UserServiceTestSuite) TestCreateUserHashesPassword() {
	suite.repo.On("FindUserByUsername", mock.Anything, "alice").Return(nil, apperrors.ErrNotFound)

	var saved domain.User
	suite.repo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil)

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "  Alice  ",
		Password: "s3cret-pass",
		Name:     "Alice",
	})

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.Equal(domain.RoleCustomer, user.Role)
	suite.NotEqual("s3cret-pass", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicateUsername() {
	suite.repo.On("FindUserByUsername", mock.Anything, "alice").
		Return(&domain.User{UserID: "u-1", Username: "alice"}, nil)

	_, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "alice",
		Password: "s3cret-pass",
		Name:     "Alice",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUserExplicitRole() {
	suite.repo.On("FindUserByUsername", mock.Anything, "bob").Return(nil, apperrors.ErrNotFound)
	suite.repo.On("SaveUser", mock.Anything, mock.Anything).Return(nil)

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "bob",
		Password: "s3cret-pass",
		Name:     "Bob",
		Role:     string(domain.RoleDriver),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleDriver, user.Role)
}

func (suite *UserServiceTestSuite) TestGetUserByUsernameNormalizes() {
	suite.repo.On("FindUserByUsername", mock.Anything, "alice").
		Return(&domain.User{UserID: "u-1", Username: "alice"}, nil)

	user, err := suite.service.GetUserByUsername(context.Background(), " ALICE ")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestListUsersClampsParams() {
	suite.repo.On("ListUsers", mock.Anything, 20, 0).Return([]domain.User{}, nil)

	_, err := suite.service.ListUsers(context.Background(), -5, -1)

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserExisting() {
	existing := &domain.User{UserID: "u-1", Username: "alice@example.com"}
	suite.repo.On("FindUserByGoogleID", mock.Anything, "g-123").Return(existing, nil)

	user, err := suite.service.FindOrCreateGoogleUser(context.Background(), domain.GoogleUserInfo{
		ID:    "g-123",
		Email: "alice@example.com",
	})

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
	suite.repo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserFirstSignIn() {
	suite.repo.On("FindUserByGoogleID", mock.Anything, "g-123").Return(nil, apperrors.ErrNotFound)
	suite.repo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice@example.com" &&
			u.Role == domain.RoleCustomer &&
			u.GoogleID != nil && *u.GoogleID == "g-123"
	})).Return(nil)

	user, err := suite.service.FindOrCreateGoogleUser(context.Background(), domain.GoogleUserInfo{
		ID:    "g-123",
		Email: "Alice@Example.com",
		Name:  "Alice",
	})

	suite.Require().NoError(err)
	suite.Equal("alice@example.com", user.Username)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserMissingEmail() {
	suite.repo.On("FindUserByGoogleID", mock.Anything, "g-123").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.FindOrCreateGoogleUser(context.Background(), domain.GoogleUserInfo{ID: "g-123"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserEmailTaken() {
	suite.repo.On("FindUserByGoogleID", mock.Anything, "g-123").Return(nil, apperrors.ErrNotFound)
	suite.repo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.FindOrCreateGoogleUser(context.Background(), domain.GoogleUserInfo{
		ID:    "g-123",
		Email: "alice@example.com",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
