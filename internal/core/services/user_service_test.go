package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/core/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/nitelabs/venue_crm_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade

	actorID string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)

	suite.actorID = uuid.NewString()
}

func hashFor(suite *UserServiceTestSuite, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return string(hash)
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "minji",
		Password: "s3cret-pass",
		Name:     "Kim Minji",
		Role:     string(models.RoleAdmin),
	}

	suite.mockRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Username == req.Username &&
			u.Role == models.RoleAdmin &&
			u.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(suite.actorID, user.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DefaultsToCCARole() {
	ctx := context.Background()
	ccaID := uuid.NewString()
	req := dto.RegisterRequest{
		Username: "hana",
		Password: "s3cret-pass",
		Name:     "Lee Hana",
		CCAID:    ccaID,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleCCA && u.CCAID.Valid && u.CCAID.String == ccaID
	})).Return(nil).Once()

	_, err := suite.service.Register(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "minji", Password: "s3cret-pass", Name: "Kim Minji"}

	suite.mockRepo.On("FindUserByUsername", ctx, req.Username).
		Return(&models.User{UserID: uuid.NewString(), Username: req.Username}, nil).Once()

	user, err := suite.service.Register(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "s3cret-pass"
	stored := &models.User{
		UserID:       uuid.NewString(),
		Username:     "minji",
		PasswordHash: hashFor(suite, password),
		Role:         models.RoleAdmin,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "minji").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "minji", password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	stored := &models.User{
		UserID:       uuid.NewString(),
		Username:     "minji",
		PasswordHash: hashFor(suite, "s3cret-pass"),
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "minji").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "minji", "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserMapsToUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown usernames and bad passwords are indistinguishable to callers.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "raw-refresh-token"
	hash := utils.HashRefreshToken(rawToken)

	stored := &models.User{
		UserID:                 userID,
		RefreshTokenHash:       sql.NullString{String: hash, Valid: true},
		RefreshTokenExpiryTime: sql.NullTime{Time: time.Now().Add(time.Hour), Valid: true},
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, userID, rawToken)

	suite.Require().NoError(err)
	suite.Equal(userID, user.UserID)
}

func (suite *UserServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "raw-refresh-token"

	stored := &models.User{
		UserID:                 userID,
		RefreshTokenHash:       sql.NullString{String: utils.HashRefreshToken(rawToken), Valid: true},
		RefreshTokenExpiryTime: sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true},
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, userID, rawToken)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestValidateRefreshToken_Mismatch() {
	ctx := context.Background()
	userID := uuid.NewString()

	stored := &models.User{
		UserID:                 userID,
		RefreshTokenHash:       sql.NullString{String: utils.HashRefreshToken("issued-token"), Valid: true},
		RefreshTokenExpiryTime: sql.NullTime{Time: time.Now().Add(time.Hour), Valid: true},
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, userID, "some-other-token")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestValidateRefreshToken_NoneStored() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(&models.User{UserID: userID}, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, userID, "raw-refresh-token")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_PersistsHashNotRaw() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(7 * 24 * time.Hour)

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, mock.MatchedBy(func(hash *string) bool {
		return hash != nil && *hash != rawToken && *hash == utils.HashRefreshToken(rawToken)
	}), mock.MatchedBy(func(t *time.Time) bool {
		return t != nil && t.Equal(expiry)
	})).Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, userID, rawToken, expiry)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, (*string)(nil), (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
