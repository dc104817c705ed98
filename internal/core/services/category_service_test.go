package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/core/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VenueRepository ---
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) SaveVenue(ctx context.Context, venue models.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) FindVenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) ListVenues(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) UpdateVenue(ctx context.Context, venue models.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) DeleteVenue(ctx context.Context, venueID string) error {
	args := m.Called(ctx, venueID)
	return args.Error(0)
}

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockCategoryRepository
	mockVenueRepo *MockVenueRepository
	service       portssvc.CategorySvcFacade

	venueID string
	actorID string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.mockVenueRepo = new(MockVenueRepository)
	suite.service = services.NewCategoryService(suite.mockRepo, suite.mockVenueRepo)

	suite.venueID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) expectVenueExists() {
	suite.mockVenueRepo.On("FindVenueByID", mock.Anything, suite.venueID).
		Return(&models.Venue{VenueID: suite.venueID}, nil).Once()
}

func (suite *CategoryServiceTestSuite) TestUpsertCategory_CreateGeneratesID() {
	ctx := context.Background()
	req := dto.UpsertCategoryRequest{
		Name:   "Bottle sale",
		Amount: decimal.NewFromInt(500),
		Kind:   string(models.KindPoint),
	}

	suite.expectVenueExists()
	suite.mockRepo.On("UpsertCategory", ctx, mock.MatchedBy(func(c models.PointCategory) bool {
		return c.CategoryID != "" &&
			c.VenueID == suite.venueID &&
			c.Name == req.Name &&
			c.Kind == models.KindPoint &&
			c.Amount.Equal(decimal.NewFromInt(500)) &&
			c.CreatedBy == suite.actorID &&
			c.LastUpdatedBy == suite.actorID
	})).Return(nil).Once()

	categoryID, err := suite.service.UpsertCategory(ctx, suite.venueID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(categoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpsertCategory_UpdateKeepsID() {
	ctx := context.Background()
	existingID := uuid.NewString()
	req := dto.UpsertCategoryRequest{
		CategoryID: existingID,
		Name:       "Late arrival",
		Amount:     decimal.NewFromInt(200),
		Kind:       string(models.KindPenalty),
	}

	suite.expectVenueExists()
	suite.mockRepo.On("UpsertCategory", ctx, mock.MatchedBy(func(c models.PointCategory) bool {
		return c.CategoryID == existingID && c.Kind == models.KindPenalty
	})).Return(nil).Once()

	categoryID, err := suite.service.UpsertCategory(ctx, suite.venueID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(existingID, categoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpsertCategory_UnknownKind() {
	ctx := context.Background()
	req := dto.UpsertCategoryRequest{
		Name:   "Bottle sale",
		Amount: decimal.NewFromInt(500),
		Kind:   "bonus",
	}

	categoryID, err := suite.service.UpsertCategory(ctx, suite.venueID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Empty(categoryID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpsertCategory_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.UpsertCategoryRequest{
		Name:   "Bottle sale",
		Amount: decimal.Zero,
		Kind:   string(models.KindPoint),
	}

	categoryID, err := suite.service.UpsertCategory(ctx, suite.venueID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Empty(categoryID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpsertCategory_UnknownVenue() {
	ctx := context.Background()
	req := dto.UpsertCategoryRequest{
		Name:   "Bottle sale",
		Amount: decimal.NewFromInt(500),
		Kind:   string(models.KindPoint),
	}

	suite.mockVenueRepo.On("FindVenueByID", mock.Anything, suite.venueID).Return(nil, apperrors.ErrNotFound).Once()

	categoryID, err := suite.service.UpsertCategory(ctx, suite.venueID, req, suite.actorID)

	suite.Require().Error(err)
	suite.Empty(categoryID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestListCategories() {
	ctx := context.Background()
	expected := []models.PointCategory{
		{CategoryID: uuid.NewString(), VenueID: suite.venueID, Name: "Bottle sale", Amount: decimal.NewFromInt(500), Kind: models.KindPoint},
		{CategoryID: uuid.NewString(), VenueID: suite.venueID, Name: "Late arrival", Amount: decimal.NewFromInt(200), Kind: models.KindPenalty},
	}

	suite.mockRepo.On("ListCategoriesByVenue", ctx, suite.venueID).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.venueID)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockRepo.On("DeleteCategory", ctx, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
