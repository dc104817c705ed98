package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
	"github.com/nitelabs/venue_crm_app/internal/core/services"
	"github.com/nitelabs/venue_crm_app/internal/dto"
	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry models.LedgerEntry, delta decimal.Decimal) error {
	args := m.Called(ctx, entry, delta)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID, ccaID string) (bool, error) {
	args := m.Called(ctx, entryID, ccaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByCCA(ctx context.Context, ccaID string) ([]models.LedgerEntry, error) {
	args := m.Called(ctx, ccaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SumSettlement(ctx context.Context, ccaID string) (portsrepo.SettlementSums, error) {
	args := m.Called(ctx, ccaID)
	return args.Get(0).(portsrepo.SettlementSums), args.Error(1)
}

func (m *MockLedgerRepository) SumSignedTotals(ctx context.Context, ccaID string) (decimal.Decimal, error) {
	args := m.Called(ctx, ccaID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) UpsertCategory(ctx context.Context, category models.PointCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*models.PointCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PointCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByVenue(ctx context.Context, venueID string) ([]models.PointCategory, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PointCategory), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock CCARepository ---
type MockCCARepository struct {
	mock.Mock
}

func (m *MockCCARepository) SaveCCA(ctx context.Context, cca models.CCA) error {
	args := m.Called(ctx, cca)
	return args.Error(0)
}

func (m *MockCCARepository) FindCCAByID(ctx context.Context, ccaID string) (*models.CCA, error) {
	args := m.Called(ctx, ccaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CCA), args.Error(1)
}

func (m *MockCCARepository) ListCCAsByVenue(ctx context.Context, venueID string, activeOnly bool) ([]models.CCA, error) {
	args := m.Called(ctx, venueID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CCA), args.Error(1)
}

func (m *MockCCARepository) UpdateCCA(ctx context.Context, cca models.CCA) error {
	args := m.Called(ctx, cca)
	return args.Error(0)
}

func (m *MockCCARepository) DeleteCCA(ctx context.Context, ccaID string) error {
	args := m.Called(ctx, ccaID)
	return args.Error(0)
}

func (m *MockCCARepository) OverwritePoints(ctx context.Context, ccaID string, points decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, ccaID, points, updatedBy)
	return args.Error(0)
}

func (m *MockCCARepository) ListCCAIDsByVenue(ctx context.Context, venueID string) ([]string, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockCategoryRepo *MockCategoryRepository
	mockCCARepo      *MockCCARepository
	service          portssvc.LedgerSvcFacade

	ccaID   string
	actorID string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockCCARepo = new(MockCCARepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockCategoryRepo, suite.mockCCARepo)

	suite.ccaID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) expectCCAExists() {
	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.Zero}, nil).Once()
}

func pointCategory(amount int64) *models.PointCategory {
	return &models.PointCategory{
		CategoryID: uuid.NewString(),
		VenueID:    uuid.NewString(),
		Name:       "Bottle sale",
		Amount:     decimal.NewFromInt(amount),
		Kind:       models.KindPoint,
	}
}

func penaltyCategory(amount int64) *models.PointCategory {
	return &models.PointCategory{
		CategoryID: uuid.NewString(),
		VenueID:    uuid.NewString(),
		Name:       "Late arrival",
		Amount:     decimal.NewFromInt(amount),
		Kind:       models.KindPenalty,
	}
}

// --- RecordEntry ---

func (suite *LedgerServiceTestSuite) TestRecordEntry_DefaultQuantity() {
	ctx := context.Background()
	category := pointCategory(500)

	suite.expectCCAExists()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.CategoryID).Return(category, nil).Once()

	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e models.LedgerEntry) bool {
		return e.CCAID == suite.ccaID &&
			e.Quantity == 1 &&
			e.Name == category.Name &&
			e.Kind == models.KindPoint &&
			e.Total.Equal(decimal.NewFromInt(500))
	}), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	entry, err := suite.service.RecordEntry(ctx, suite.ccaID, dto.RecordEntryRequest{CategoryID: category.CategoryID}, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(1, entry.Quantity)
	suite.True(entry.Total.Equal(decimal.NewFromInt(500)))
	suite.Equal(suite.actorID, entry.CreatedBy)
	suite.Require().NotNil(entry.CategoryID)
	suite.Equal(category.CategoryID, *entry.CategoryID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_PenaltyAppliesNegativeDelta() {
	ctx := context.Background()
	category := penaltyCategory(200)

	suite.expectCCAExists()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.CategoryID).Return(category, nil).Once()

	// Total stays positive; the balance delta carries the sign.
	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e models.LedgerEntry) bool {
		return e.Kind == models.KindPenalty && e.Total.Equal(decimal.NewFromInt(400))
	}), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(-400))
	})).Return(nil).Once()

	entry, err := suite.service.RecordEntry(ctx, suite.ccaID, dto.RecordEntryRequest{
		CategoryID: category.CategoryID,
		Quantity:   2,
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.True(entry.Total.Equal(decimal.NewFromInt(400)))
	suite.True(entry.SignedTotal().Equal(decimal.NewFromInt(-400)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_QuantityScalesTotal() {
	ctx := context.Background()
	category := pointCategory(500)

	suite.expectCCAExists()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.CategoryID).Return(category, nil).Once()

	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e models.LedgerEntry) bool {
		return e.Quantity == 10 && e.Total.Equal(decimal.NewFromInt(5000))
	}), mock.Anything).Return(nil).Once()

	entry, err := suite.service.RecordEntry(ctx, suite.ccaID, dto.RecordEntryRequest{
		CategoryID: category.CategoryID,
		Quantity:   10,
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.True(entry.Amount.Equal(decimal.NewFromInt(500)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_CategoryNotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.expectCCAExists()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.RecordEntry(ctx, suite.ccaID, dto.RecordEntryRequest{CategoryID: categoryID}, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_CCANotFound() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.RecordEntry(ctx, suite.ccaID, dto.RecordEntryRequest{CategoryID: uuid.NewString()}, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything)
}

// --- ReverseEntry ---

func (suite *LedgerServiceTestSuite) TestReverseEntry_Removed() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteEntry", ctx, entryID, suite.ccaID).Return(true, nil).Once()

	removed, err := suite.service.ReverseEntry(ctx, suite.ccaID, entryID)

	suite.Require().NoError(err)
	suite.True(removed)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_IdempotentWhenAlreadyGone() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteEntry", ctx, entryID, suite.ccaID).Return(false, nil).Once()

	removed, err := suite.service.ReverseEntry(ctx, suite.ccaID, entryID)

	suite.Require().NoError(err)
	suite.False(removed)
	// Balance is never touched when nothing was deleted.
	suite.mockCCARepo.AssertNotCalled(suite.T(), "OverwritePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_RepoError() {
	ctx := context.Background()
	entryID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockLedgerRepo.On("DeleteEntry", ctx, entryID, suite.ccaID).Return(false, expectedErr).Once()

	removed, err := suite.service.ReverseEntry(ctx, suite.ccaID, entryID)

	suite.Require().Error(err)
	suite.False(removed)
	suite.ErrorIs(err, expectedErr)
}

// --- ComputeSettlement ---

func (suite *LedgerServiceTestSuite) TestComputeSettlement_Arithmetic() {
	ctx := context.Background()

	suite.expectCCAExists()
	suite.mockLedgerRepo.On("SumSettlement", ctx, suite.ccaID).Return(portsrepo.SettlementSums{
		AccruedPoints:    decimal.NewFromInt(1000),
		AccruedPenalties: decimal.NewFromInt(200),
		OrphanedEntries:  3,
	}, nil).Once()

	settlement, err := suite.service.ComputeSettlement(ctx, suite.ccaID)

	suite.Require().NoError(err)
	suite.True(settlement.AccruedPoints.Equal(decimal.NewFromInt(1000)))
	suite.True(settlement.AccruedPenalties.Equal(decimal.NewFromInt(200)))
	suite.True(settlement.FinalSettlement.Equal(decimal.NewFromInt(800)))
	suite.Equal(3, settlement.OrphanedEntryCount)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestComputeSettlement_CanBeNegative() {
	ctx := context.Background()

	suite.expectCCAExists()
	suite.mockLedgerRepo.On("SumSettlement", ctx, suite.ccaID).Return(portsrepo.SettlementSums{
		AccruedPoints:    decimal.NewFromInt(100),
		AccruedPenalties: decimal.NewFromInt(500),
	}, nil).Once()

	settlement, err := suite.service.ComputeSettlement(ctx, suite.ccaID)

	suite.Require().NoError(err)
	suite.True(settlement.FinalSettlement.Equal(decimal.NewFromInt(-400)))
}

func (suite *LedgerServiceTestSuite) TestComputeSettlement_CCANotFound() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).Return(nil, apperrors.ErrNotFound).Once()

	settlement, err := suite.service.ComputeSettlement(ctx, suite.ccaID)

	suite.Require().Error(err)
	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Reconcile ---

func (suite *LedgerServiceTestSuite) TestReconcile_NoDivergence() {
	ctx := context.Background()
	balance := decimal.NewFromInt(750)

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: balance}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, suite.ccaID).Return(balance, nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.ccaID, true, suite.actorID)

	suite.Require().NoError(err)
	suite.False(result.Diverged)
	suite.False(result.Repaired)
	suite.True(result.Divergence.IsZero())
	suite.mockCCARepo.AssertNotCalled(suite.T(), "OverwritePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReconcile_DivergenceReportOnly() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.NewFromInt(900)}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, suite.ccaID).Return(decimal.NewFromInt(750), nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.ccaID, false, suite.actorID)

	suite.Require().NoError(err)
	suite.True(result.Diverged)
	suite.False(result.Repaired)
	suite.True(result.Divergence.Equal(decimal.NewFromInt(150)))
	suite.mockCCARepo.AssertNotCalled(suite.T(), "OverwritePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReconcile_DivergenceRepaired() {
	ctx := context.Background()
	ledgerBalance := decimal.NewFromInt(750)

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.NewFromInt(900)}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, suite.ccaID).Return(ledgerBalance, nil).Once()
	suite.mockCCARepo.On("OverwritePoints", ctx, suite.ccaID, ledgerBalance, suite.actorID).Return(nil).Once()

	result, err := suite.service.Reconcile(ctx, suite.ccaID, true, suite.actorID)

	suite.Require().NoError(err)
	suite.True(result.Diverged)
	suite.True(result.Repaired)
	suite.mockCCARepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReconcile_RepairFailure() {
	ctx := context.Background()
	ledgerBalance := decimal.NewFromInt(750)

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.NewFromInt(900)}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, suite.ccaID).Return(ledgerBalance, nil).Once()
	suite.mockCCARepo.On("OverwritePoints", ctx, suite.ccaID, ledgerBalance, suite.actorID).Return(assert.AnError).Once()

	result, err := suite.service.Reconcile(ctx, suite.ccaID, true, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConsistency)
}

// --- ReconcileVenue ---

func (suite *LedgerServiceTestSuite) TestReconcileVenue_SweepsRoster() {
	ctx := context.Background()
	venueID := uuid.NewString()
	ccaA := uuid.NewString()
	ccaB := uuid.NewString()

	suite.mockCCARepo.On("ListCCAIDsByVenue", ctx, venueID).Return([]string{ccaA, ccaB}, nil).Once()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, ccaA).
		Return(&models.CCA{CCAID: ccaA, Points: decimal.NewFromInt(100)}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, ccaA).Return(decimal.NewFromInt(100), nil).Once()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, ccaB).
		Return(&models.CCA{CCAID: ccaB, Points: decimal.NewFromInt(50)}, nil).Once()
	suite.mockLedgerRepo.On("SumSignedTotals", ctx, ccaB).Return(decimal.NewFromInt(75), nil).Once()
	suite.mockCCARepo.On("OverwritePoints", ctx, ccaB, decimal.NewFromInt(75), suite.actorID).Return(nil).Once()

	results, err := suite.service.ReconcileVenue(ctx, venueID, true, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.False(results[0].Diverged)
	suite.True(results[1].Diverged)
	suite.True(results[1].Repaired)
	suite.mockCCARepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
