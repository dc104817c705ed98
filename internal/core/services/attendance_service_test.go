package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock AttendanceRepository ---
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, attendance models.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindOpenShift(ctx context.Context, ccaID string, workDate time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, ccaID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) CloseShift(ctx context.Context, attendanceID string, checkOutAt time.Time) error {
	args := m.Called(ctx, attendanceID, checkOutAt)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ListAttendanceByCCA(ctx context.Context, ccaID string, from, to time.Time) ([]models.Attendance, error) {
	args := m.Called(ctx, ccaID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListAttendanceByVenue(ctx context.Context, venueID string, from, to time.Time) ([]models.Attendance, error) {
	args := m.Called(ctx, venueID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

// --- Test Suite ---
type AttendanceServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAttendanceRepository
	mockCCARepo *MockCCARepository
	service     portssvc.AttendanceSvcFacade

	ccaID   string
	venueID string
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAttendanceRepository)
	suite.mockCCARepo = new(MockCCARepository)
	suite.service = services.NewAttendanceService(suite.mockRepo, suite.mockCCARepo)

	suite.ccaID = uuid.NewString()
	suite.venueID = uuid.NewString()
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_Success() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.Zero}, nil).Once()
	suite.mockRepo.On("FindOpenShift", ctx, suite.ccaID, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	suite.mockRepo.On("SaveAttendance", ctx, mock.MatchedBy(func(a models.Attendance) bool {
		midnight := a.WorkDate.Hour() == 0 && a.WorkDate.Minute() == 0 && a.WorkDate.Second() == 0
		return a.CCAID == suite.ccaID &&
			a.VenueID == suite.venueID &&
			midnight &&
			!a.CheckInAt.IsZero() &&
			!a.CheckOutAt.Valid
	})).Return(nil).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.ccaID, dto.CheckInRequest{VenueID: suite.venueID})

	suite.Require().NoError(err)
	suite.NotEmpty(attendance.AttendanceID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_ExplicitWorkDateIsTruncated() {
	ctx := context.Background()
	workDate := time.Date(2025, time.June, 14, 22, 30, 0, 0, time.UTC)
	expectedDate := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.Zero}, nil).Once()
	suite.mockRepo.On("FindOpenShift", ctx, suite.ccaID, expectedDate).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAttendance", ctx, mock.MatchedBy(func(a models.Attendance) bool {
		return a.WorkDate.Equal(expectedDate)
	})).Return(nil).Once()

	_, err := suite.service.CheckIn(ctx, suite.ccaID, dto.CheckInRequest{VenueID: suite.venueID, WorkDate: &workDate})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_AlreadyOpenShift() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).
		Return(&models.CCA{CCAID: suite.ccaID, Points: decimal.Zero}, nil).Once()
	suite.mockRepo.On("FindOpenShift", ctx, suite.ccaID, mock.Anything).
		Return(&models.Attendance{AttendanceID: uuid.NewString(), CCAID: suite.ccaID}, nil).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.ccaID, dto.CheckInRequest{VenueID: suite.venueID})

	suite.Require().Error(err)
	suite.Nil(attendance)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAttendance", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_UnknownCCA() {
	ctx := context.Background()

	suite.mockCCARepo.On("FindCCAByID", mock.Anything, suite.ccaID).Return(nil, apperrors.ErrNotFound).Once()

	attendance, err := suite.service.CheckIn(ctx, suite.ccaID, dto.CheckInRequest{VenueID: suite.venueID})

	suite.Require().Error(err)
	suite.Nil(attendance)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_ClosesOpenShift() {
	ctx := context.Background()
	attendanceID := uuid.NewString()
	workDate := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)

	open := &models.Attendance{
		AttendanceID: attendanceID,
		CCAID:        suite.ccaID,
		WorkDate:     workDate,
		CheckInAt:    workDate.Add(20 * time.Hour),
	}

	suite.mockRepo.On("FindOpenShift", ctx, suite.ccaID, workDate).Return(open, nil).Once()
	suite.mockRepo.On("CloseShift", ctx, attendanceID, mock.Anything).Return(nil).Once()

	// The caller may pass any time within the work date; it is truncated.
	closed, err := suite.service.CheckOut(ctx, suite.ccaID, workDate.Add(23*time.Hour))

	suite.Require().NoError(err)
	suite.True(closed.CheckOutAt.Valid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_NoOpenShift() {
	ctx := context.Background()
	workDate := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindOpenShift", ctx, suite.ccaID, workDate).Return(nil, apperrors.ErrNotFound).Once()

	closed, err := suite.service.CheckOut(ctx, suite.ccaID, workDate)

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
