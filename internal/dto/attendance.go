package dto

import (
	"time"

	"github.com/nitelabs/venue_crm_app/internal/models"
)

// CheckInRequest opens a working shift for a CCA.
type CheckInRequest struct {
	VenueID  string     `json:"venueID" binding:"required"`
	WorkDate *time.Time `json:"workDate"`
	Note     string     `json:"note"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	AttendanceID string     `json:"attendanceID"`
	CCAID        string     `json:"ccaID"`
	VenueID      string     `json:"venueID"`
	WorkDate     time.Time  `json:"workDate"`
	CheckInAt    time.Time  `json:"checkInAt"`
	CheckOutAt   *time.Time `json:"checkOutAt,omitempty"`
	Note         string     `json:"note"`
}

// ToAttendanceResponse converts a models.Attendance to its response DTO.
func ToAttendanceResponse(a *models.Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID: a.AttendanceID,
		CCAID:        a.CCAID,
		VenueID:      a.VenueID,
		WorkDate:     a.WorkDate,
		CheckInAt:    a.CheckInAt,
		Note:         a.Note,
	}
	if a.CheckOutAt.Valid {
		t := a.CheckOutAt.Time
		resp.CheckOutAt = &t
	}
	return resp
}

// ToListAttendanceResponse converts a slice of attendance records to response DTOs.
func ToListAttendanceResponse(records []models.Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(records))
	for i, a := range records {
		res[i] = ToAttendanceResponse(&a)
	}
	return res
}
