package models

import (
	"database/sql"
	"time"
)

// Attendance records one CCA working shift: check-in and, once the shift
// ends, check-out. WorkDate is the business date of the shift.
type Attendance struct {
	AttendanceID string       `db:"attendance_id" json:"attendanceID"`
	CCAID        string       `db:"cca_id" json:"ccaID"`
	VenueID      string       `db:"venue_id" json:"venueID"`
	WorkDate     time.Time    `db:"work_date" json:"workDate"`
	CheckInAt    time.Time    `db:"check_in_at" json:"checkInAt"`
	CheckOutAt   sql.NullTime `db:"check_out_at" json:"-"`
	Note         string       `db:"note" json:"note"`
}
