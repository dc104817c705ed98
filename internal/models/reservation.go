package models

import (
	"database/sql"
	"time"
)

// ReservationStatus tracks a booking through its lifecycle.
type ReservationStatus string

const (
	ReservationRequested ReservationStatus = "requested"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation is a customer booking at a venue, optionally requesting a
// specific CCA.
type Reservation struct {
	ReservationID string            `db:"reservation_id" json:"reservationID"`
	VenueID       string            `db:"venue_id" json:"venueID"`
	CCAID         sql.NullString    `db:"cca_id" json:"-"`
	CustomerName  string            `db:"customer_name" json:"customerName"`
	CustomerPhone string            `db:"customer_phone" json:"customerPhone"`
	PartySize     int               `db:"party_size" json:"partySize"`
	ReservedAt    time.Time         `db:"reserved_at" json:"reservedAt"`
	Status        ReservationStatus `db:"status" json:"status"`
	Note          string            `db:"note" json:"note"`
	AuditFields
}
