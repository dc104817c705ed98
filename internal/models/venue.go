package models

// Venue represents a business location employing CCAs.
// A venue owns its point/penalty category catalog scope.
type Venue struct {
	VenueID     string `db:"venue_id" json:"venueID"`
	Name        string `db:"name" json:"name"`
	Address     string `db:"address" json:"address"`
	Phone       string `db:"phone" json:"phone"`
	Description string `db:"description" json:"description"`
	IsActive    bool   `db:"is_active" json:"isActive"`
	AuditFields
}
