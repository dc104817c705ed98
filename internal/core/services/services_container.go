package services

import (
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(repos.LedgerRepo, repos.CategoryRepo, repos.CCARepo),
		Category:    NewCategoryService(repos.CategoryRepo, repos.VenueRepo),
		Venue:       NewVenueService(repos.VenueRepo),
		CCA:         NewCCAService(repos.CCARepo, repos.VenueRepo),
		User:        NewUserService(repos.UserRepo),
		Reservation: NewReservationService(repos.ReservationRepo, repos.VenueRepo),
		Attendance:  NewAttendanceService(repos.AttendanceRepo, repos.CCARepo),
		Forum:       NewForumService(repos.ForumRepo),
		Site:        NewSiteService(repos.SiteRepo),
	}
}
