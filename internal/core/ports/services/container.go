package services

// ServiceContainer bundles every service facade for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Ledger      LedgerSvcFacade
	Category    CategorySvcFacade
	Venue       VenueSvcFacade
	CCA         CCASvcFacade
	User        UserSvcFacade
	Reservation ReservationSvcFacade
	Attendance  AttendanceSvcFacade
	Forum       ForumSvcFacade
	Site        SiteSvcFacade
}
