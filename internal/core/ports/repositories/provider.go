package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	CategoryRepo    CategoryRepository
	LedgerRepo      LedgerRepository
	VenueRepo       VenueRepository
	CCARepo         CCARepository
	UserRepo        UserRepository
	ReservationRepo ReservationRepository
	AttendanceRepo  AttendanceRepository
	ForumRepo       ForumRepository
	SiteRepo        SiteRepository
}
