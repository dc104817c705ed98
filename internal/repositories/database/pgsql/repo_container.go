package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		VenueRepo:       newPgxVenueRepository(dbPool),
		CCARepo:         newPgxCCARepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
		AttendanceRepo:  newPgxAttendanceRepository(dbPool),
		ForumRepo:       newPgxForumRepository(dbPool),
		SiteRepo:        newPgxSiteRepository(dbPool),
	}
}
