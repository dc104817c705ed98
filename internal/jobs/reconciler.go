// Package jobs holds the scheduled background work: the nightly sweep that
// recomputes every CCA's cached balance from the ledger and repairs drift.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	portssvc "github.com/nitelabs/venue_crm_app/internal/core/ports/services"
)

// reconcileActor is recorded as the acting user for scheduled repairs.
const reconcileActor = "system:reconciler"

// Scheduler runs the periodic ledger reconciliation.
type Scheduler struct {
	cron     *cron.Cron
	ledger   portssvc.LedgerSvcFacade
	venues   portssvc.VenueSvcFacade
	logger   *slog.Logger
	schedule string
}

// NewScheduler creates a scheduler; schedule is a cron spec, empty disables.
func NewScheduler(ledger portssvc.LedgerSvcFacade, venues portssvc.VenueSvcFacade, logger *slog.Logger, schedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:     c,
		ledger:   ledger,
		venues:   venues,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the reconciliation job and starts the cron scheduler.
func (s *Scheduler) Start() {
	if s.schedule == "" {
		s.logger.Info("reconciliation job disabled, no schedule configured")
		return
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runReconciliation); err != nil {
		s.logger.Error("failed to schedule reconciliation job", "error", err)
		return
	}
	s.logger.Info("scheduled reconciliation job", "schedule", s.schedule)

	s.cron.Start()
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// runReconciliation sweeps every venue's roster, repairing diverged
// balances and logging each divergence it found.
func (s *Scheduler) runReconciliation() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	venues, err := s.venues.ListVenues(ctx)
	if err != nil {
		s.logger.Error("reconciliation sweep failed to list venues", "error", err)
		return
	}

	var checked, diverged int
	for _, venue := range venues {
		results, err := s.ledger.ReconcileVenue(ctx, venue.VenueID, true, reconcileActor)
		if err != nil {
			s.logger.Error("reconciliation failed for venue", "venue_id", venue.VenueID, "error", err)
			continue
		}
		checked += len(results)
		for _, res := range results {
			if !res.Diverged {
				continue
			}
			diverged++
			s.logger.Warn("repaired diverged balance",
				"cca_id", res.CCAID,
				"ledger_balance", res.LedgerBalance.String(),
				"cached_balance", res.CachedBalance.String(),
			)
		}
	}

	s.logger.Info("reconciliation sweep finished", "checked", checked, "diverged", diverged)
}
