// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"hospital-management/internal/delivery/dto"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OverdueSchedule runs the overdue sweep every day at 01:00.
const OverdueSchedule = "0 1 * * *"

const jobTimeout = time.Minute

type StatsRefresher interface {
	RefreshStatistics(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type OverdueMarker interface {
	MarkOverdue(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron         *cron.Cron
	log          *logrus.Logger
	stats        StatsRefresher
	billing      OverdueMarker
	statsRefresh time.Duration
}

// New builds a scheduler that refreshes the dashboard counters every
// statsRefresh and sweeps overdue invoices daily.
func New(log *logrus.Logger, stats StatsRefresher, billing OverdueMarker, statsRefresh time.Duration) *Scheduler {
	cronLog := cron.PrintfLogger(log.WithField("system", "cron"))
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		log:          log,
		stats:        stats,
		billing:      billing,
		statsRefresh: statsRefresh,
	}
}

func (s *Scheduler) RegisterJobs() error {
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.statsRefresh), s.RefreshStats); err != nil {
		return fmt.Errorf("register stats refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(OverdueSchedule, s.MarkOverdue); err != nil {
		return fmt.Errorf("register overdue sweep: %w", err)
	}

	s.log.WithField("jobs", len(s.cron.Entries())).Info("Scheduler jobs registered")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}

func (s *Scheduler) RefreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	stats, err := s.stats.RefreshStatistics(ctx)
	if err != nil {
		s.log.Warnf("Failed to refresh dashboard statistics: %+v", err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"patients":     stats.TotalPatients,
		"appointments": stats.TotalAppointments,
	}).Debug("Dashboard statistics refreshed")
}

func (s *Scheduler) MarkOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	changed, err := s.billing.MarkOverdue(ctx)
	if err != nil {
		s.log.Warnf("Failed to mark overdue transactions: %+v", err)
		return
	}
	s.log.WithField("changed", changed).Info("Billing statuses refreshed")
}
