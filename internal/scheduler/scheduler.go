package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
)

// Job is one scheduled unit of work, such as a content refresh.
type Job func(ctx context.Context) error

// Scheduler runs a job on a cron schedule until its context is cancelled.
// A trigger that fires while the previous run is still going joins that run
// instead of starting a second one.
type Scheduler struct {
	spec    string
	job     Job
	runNow  bool
	group   singleflight.Group
	logger  *slog.Logger
	newCron func() *cron.Cron
}

// NewScheduler creates a scheduler for a standard five-field cron spec.
// When runNow is set, one run starts immediately.
func NewScheduler(spec string, job Job, runNow bool, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		spec:    spec,
		job:     job,
		runNow:  runNow,
		logger:  logger,
		newCron: func() *cron.Cron { return cron.New(cron.WithLocation(time.UTC)) },
	}
}

// Run starts the cron loop. It returns nil when ctx is cancelled (graceful
// shutdown), after any in-flight run has finished.
func (s *Scheduler) Run(ctx context.Context) error {
	c := s.newCron()
	id, err := c.AddFunc(s.spec, func() { s.Trigger(ctx) })
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.spec, err)
	}

	c.Start()
	s.logger.Info("starting scheduler", "cron", s.spec, "next", c.Entry(id).Next)

	if s.runNow {
		go s.Trigger(ctx)
	}

	<-ctx.Done()
	s.logger.Info("shutting down scheduler")
	<-c.Stop().Done()
	// Wait for an immediate run that cron does not track.
	s.group.Do("run", func() (any, error) { return nil, nil })
	return nil
}

// Trigger runs the job unless a run is already in progress, in which case it
// waits for that run. Errors are logged; the loop keeps going.
func (s *Scheduler) Trigger(ctx context.Context) {
	_, _, shared := s.group.Do("run", func() (any, error) {
		if ctx.Err() != nil {
			return nil, nil
		}
		start := time.Now()
		if err := s.job(ctx); err != nil {
			s.logger.Error("scheduled run failed", "error", err)
			return nil, nil
		}
		s.logger.Info("scheduled run finished", "elapsed", time.Since(start).Round(time.Millisecond))
		return nil, nil
	})
	if shared {
		s.logger.Debug("trigger joined a run in progress")
	}
}

// CronForDays returns the spec for "every N days at 02:00 UTC".
func CronForDays(days int) (string, error) {
	if days <= 0 || days > 31 {
		return "", fmt.Errorf("days must be between 1 and 31, got %d", days)
	}
	spec := fmt.Sprintf("0 2 */%d * *", days)
	if _, err := cron.ParseStandard(spec); err != nil {
		return "", fmt.Errorf("build cron for %d days: %w", days, err)
	}
	return spec, nil
}

// NextRuns returns the next n activation times of spec after from.
func NextRuns(spec string, from time.Time, n int) ([]time.Time, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	runs := make([]time.Time, 0, n)
	t := from
	for range n {
		t = sched.Next(t)
		runs = append(runs, t)
	}
	return runs, nil
}
