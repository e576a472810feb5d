package rollover

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs Check on a fixed interval and, optionally, a refresh
// callback on a faster tick for live displays.
type Scheduler struct {
	manager  *Manager
	cron     *cron.Cron
	interval time.Duration
	tick     time.Duration
	onTick   func(ctx context.Context, rolled bool)
	log      *slog.Logger

	rolled chan struct{}
}

type SchedulerOptions struct {
	Interval time.Duration
	Tick     time.Duration
	// OnTick runs every Tick; rolled is true on the first tick after a
	// rollover happened.
	OnTick func(ctx context.Context, rolled bool)
	Logger *slog.Logger
}

func NewScheduler(m *Manager, opts SchedulerOptions) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		manager:  m,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		interval: opts.Interval,
		tick:     opts.Tick,
		onTick:   opts.OnTick,
		log:      opts.Logger.With("component", "scheduler"),
		rolled:   make(chan struct{}, 1),
	}
}

// Start runs one Check immediately, then schedules the recurring jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	s.runCheck(ctx)

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.runCheck(ctx)
	}); err != nil {
		return fmt.Errorf("schedule rollover check: %w", err)
	}
	if s.onTick != nil && s.tick > 0 {
		if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.tick), func() {
			s.onTick(ctx, s.takeRolled())
		}); err != nil {
			return fmt.Errorf("schedule refresh tick: %w", err)
		}
	}

	s.cron.Start()
	s.log.InfoContext(ctx, "scheduler started", "interval", s.interval.String(), "tick", s.tick.String())
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runCheck(ctx context.Context) {
	rolled, err := s.manager.Check(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "rollover check failed", "error", err)
		return
	}
	if rolled {
		select {
		case s.rolled <- struct{}{}:
		default:
		}
	}
}

func (s *Scheduler) takeRolled() bool {
	select {
	case <-s.rolled:
		return true
	default:
		return false
	}
}
