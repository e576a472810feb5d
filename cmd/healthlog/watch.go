package healthlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/rollover"
	"github.com/saadjs/healthlog/internal/service"
)

var (
	watchFor      time.Duration
	watchInterval time.Duration
	watchTick     time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the ledger rolled over and print live progress until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(s *session) error {
			ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			if watchFor > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, watchFor)
				defer cancel()
			}

			interval := s.cfg.Rollover.Interval
			if watchInterval > 0 {
				interval = watchInterval
			}
			tick := s.cfg.Rollover.Tick
			if watchTick > 0 {
				tick = watchTick
			}

			w := &statusWriter{session: s, out: cmd.OutOrStdout()}
			sched := rollover.NewScheduler(s.rollover, rollover.SchedulerOptions{
				Interval: interval,
				Tick:     tick,
				OnTick:   w.tick,
				Logger:   s.log,
			})
			if err := sched.Start(ctx); err != nil {
				return err
			}
			w.tick(ctx, false)

			<-ctx.Done()
			sched.Stop()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchFor, "for", 0, "Stop after this long (default: until interrupted)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Rollover check interval (default: rollover.interval)")
	watchCmd.Flags().DurationVar(&watchTick, "tick", 0, "Refresh interval (default: rollover.tick)")
}

// statusWriter prints one line per tick, skipping lines identical to the
// previous one.
type statusWriter struct {
	session *session
	out     io.Writer

	mu   sync.Mutex
	last string
}

func (w *statusWriter) tick(ctx context.Context, rolled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.session
	if err := s.ledger.Reload(ctx); err != nil {
		s.log.WarnContext(ctx, "reload for watch failed", "error", err)
		return
	}
	status, err := service.TodaySummary(ctx, s.ledger, s.user)
	if err != nil {
		s.log.WarnContext(ctx, "summary for watch failed", "error", err)
		return
	}
	line := fmt.Sprintf("%s | water %d/%d ml | %d/%d kcal", status.Date, status.WaterML, status.WaterGoalML, status.Calories, status.CalorieGoal)
	if status.Fasting {
		line += " | fasting " + service.FormatFastingTime(status.FastingMinutes)
	}
	if rolled {
		fmt.Fprintf(w.out, "New day: %s\n", status.Date)
	}
	if line == w.last {
		return
	}
	w.last = line
	fmt.Fprintln(w.out, line)
}
