package rollover_test

import (
	"context"
	"testing"
	"time"

	"github.com/saadjs/healthlog/internal/rollover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerChecksOnStart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m := rollover.NewManager(f.ledger, rollover.PolicyPreviousDays, nil)
	s := rollover.NewScheduler(m, rollover.SchedulerOptions{Interval: time.Hour})

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	state, err := m.State(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, rollover.Current, state)
	assert.Len(t, f.ledger.Water(user), 1)
}

func TestSchedulerTicksReportRollover(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m := rollover.NewManager(f.ledger, rollover.PolicyPreviousDays, nil)

	ticks := make(chan bool, 8)
	s := rollover.NewScheduler(m, rollover.SchedulerOptions{
		Interval: time.Hour,
		Tick:     time.Second,
		OnTick: func(_ context.Context, rolled bool) {
			select {
			case ticks <- rolled:
			default:
			}
		},
	})
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case rolled := <-ticks:
		assert.True(t, rolled, "first tick after the start-up rollover reports it")
	case <-time.After(5 * time.Second):
		t.Fatal("expected a refresh tick")
	}
}
