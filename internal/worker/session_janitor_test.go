package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/store"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestSessionJanitorSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewSessionJanitor(sweeper, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitorEvictsExpiredState(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	assert.NoError(t, st.Create(ctx, "short", portal.Snapshot{}, time.Millisecond))
	assert.NoError(t, st.Create(ctx, "long", portal.Snapshot{}, time.Hour))

	j := NewSessionJanitor(st, time.Hour, zerolog.Nop())
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, j.sweep())
	assert.Equal(t, 1, st.Len())
	assert.Zero(t, j.sweep())
}

func TestSessionJanitorNonPositiveInterval(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		j := NewSessionJanitor(&countingSweeper{}, d, zerolog.Nop())
		assert.Equal(t, DefaultJanitorInterval, j.interval)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.NotPanics(t, func() { j.Start(ctx) })
	}
}
