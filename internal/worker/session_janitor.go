package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
)

// DefaultJanitorInterval is used when a non-positive interval is given.
const DefaultJanitorInterval = time.Minute

// Sweeper drops expired session state and reports how much it removed.
type Sweeper interface {
	Sweep() int
}

// SessionJanitor periodically evicts expired sessions from a store that
// cannot expire them by itself.
type SessionJanitor struct {
	store    Sweeper
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionJanitor creates a new SessionJanitor.
func NewSessionJanitor(store Sweeper, interval time.Duration, log zerolog.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &SessionJanitor{
		store:    store,
		interval: interval,
		log:      logger.Component(log, "session_janitor"),
	}
}

// Start runs the sweep loop until ctx is cancelled. Call in a goroutine.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.log.Info().Dur("interval", j.interval).Msg("Worker started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *SessionJanitor) sweep() int {
	n := j.store.Sweep()
	if n > 0 {
		j.log.Debug().Int("evicted", n).Msg("Expired sessions evicted")
	}
	return n
}
