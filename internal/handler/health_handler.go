package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
)

const healthTimeout = 2 * time.Second

// Pinger is a dependency the server cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// SessionCounter reports how many logins currently hold state.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler reports liveness, uptime and the state of dependencies.
type HealthHandler struct {
	startTime time.Time
	checks    map[string]Pinger
	sessions  SessionCounter
	log       zerolog.Logger
}

// NewHealthHandler creates a HealthHandler. checks may be empty and
// sessions may be nil.
func NewHealthHandler(checks map[string]Pinger, sessions SessionCounter, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		checks:    checks,
		sessions:  sessions,
		log:       logger.Component(log, "health_handler"),
	}
}

// Health godoc
// GET /health
// Returns 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := "ok"
	deps := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Str("dependency", name).Msg("Health check failed")
			deps[name] = "down"
			status = "degraded"
			continue
		}
		deps[name] = "up"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	body := gin.H{
		"status":       status,
		"uptime":       time.Since(h.startTime).Round(time.Second).String(),
		"dependencies": deps,
		"goroutines":   runtime.NumGoroutine(),
		"heap_alloc":   mem.HeapAlloc,
		"go_version":   runtime.Version(),
	}
	if h.sessions != nil && status == "ok" {
		// Informational only; a failed count does not change the status.
		if n, err := h.sessions.Count(ctx); err == nil {
			body["active_sessions"] = n
		} else {
			h.log.Warn().Err(err).Msg("Session count failed")
		}
	}
	response.Success(c, code, body)
}
