package ratelimit

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for rate limit pacing.
var (
	rateLimitRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ghexport_rate_limit_remaining",
		Help: "Calls remaining in the current GitHub rate limit window",
	})

	rateLimitResetWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghexport_rate_limit_reset_waits_total",
		Help: "Total number of waits for the rate limit window to reset",
	})

	rateLimitSleepSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghexport_rate_limit_sleep_seconds_total",
		Help: "Total seconds slept by the rate governor",
	})
)

// DefaultPause is the fixed pause applied after every call to smooth the
// request rate, independent of the reported quota.
const DefaultPause = 2 * time.Second

// Governor paces API calls based on the provider's rate limit headers.
// It is called after every completed response; it sleeps, it never errors.
type Governor struct {
	pause  time.Duration
	logger zerolog.Logger

	// Injectable for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// NewGovernor creates a governor with the given fixed inter-call pause.
// A non-positive pause falls back to DefaultPause.
func NewGovernor(pause time.Duration, logger zerolog.Logger) *Governor {
	if pause <= 0 {
		pause = DefaultPause
	}
	return &Governor{
		pause:  pause,
		logger: logger,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Wait inspects the response headers and blocks until it is safe to issue the
// next call. When the remaining quota is below the low-water mark it waits for
// the window to reset; it always applies the fixed pause afterwards. Missing
// or malformed headers only skip the conditional wait.
func (g *Governor) Wait(headers http.Header) {
	state := ParseHeaders(headers)

	if state.Known {
		rateLimitRemaining.Set(float64(state.Remaining))
		g.logger.Debug().
			Int("remaining", state.Remaining).
			Time("reset_at", state.ResetAt).
			Msg("Rate limit state updated")
	}

	if state.NeedsResetWait() {
		wait := state.TimeUntilReset(g.now())
		if wait > 0 {
			g.logger.Warn().
				Int("remaining", state.Remaining).
				Dur("wait", wait).
				Msg("Rate limit low - waiting for window reset")

			rateLimitResetWaitsTotal.Inc()
			rateLimitSleepSeconds.Add(wait.Seconds())
			g.sleep(wait)
		}
	}

	rateLimitSleepSeconds.Add(g.pause.Seconds())
	g.sleep(g.pause)
}
