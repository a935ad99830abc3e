// Package ratelimit implements GitHub API rate limit tracking and call pacing.
// It reads the X-RateLimit-Remaining and X-RateLimit-Reset headers after every
// response and sleeps before the quota is exhausted.
package ratelimit

import (
	"net/http"
	"strconv"
	"time"
)

// Rate limit headers returned by the GitHub REST API.
const (
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderReset     = "X-RateLimit-Reset"
)

// LowWaterMark is the remaining-call count below which the governor waits
// for the quota window to reset before issuing further requests.
const LowWaterMark = 10

// State is the rate limit state derived from one response's headers.
// It is recomputed per call and never carried across calls.
type State struct {
	// Remaining is the number of calls left in the current quota window.
	// Extracted from the X-RateLimit-Remaining header.
	Remaining int

	// ResetAt is the timestamp when the quota window resets.
	// Extracted from the X-RateLimit-Reset header (epoch seconds).
	ResetAt time.Time

	// Known reports whether the headers were present and parseable.
	// An unknown state never triggers a reset wait.
	Known bool
}

// ParseHeaders derives the rate limit state from response headers.
// Missing or malformed headers yield an unknown state, never an error.
func ParseHeaders(headers http.Header) State {
	remainStr := headers.Get(HeaderRemaining)
	if remainStr == "" {
		return State{}
	}

	remaining, err := strconv.Atoi(remainStr)
	if err != nil {
		return State{}
	}

	resetEpoch, err := strconv.ParseInt(headers.Get(HeaderReset), 10, 64)
	if err != nil {
		return State{}
	}

	return State{
		Remaining: remaining,
		ResetAt:   time.Unix(resetEpoch, 0),
		Known:     true,
	}
}

// NeedsResetWait returns true if the remaining quota is below the low-water
// mark and the caller should wait for the window to reset.
func (s State) NeedsResetWait() bool {
	return s.Known && s.Remaining < LowWaterMark
}

// TimeUntilReset returns the duration until the quota window resets.
// Returns 0 if the reset time has already passed.
func (s State) TimeUntilReset(now time.Time) time.Duration {
	d := s.ResetAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
