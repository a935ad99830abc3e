// Package github provides the GitHub REST API client with rate limit pacing
// and error classification.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ghexport/ghexport/pkg/ratelimit"
)

// Prometheus metrics for GitHub client operations.
var (
	githubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ghexport_requests_total",
		Help: "Total GitHub requests by status",
	}, []string{"status"})

	githubRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ghexport_request_duration_seconds",
		Help:    "GitHub request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	})

	githubErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ghexport_errors_total",
		Help: "Total GitHub request errors by class",
	}, []string{"class"})
)

// API constants for the GitHub REST surface.
const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"

	// AcceptHeader is the versioned GitHub JSON media type.
	AcceptHeader = "application/vnd.github+json"

	// APIVersion pins the REST API revision via X-GitHub-Api-Version.
	APIVersion = "2022-11-28"

	// DefaultPerPage is the provider's maximum page size.
	DefaultPerPage = 100
)

// Client is the GitHub API client for listing user repositories.
type Client struct {
	httpClient *http.Client
	governor   *ratelimit.Governor
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration. The value is fixed at construction;
// there is no mutable shared client state.
type Config struct {
	// Token is the GitHub access token, sent as a Bearer credential (REQUIRED).
	Token string

	// BaseURL overrides the API endpoint (tests, GitHub Enterprise).
	BaseURL string

	// UserAgent identifies this tool to GitHub (REQUIRED by the API).
	UserAgent string

	// PerPage is the page size requested per call, capped at 100 by GitHub.
	PerPage int

	// Timeout applies per HTTP request.
	Timeout time.Duration

	// Governor paces calls from rate limit headers. Optional; nil disables
	// pacing (tests only).
	Governor *ratelimit.Governor
}

// DefaultConfig returns a safe default configuration for the given token.
func DefaultConfig(token, userAgent string) Config {
	return Config{
		Token:     token,
		BaseURL:   DefaultBaseURL,
		UserAgent: userAgent,
		PerPage:   DefaultPerPage,
		Timeout:   30 * time.Second,
	}
}

// New creates a new GitHub client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("access token is required")
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.PerPage <= 0 || cfg.PerPage > DefaultPerPage {
		cfg.PerPage = DefaultPerPage
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "github-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		governor: cfg.Governor,
		config:   cfg,
		logger:   logger,
	}, nil
}

// PerPage returns the configured page size.
func (c *Client) PerPage() int {
	return c.config.PerPage
}

// FetchPage fetches one page of a user's repositories, sorted by last push
// time descending. The governor runs after every completed response, before
// the body is decoded. A transport failure or non-2xx status yields no
// records and a classified error; the caller decides whether to stop.
func (c *Client) FetchPage(ctx context.Context, identifier string, page int) ([]Repository, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.config.BaseURL, url.PathEscape(identifier))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	query := url.Values{}
	query.Set("sort", "pushed")
	query.Set("direction", "desc")
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.config.PerPage))
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	req.Header.Set("User-Agent", c.config.UserAgent)

	c.logger.Debug().
		Str("identifier", identifier).
		Int("page", page).
		Msg("Executing GitHub request")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	githubRequestDuration.Observe(time.Since(startTime).Seconds())

	if err != nil {
		githubErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		githubRequestsTotal.WithLabelValues("network_error").Inc()
		c.logger.Error().Err(err).
			Str("identifier", identifier).
			Int("page", page).
			Msg("HTTP request failed")
		return nil, &APIError{
			ErrorClass: ErrorClassNetwork,
			Message:    "request failed",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	// Pace before touching the body so quota headers are honored even on
	// error responses.
	if c.governor != nil {
		c.governor.Wait(resp.Header)
	}

	githubRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errClass := classifyStatus(resp.StatusCode)
		githubErrorsTotal.WithLabelValues(string(errClass)).Inc()

		c.logger.Warn().
			Str("identifier", identifier).
			Int("page", page).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("GitHub request error")

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Message:    resp.Status,
		}
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		githubErrorsTotal.WithLabelValues(string(ErrorClassServer)).Inc()
		return nil, fmt.Errorf("decode page %d for %q: %w", page, identifier, err)
	}

	c.logger.Debug().
		Str("identifier", identifier).
		Int("page", page).
		Int("records", len(repos)).
		Msg("Page fetched")

	return repos, nil
}
