package pagination

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ghexport/ghexport/pkg/github"
)

// Prometheus metrics for page collection.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghexport_pages_fetched_total",
		Help: "Total pages fetched across all identifiers",
	})

	recordsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghexport_records_fetched_total",
		Help: "Total repository records fetched across all identifiers",
	})

	fetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghexport_fetch_failures_total",
		Help: "Total page fetches that failed and truncated an identifier",
	})
)

// PageFetcher is the interface the GitHub client implements for single-page
// fetching.
type PageFetcher interface {
	// FetchPage fetches one page of an identifier's repositories.
	FetchPage(ctx context.Context, identifier string, page int) ([]github.Repository, error)
}

// Config holds fetcher configuration.
type Config struct {
	// PageSize is the provider page size; pages shorter than this end the walk.
	PageSize int

	// MaxRecords caps the result set per identifier.
	MaxRecords int
}

// DefaultConfig returns the default fetcher configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:   100,
		MaxRecords: 500,
	}
}

// Fetcher collects all pages for one identifier into a single ordered slice.
type Fetcher struct {
	fetcher PageFetcher
	config  Config
	logger  zerolog.Logger
}

// NewFetcher creates a sequential page fetcher.
func NewFetcher(fetcher PageFetcher, config Config) *Fetcher {
	if config.PageSize <= 0 {
		config.PageSize = 100
	}
	if config.MaxRecords < 0 {
		config.MaxRecords = 0
	}

	return &Fetcher{
		fetcher: fetcher,
		config:  config,
		logger:  log.With().Str("component", "pagination").Logger(),
	}
}

// FetchAll walks pages in increasing order until an empty or short page, the
// record cap, or a failed fetch. Records keep provider order. When a page
// fetch fails, the records collected so far are returned together with the
// error; callers treat the error as "result is partial", not as fatal.
func (f *Fetcher) FetchAll(ctx context.Context, identifier string) ([]github.Repository, error) {
	start := time.Now()

	var results []github.Repository

	// A cap of zero means nothing to fetch; don't spend a call on it.
	if f.config.MaxRecords == 0 {
		return results, nil
	}

	f.logger.Info().
		Str("identifier", identifier).
		Int("max_records", f.config.MaxRecords).
		Msg("Starting page walk")

	for page := 1; len(results) < f.config.MaxRecords; page++ {
		repos, err := f.fetcher.FetchPage(ctx, identifier, page)
		if err != nil {
			fetchFailuresTotal.Inc()
			f.logger.Warn().
				Err(err).
				Str("identifier", identifier).
				Int("page", page).
				Int("records", len(results)).
				Msg("Page fetch failed - returning partial results")
			return f.truncate(results), err
		}

		pagesFetchedTotal.Inc()

		if len(repos) == 0 {
			break
		}

		results = append(results, repos...)
		recordsFetchedTotal.Add(float64(len(repos)))

		// A short page is the provider's last page.
		if len(repos) < f.config.PageSize {
			break
		}
	}

	results = f.truncate(results)

	f.logger.Info().
		Str("identifier", identifier).
		Int("records", len(results)).
		Dur("duration", time.Since(start)).
		Msg("Page walk complete")

	return results, nil
}

// truncate enforces the per-identifier record cap.
func (f *Fetcher) truncate(results []github.Repository) []github.Repository {
	if len(results) > f.config.MaxRecords {
		return results[:f.config.MaxRecords]
	}
	return results
}
