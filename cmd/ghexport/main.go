// Command ghexport reads usernames from a CSV file, collects each user's
// repository metadata from the GitHub REST API, and writes the result as CSV.
//
// A page fetch failure ends that username's collection with partial data and
// the run continues; only startup problems (missing token, unreadable input)
// abort the process.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/ghexport/ghexport/pkg/config"
	"github.com/ghexport/ghexport/pkg/export"
	"github.com/ghexport/ghexport/pkg/github"
	"github.com/ghexport/ghexport/pkg/logging"
	"github.com/ghexport/ghexport/pkg/pagination"
	"github.com/ghexport/ghexport/pkg/ratelimit"
)

func main() {
	cfg := config.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	}).With().Str("component", "ghexport").Logger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	identifiers, err := export.ReadIdentifiers(cfg.InputPath, cfg.IdentifierColumn)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.InputPath).Msg("Failed to read input file")
	}

	governor := ratelimit.NewGovernor(cfg.Pause, logging.NewLogger("rate-governor"))

	client, err := github.New(github.Config{
		Token:     cfg.Token,
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		PerPage:   cfg.PageSize,
		Timeout:   cfg.HTTPTimeout,
		Governor:  governor,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create GitHub client")
	}

	fetcher := pagination.NewFetcher(client, pagination.Config{
		PageSize:   client.PerPage(),
		MaxRecords: cfg.MaxRepos,
	})

	logger.Info().
		Int("identifiers", len(identifiers)).
		Int("max_repos", cfg.MaxRepos).
		Msg("Starting export")

	records, failures := collectAll(context.Background(), fetcher, identifiers, logger)

	if err := export.WriteRepositories(cfg.OutputPath, records); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.OutputPath).Msg("Failed to write output file")
	}

	logger.Info().
		Int("identifiers", len(identifiers)).
		Int("failed_identifiers", failures).
		Int("rows", len(records)).
		Str("output", cfg.OutputPath).
		Msg("Export complete")
}

// collectAll fetches every identifier in input order and concatenates the
// results. A failed identifier contributes whatever was collected before the
// failure; it is counted, logged, and the run moves on.
func collectAll(ctx context.Context, fetcher *pagination.Fetcher, identifiers []string, logger zerolog.Logger) ([]github.Repository, int) {
	var records []github.Repository
	failures := 0

	for _, identifier := range identifiers {
		repos, err := fetcher.FetchAll(ctx, identifier)
		if err != nil {
			failures++
			logger.Warn().
				Err(err).
				Str("identifier", identifier).
				Int("partial_records", len(repos)).
				Msg("Identifier fetch incomplete - continuing with next")
		}
		records = append(records, repos...)
	}

	return records, failures
}
