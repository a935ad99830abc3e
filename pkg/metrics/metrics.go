// Package metrics provides the centralized Prometheus registry reference for
// the exporter. All collectors are defined in their respective packages
// (github, ratelimit, pagination, export) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registerer used by the exporter.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/github):
//   - ghexport_requests_total{status} (Counter): Requests by HTTP status (or network_error)
//   - ghexport_request_duration_seconds (Histogram): Request duration
//   - ghexport_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Rate Limit Metrics (pkg/ratelimit):
//   - ghexport_rate_limit_remaining (Gauge): Calls remaining in the current quota window
//   - ghexport_rate_limit_reset_waits_total (Counter): Waits for the quota window to reset
//   - ghexport_rate_limit_sleep_seconds_total (Counter): Total seconds slept by the governor
//
// Pagination Metrics (pkg/pagination):
//   - ghexport_pages_fetched_total (Counter): Pages fetched across all identifiers
//   - ghexport_records_fetched_total (Counter): Repository records fetched
//   - ghexport_fetch_failures_total (Counter): Page fetches that truncated an identifier
//
// Export Metrics (pkg/export):
//   - ghexport_rows_written_total (Counter): Repository rows written to the output file
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(ghexport_errors_total[5m])
//
//   # Quota Status
//   ghexport_rate_limit_remaining < 10
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(ghexport_request_duration_seconds_bucket[5m]))
