// Package pagination implements sequential page collection for the GitHub
// repository listing endpoint.
//
// GitHub does not report a total page count for this endpoint, so the fetcher
// walks pages in increasing order until it sees a short or empty page, the
// configured record cap is reached, or a page fetch fails. On failure the
// records collected so far are returned; the failure is the caller's signal
// that the result is partial.
//
// Example usage:
//
//	fetcher := pagination.NewFetcher(client, pagination.DefaultConfig())
//	repos, err := fetcher.FetchAll(ctx, "alice")
//
// Fetching is strictly sequential; one request is in flight at a time so the
// rate governor's pacing applies to the whole run.
package pagination
