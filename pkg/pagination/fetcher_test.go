package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ghexport/ghexport/pkg/github"
)

// fakePageFetcher serves pre-built pages and records how often it was called.
type fakePageFetcher struct {
	pages     [][]github.Repository
	failPage  int // 1-based page number that returns an error; 0 disables
	callCount int
}

func (f *fakePageFetcher) FetchPage(ctx context.Context, identifier string, page int) ([]github.Repository, error) {
	f.callCount++

	if f.failPage != 0 && page == f.failPage {
		return nil, errors.New("boom")
	}
	if page > len(f.pages) {
		return []github.Repository{}, nil
	}
	return f.pages[page-1], nil
}

// makePage builds a page of n distinct repositories with increasing IDs.
func makePage(startID, n int) []github.Repository {
	page := make([]github.Repository, n)
	for i := range page {
		page[i] = github.Repository{
			ID:       int64(startID + i),
			FullName: fmt.Sprintf("alice/repo-%d", startID+i),
		}
	}
	return page
}

func TestFetchAll_PageWalk(t *testing.T) {
	tests := []struct {
		name          string
		pages         [][]github.Repository
		config        Config
		expectRecords int
		expectCalls   int
	}{
		{
			name:          "single short page",
			pages:         [][]github.Repository{makePage(0, 3)},
			config:        Config{PageSize: 100, MaxRecords: 500},
			expectRecords: 3,
			expectCalls:   1,
		},
		{
			name: "two full pages then short page",
			pages: [][]github.Repository{
				makePage(0, 100), makePage(100, 100), makePage(200, 40),
			},
			config:        Config{PageSize: 100, MaxRecords: 500},
			expectRecords: 240,
			expectCalls:   3,
		},
		{
			name: "exactly full final page costs one extra empty call",
			pages: [][]github.Repository{
				makePage(0, 100), makePage(100, 100),
			},
			config:        Config{PageSize: 100, MaxRecords: 500},
			expectRecords: 200,
			expectCalls:   3,
		},
		{
			name: "cap reached mid-walk truncates",
			pages: [][]github.Repository{
				makePage(0, 100), makePage(100, 100), makePage(200, 100),
			},
			config:        Config{PageSize: 100, MaxRecords: 150},
			expectRecords: 150,
			expectCalls:   2,
		},
		{
			name:          "empty first page",
			pages:         [][]github.Repository{},
			config:        Config{PageSize: 100, MaxRecords: 500},
			expectRecords: 0,
			expectCalls:   1,
		},
		{
			name:          "zero cap issues no calls",
			pages:         [][]github.Repository{makePage(0, 100)},
			config:        Config{PageSize: 100, MaxRecords: 0},
			expectRecords: 0,
			expectCalls:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePageFetcher{pages: tt.pages}
			fetcher := NewFetcher(fake, tt.config)

			results, err := fetcher.FetchAll(context.Background(), "alice")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(results) != tt.expectRecords {
				t.Errorf("Records = %d, want %d", len(results), tt.expectRecords)
			}
			if fake.callCount != tt.expectCalls {
				t.Errorf("Calls = %d, want %d", fake.callCount, tt.expectCalls)
			}
		})
	}
}

func TestFetchAll_PreservesProviderOrder(t *testing.T) {
	fake := &fakePageFetcher{
		pages: [][]github.Repository{makePage(0, 100), makePage(100, 50)},
	}
	fetcher := NewFetcher(fake, Config{PageSize: 100, MaxRecords: 500})

	results, err := fetcher.FetchAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, repo := range results {
		if repo.ID != int64(i) {
			t.Fatalf("Record %d has ID %d, provider order not preserved", i, repo.ID)
		}
	}
}

func TestFetchAll_FirstPageFails(t *testing.T) {
	fake := &fakePageFetcher{
		pages:    [][]github.Repository{makePage(0, 100), makePage(100, 100)},
		failPage: 1,
	}
	fetcher := NewFetcher(fake, Config{PageSize: 100, MaxRecords: 500})

	results, err := fetcher.FetchAll(context.Background(), "alice")
	if err == nil {
		t.Fatal("Expected error for failed first page")
	}
	if len(results) != 0 {
		t.Errorf("Records = %d, want 0", len(results))
	}
	if fake.callCount != 1 {
		t.Errorf("Calls = %d, want 1 (no further calls after failure)", fake.callCount)
	}
}

func TestFetchAll_MidWalkFailureReturnsPartial(t *testing.T) {
	fake := &fakePageFetcher{
		pages:    [][]github.Repository{makePage(0, 100), makePage(100, 100), makePage(200, 100)},
		failPage: 3,
	}
	fetcher := NewFetcher(fake, Config{PageSize: 100, MaxRecords: 500})

	results, err := fetcher.FetchAll(context.Background(), "alice")
	if err == nil {
		t.Fatal("Expected error for failed page")
	}
	if len(results) != 200 {
		t.Errorf("Records = %d, want 200 (two pages before the failure)", len(results))
	}
}

func TestNewFetcher_ConfigDefaults(t *testing.T) {
	fetcher := NewFetcher(&fakePageFetcher{}, Config{MaxRecords: 500})
	if fetcher.config.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", fetcher.config.PageSize)
	}

	cfg := DefaultConfig()
	if cfg.PageSize != 100 || cfg.MaxRecords != 500 {
		t.Errorf("DefaultConfig() = %+v, want PageSize 100 and MaxRecords 500", cfg)
	}
}
