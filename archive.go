package docqa

import (
	"context"
	"time"
)

// CrawlRun is one archived crawl invocation.
type CrawlRun struct {
	ID        string
	StartURL  string
	MaxPages  int
	MaxDepth  int
	Visited   int
	Failed    int
	Records   int
	CreatedAt time.Time
}

// Validate returns an error if the run contains invalid fields.
func (r *CrawlRun) Validate() error {
	if r.StartURL == "" {
		return Errorf(EINVALID, "crawl run start URL required")
	}
	if r.MaxPages < 1 {
		return Errorf(EINVALID, "crawl run max pages must be at least 1")
	}
	if r.MaxDepth < 0 {
		return Errorf(EINVALID, "crawl run max depth must not be negative")
	}
	return nil
}

// CrawlRunFilter represents a filter for FindCrawlRuns.
type CrawlRunFilter struct {
	ID       *string
	StartURL *string

	Limit  int
	Offset int
}

// CrawlRunUpdate holds the outcome counters written once a crawl finishes.
type CrawlRunUpdate struct {
	Visited *int
	Failed  *int
	Records *int
}

// CrawlRunService manages archived crawl runs.
type CrawlRunService interface {
	CreateCrawlRun(ctx context.Context, run *CrawlRun) error
	FindCrawlRunByID(ctx context.Context, id string) (*CrawlRun, error)
	FindCrawlRuns(ctx context.Context, filter CrawlRunFilter) ([]*CrawlRun, error)
	UpdateCrawlRun(ctx context.Context, id string, upd CrawlRunUpdate) (*CrawlRun, error)
	DeleteCrawlRun(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
// Results are always returned in harvest order.
type RecordFilter struct {
	RunID     *string
	SourceURL *string

	Limit  int
	Offset int
}

// RecordService archives harvested records per crawl run.
type RecordService interface {
	CreateRecords(ctx context.Context, runID string, records []Record) error
	FindRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
	CountRecords(ctx context.Context, runID string) (int, error)
}
