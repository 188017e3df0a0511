package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.CrawlRunService = (*CrawlRunService)(nil)

// CrawlRunService is a mock implementation of docqa.CrawlRunService.
type CrawlRunService struct {
	CreateCrawlRunFn   func(ctx context.Context, run *docqa.CrawlRun) error
	FindCrawlRunByIDFn func(ctx context.Context, id string) (*docqa.CrawlRun, error)
	FindCrawlRunsFn    func(ctx context.Context, filter docqa.CrawlRunFilter) ([]*docqa.CrawlRun, error)
	UpdateCrawlRunFn   func(ctx context.Context, id string, upd docqa.CrawlRunUpdate) (*docqa.CrawlRun, error)
	DeleteCrawlRunFn   func(ctx context.Context, id string) error
}

func (s *CrawlRunService) CreateCrawlRun(ctx context.Context, run *docqa.CrawlRun) error {
	return s.CreateCrawlRunFn(ctx, run)
}

func (s *CrawlRunService) FindCrawlRunByID(ctx context.Context, id string) (*docqa.CrawlRun, error) {
	return s.FindCrawlRunByIDFn(ctx, id)
}

func (s *CrawlRunService) FindCrawlRuns(ctx context.Context, filter docqa.CrawlRunFilter) ([]*docqa.CrawlRun, error) {
	return s.FindCrawlRunsFn(ctx, filter)
}

func (s *CrawlRunService) UpdateCrawlRun(ctx context.Context, id string, upd docqa.CrawlRunUpdate) (*docqa.CrawlRun, error) {
	return s.UpdateCrawlRunFn(ctx, id, upd)
}

func (s *CrawlRunService) DeleteCrawlRun(ctx context.Context, id string) error {
	return s.DeleteCrawlRunFn(ctx, id)
}

var _ docqa.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of docqa.RecordService.
type RecordService struct {
	CreateRecordsFn func(ctx context.Context, runID string, records []docqa.Record) error
	FindRecordsFn   func(ctx context.Context, filter docqa.RecordFilter) ([]docqa.Record, error)
	CountRecordsFn  func(ctx context.Context, runID string) (int, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []docqa.Record) error {
	return s.CreateRecordsFn(ctx, runID, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter docqa.RecordFilter) ([]docqa.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CountRecords(ctx context.Context, runID string) (int, error) {
	return s.CountRecordsFn(ctx, runID)
}
