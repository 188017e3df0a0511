package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docqa.CrawlRunService = (*CrawlRunService)(nil)

// CrawlRunService implements docqa.CrawlRunService using SQLite.
type CrawlRunService struct {
	db *DB
}

// NewCrawlRunService creates a new CrawlRunService.
func NewCrawlRunService(db *DB) *CrawlRunService {
	return &CrawlRunService{db: db}
}

// CreateCrawlRun creates a new crawl run with a generated ID.
func (s *CrawlRunService) CreateCrawlRun(ctx context.Context, run *docqa.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawl_runs (id, start_url, max_pages, max_depth, visited, failed, records, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartURL, run.MaxPages, run.MaxDepth, run.Visited, run.Failed, run.Records,
		run.CreatedAt.Format(time.RFC3339))

	return err
}

const selectCrawlRun = `SELECT id, start_url, max_pages, max_depth, visited, failed, records, created_at FROM crawl_runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanCrawlRun(row scanner) (*docqa.CrawlRun, error) {
	var run docqa.CrawlRun
	var createdAt string
	if err := row.Scan(&run.ID, &run.StartURL, &run.MaxPages, &run.MaxDepth,
		&run.Visited, &run.Failed, &run.Records, &createdAt); err != nil {
		return nil, err
	}
	var err error
	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindCrawlRunByID retrieves a crawl run by ID.
func (s *CrawlRunService) FindCrawlRunByID(ctx context.Context, id string) (*docqa.CrawlRun, error) {
	run, err := scanCrawlRun(s.db.QueryRowContext(ctx, selectCrawlRun+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docqa.Errorf(docqa.ENOTFOUND, "crawl run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindCrawlRuns retrieves crawl runs matching the filter, newest first.
func (s *CrawlRunService) FindCrawlRuns(ctx context.Context, filter docqa.CrawlRunFilter) ([]*docqa.CrawlRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectCrawlRun + " WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StartURL != nil {
		query.WriteString(" AND start_url = ?")
		args = append(args, *filter.StartURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docqa.CrawlRun
	for rows.Next() {
		run, err := scanCrawlRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// UpdateCrawlRun writes the outcome counters of a finished crawl.
func (s *CrawlRunService) UpdateCrawlRun(ctx context.Context, id string, upd docqa.CrawlRunUpdate) (*docqa.CrawlRun, error) {
	run, err := s.FindCrawlRunByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Visited != nil {
		run.Visited = *upd.Visited
	}
	if upd.Failed != nil {
		run.Failed = *upd.Failed
	}
	if upd.Records != nil {
		run.Records = *upd.Records
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE crawl_runs SET visited = ?, failed = ?, records = ? WHERE id = ?
	`, run.Visited, run.Failed, run.Records, id)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// DeleteCrawlRun deletes a crawl run and, by cascade, its records.
func (s *CrawlRunService) DeleteCrawlRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM crawl_runs WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docqa.Errorf(docqa.ENOTFOUND, "crawl run not found")
	}
	return nil
}
