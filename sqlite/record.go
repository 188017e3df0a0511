package sqlite

import (
	"context"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ docqa.RecordService = (*RecordService)(nil)
	_ docqa.DatasetWriter = (*RunDataset)(nil)
	_ docqa.DatasetReader = (*RunDataset)(nil)
)

// RecordService implements docqa.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// ContentHash returns the xxHash of a record's question and answer as hex.
// Records with equal hashes are candidates for the same (question, answer) pair.
func ContentHash(r docqa.Record) string {
	d := xxhash.New()
	_, _ = d.WriteString(r.Question)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(r.Answer)
	return strconv.FormatUint(d.Sum64(), 16)
}

// CreateRecords appends records to a run in a single transaction.
// Positions continue after any records the run already holds.
// Duplicates are stored as-is; raw crawl output is not deduplicated.
func (s *RecordService) CreateRecords(ctx context.Context, runID string, records []docqa.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM crawl_runs WHERE id = ?", runID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return docqa.Errorf(docqa.ENOTFOUND, "crawl run not found")
	}

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM records WHERE run_id = ?", runID).Scan(&next); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, run_id, position, source_url, question, answer, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), runID, next+i,
			r.SourceURL, r.Question, r.Answer, ContentHash(r)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter in harvest order.
func (s *RecordService) FindRecords(ctx context.Context, filter docqa.RecordFilter) ([]docqa.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT source_url, question, answer FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY run_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []docqa.Record{}
	for rows.Next() {
		var r docqa.Record
		if err := rows.Scan(&r.SourceURL, &r.Question, &r.Answer); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns the number of records archived for a run.
func (s *RecordService) CountRecords(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records WHERE run_id = ?", runID).Scan(&n)
	return n, err
}

// RunDataset exposes one crawl run's records as a dataset.
type RunDataset struct {
	records docqa.RecordService
	runID   string
}

// NewRunDataset creates a dataset view over the records of runID.
func NewRunDataset(records docqa.RecordService, runID string) *RunDataset {
	return &RunDataset{records: records, runID: runID}
}

// WriteDataset appends records to the run.
func (d *RunDataset) WriteDataset(ctx context.Context, records []docqa.Record) error {
	return d.records.CreateRecords(ctx, d.runID, records)
}

// ReadDataset returns every record of the run in harvest order.
func (d *RunDataset) ReadDataset(ctx context.Context) ([]docqa.Record, error) {
	return d.records.FindRecords(ctx, docqa.RecordFilter{RunID: &d.runID})
}
