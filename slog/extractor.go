package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingExtractor implements docqa.Extractor.
var _ docqa.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docqa.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docqa.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(pageURL, html string) (result *docqa.Extraction, err error) {
	defer func(begin time.Time) {
		var records, hrefs int
		if result != nil {
			records, hrefs = len(result.Records), len(result.Hrefs)
		}
		e.logger.Debug("extract",
			"url", pageURL,
			"records", records,
			"hrefs", hrefs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(pageURL, html)
}

// Ensure LoggingDatasetWriter implements docqa.DatasetWriter.
var _ docqa.DatasetWriter = (*LoggingDatasetWriter)(nil)

// LoggingDatasetWriter wraps a DatasetWriter with logging.
type LoggingDatasetWriter struct {
	next   docqa.DatasetWriter
	name   string
	logger *slog.Logger
}

// NewLoggingDatasetWriter creates a new LoggingDatasetWriter.
// The name identifies the destination in log lines (a path or database).
func NewLoggingDatasetWriter(next docqa.DatasetWriter, name string, logger *slog.Logger) *LoggingDatasetWriter {
	return &LoggingDatasetWriter{next: next, name: name, logger: logger}
}

// WriteDataset delegates to the wrapped writer and logs the operation.
func (w *LoggingDatasetWriter) WriteDataset(ctx context.Context, records []docqa.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.InfoContext(ctx, "write dataset",
			"dest", w.name,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDataset(ctx, records)
}
