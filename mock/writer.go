package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of docqa.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, records []docqa.Record) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, records []docqa.Record) error {
	return w.WriteDatasetFn(ctx, records)
}

var _ docqa.DatasetReader = (*DatasetReader)(nil)

// DatasetReader is a mock implementation of docqa.DatasetReader.
type DatasetReader struct {
	ReadDatasetFn func(ctx context.Context) ([]docqa.Record, error)
}

func (r *DatasetReader) ReadDataset(ctx context.Context) ([]docqa.Record, error) {
	return r.ReadDatasetFn(ctx)
}
