// Package fs provides file-based storage for question/answer datasets.
package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docqa"
)

// Dataset column names, in output order.
const (
	ColumnURL      = "url"
	ColumnQuestion = "question"
	ColumnAnswer   = "answer"
)

// Header is the first row of every dataset file.
var Header = []string{ColumnURL, ColumnQuestion, ColumnAnswer}

// CleanedPrefix is prepended to the file name of a cleaned dataset.
const CleanedPrefix = "cleaned-"

// Ensure DatasetFile implements the dataset interfaces at compile time.
var (
	_ docqa.DatasetWriter = (*DatasetFile)(nil)
	_ docqa.DatasetReader = (*DatasetFile)(nil)
)

// DatasetFile reads and writes a dataset as a CSV file with a header row.
// Writes are atomic: rows go to a temporary file in the same directory,
// which is renamed over the destination once fully written.
type DatasetFile struct {
	path string
}

// NewDatasetFile creates a DatasetFile for the given path.
func NewDatasetFile(path string) *DatasetFile {
	return &DatasetFile{path: path}
}

// Path returns the file's location.
func (f *DatasetFile) Path() string {
	return f.path
}

// CleanedPath returns the sibling path for the cleaned version of path:
// data/raw.csv becomes data/cleaned-raw.csv.
func CleanedPath(path string) string {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, CleanedPrefix+base+ext)
}

// WriteDataset writes records to the file, replacing any previous content.
// An empty dataset still produces a header row.
func (f *DatasetFile) WriteDataset(ctx context.Context, records []docqa.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, name := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeCSV(tmp, records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", f.path, err)
	}
	return nil
}

func writeCSV(w io.Writer, records []docqa.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.SourceURL, r.Question, r.Answer}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadDataset reads every record from the file.
//
// Columns are located by header name, so extra columns and any column
// order are accepted. A missing url, question or answer column is EINVALID;
// a missing file is ENOTFOUND.
func (f *DatasetFile) ReadDataset(ctx context.Context) ([]docqa.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docqa.Errorf(docqa.ENOTFOUND, "dataset file not found: %s", f.path)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	cr := csv.NewReader(file)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, docqa.Errorf(docqa.EINVALID, "dataset file is empty: %s", f.path)
	} else if err != nil {
		return nil, docqa.Errorf(docqa.EINVALID, "read header of %s: %s", f.path, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := []docqa.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, docqa.Errorf(docqa.EINVALID, "read %s: %s", f.path, err)
		}
		records = append(records, docqa.Record{
			SourceURL: field(row, idx[ColumnURL]),
			Question:  field(row, idx[ColumnQuestion]),
			Answer:    field(row, idx[ColumnAnswer]),
		})
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	var missing []string
	for _, col := range Header {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, docqa.Errorf(docqa.EINVALID, "dataset is missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// field returns row[i], or "" for short rows.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
