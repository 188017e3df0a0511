package docqa

import "context"

// Record is one heading paired with the paragraph text that follows it,
// tagged with the page it was harvested from.
type Record struct {
	SourceURL string `json:"url"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// Validate returns an error if the record contains invalid fields.
func (r Record) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.Question == "" {
		return Errorf(EINVALID, "record question required")
	}
	if r.Answer == "" {
		return Errorf(EINVALID, "record answer required")
	}
	return nil
}

// DatasetWriter persists an ordered collection of records.
// The whole dataset is written at once; there is no incremental flush.
type DatasetWriter interface {
	WriteDataset(ctx context.Context, records []Record) error
}

// DatasetReader loads an ordered collection of records.
type DatasetReader interface {
	ReadDataset(ctx context.Context) ([]Record, error)
}
