package docqa

import "context"

// Fetcher retrieves the raw content of a URL.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Network errors and non-success statuses are returned as errors;
	// callers treat them as a skipped page, not a fatal condition.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
