package docqa

// Extraction holds everything harvested from a single page.
type Extraction struct {
	// Records are the heading/answer pairs in document order.
	Records []Record

	// Hrefs are the raw href attributes of every anchor on the page,
	// in document order. They are neither resolved nor filtered.
	Hrefs []string
}

// Extractor turns a page's HTML into question/answer records and the
// links it points to.
type Extractor interface {
	// Extract parses html once. Every record is tagged with pageURL.
	// Headings without trailing paragraphs are skipped, not reported.
	Extract(pageURL, html string) (*Extraction, error)
}
