package docqa

// FrontierItem is a URL waiting to be crawled, with the number of link
// hops that separate it from the start URL.
type FrontierItem struct {
	URL   string
	Depth int
}

// URLFrontier is the pending-work queue of a single crawl together with
// the set of URLs it has already processed.
type URLFrontier interface {
	// Push appends an item to the back of the queue.
	Push(item FrontierItem)

	// Pop removes the item at the front of the queue.
	// Returns false if the queue is empty.
	Pop() (FrontierItem, bool)

	// Len returns the number of queued items.
	Len() int

	// Visit marks a URL as processed.
	Visit(url string)

	// Visited returns true if the URL has been processed.
	Visited(url string) bool

	// VisitedCount returns the number of processed URLs.
	VisitedCount() int

	// Fail records that fetching a URL was attempted and failed.
	// Failed URLs are not visited and do not count toward VisitedCount.
	Fail(url string)

	// Failed returns true if fetching the URL already failed once.
	Failed(url string) bool
}
