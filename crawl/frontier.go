package crawl

import "github.com/fwojciec/docqa"

// Compile-time interface verification.
var _ docqa.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO URL frontier with exact visitation tracking.
// It is owned by a single crawl loop and is not safe for concurrent use.
//
// Push does not deduplicate: the same URL may be queued more than once,
// and the crawl loop skips it at pop time once it has been visited.
type Frontier struct {
	queue   []docqa.FrontierItem
	head    int
	visited map[string]struct{}
	failed  map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		visited: make(map[string]struct{}),
		failed:  make(map[string]struct{}),
	}
}

// Push appends an item to the back of the queue.
func (f *Frontier) Push(item docqa.FrontierItem) {
	f.queue = append(f.queue, item)
}

// Pop removes and returns the item at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (docqa.FrontierItem, bool) {
	if f.head >= len(f.queue) {
		return docqa.FrontierItem{}, false
	}
	item := f.queue[f.head]
	f.queue[f.head] = docqa.FrontierItem{}
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 1024 && f.head*2 > len(f.queue) {
		f.queue = append([]docqa.FrontierItem(nil), f.queue[f.head:]...)
		f.head = 0
	}
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// Visit marks a URL as processed.
func (f *Frontier) Visit(url string) {
	f.visited[url] = struct{}{}
}

// Visited returns true if the URL has been processed.
func (f *Frontier) Visited(url string) bool {
	_, ok := f.visited[url]
	return ok
}

// VisitedCount returns the number of processed URLs.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}

// Fail records a failed fetch attempt for a URL.
func (f *Frontier) Fail(url string) {
	f.failed[url] = struct{}{}
}

// Failed returns true if fetching the URL already failed.
func (f *Frontier) Failed(url string) bool {
	_, ok := f.failed[url]
	return ok
}
