// Package crawl provides breadth-first harvesting of documentation sites.
// It drives the fetch, extract and enqueue cycle over a FIFO frontier,
// bounded by a page budget and a depth budget.
package crawl

import (
	"context"
	"strings"

	"github.com/fwojciec/docqa"
)

// Crawl defaults.
const (
	DefaultMaxPages = 100
	DefaultMaxDepth = 3
)

// Crawler harvests question/answer records from a single site.
// A Crawler holds no per-crawl state; each Crawl call owns its own frontier.
type Crawler struct {
	Fetcher   docqa.Fetcher
	Extractor docqa.Extractor
	Links     docqa.LinkNormalizer
}

// Result holds the outcome of a crawl.
type Result struct {
	// Records are all harvested records in crawl order.
	Records []docqa.Record

	// Visited is the number of pages fetched and processed.
	Visited int

	// Failed is the number of fetch attempts that failed.
	Failed int

	// Skipped is the number of popped items that were already visited,
	// already failed, or deeper than the depth budget.
	Skipped int

	// Enqueued is the number of links pushed to the frontier.
	Enqueued int

	// Bytes is the total size of fetched pages.
	Bytes int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type     ProgressType
	URL      string
	Depth    int
	Visited  int
	MaxPages int
	Records  int
	Links    int
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl performs a breadth-first crawl from startURL and returns every
// record harvested along the way.
//
// Pages are processed one at a time. A popped item is skipped when its URL
// was already visited, already failed, or its depth exceeds maxDepth; the
// depth check happens at pop time, so items past the budget may sit in the
// queue briefly. The loop stops when the queue is empty or maxPages pages
// have been visited.
//
// A failed fetch is reported and never retried: the URL is remembered as
// failed and is not enqueued again. Failed pages do not count toward
// maxPages.
//
// Every href is resolved against the start URL, not the page it appears
// on, and kept only when it shares the start URL's root domain.
func (c *Crawler) Crawl(ctx context.Context, startURL string, maxPages, maxDepth int, progress ProgressFunc) (*Result, error) {
	if maxPages < 1 {
		return nil, docqa.Errorf(docqa.EINVALID, "max pages must be at least 1, got %d", maxPages)
	}
	if maxDepth < 0 {
		return nil, docqa.Errorf(docqa.EINVALID, "max depth must not be negative, got %d", maxDepth)
	}

	start, err := c.Links.Normalize(startURL, startURL)
	if err != nil {
		return nil, docqa.Errorf(docqa.EINVALID, "invalid start URL %q: %s", startURL, docqa.ErrorMessage(err))
	}

	notify := func(event ProgressEvent) {
		if progress != nil {
			event.MaxPages = maxPages
			progress(event)
		}
	}

	frontier := NewFrontier()
	frontier.Push(docqa.FrontierItem{URL: start, Depth: 0})

	result := &Result{}
	notify(ProgressEvent{Type: ProgressStarted, URL: start})

	for frontier.VisitedCount() < maxPages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		item, ok := frontier.Pop()
		if !ok {
			break
		}

		if frontier.Visited(item.URL) || frontier.Failed(item.URL) || item.Depth > maxDepth {
			result.Skipped++
			continue
		}

		html, err := c.Fetcher.Fetch(ctx, item.URL)
		if err == nil && strings.TrimSpace(html) == "" {
			err = docqa.Errorf(docqa.EINVALID, "empty response body")
		}
		if err != nil {
			frontier.Fail(item.URL)
			result.Failed++
			notify(ProgressEvent{
				Type:    ProgressFailed,
				URL:     item.URL,
				Depth:   item.Depth,
				Visited: frontier.VisitedCount(),
				Error:   err,
			})
			continue
		}

		frontier.Visit(item.URL)
		result.Visited++
		result.Bytes += len(html)

		extraction, err := c.Extractor.Extract(item.URL, html)
		if err != nil {
			notify(ProgressEvent{
				Type:    ProgressFailed,
				URL:     item.URL,
				Depth:   item.Depth,
				Visited: frontier.VisitedCount(),
				Error:   err,
			})
			continue
		}

		result.Records = append(result.Records, extraction.Records...)

		links := c.discover(start, extraction.Hrefs)
		for _, link := range links {
			if frontier.Visited(link) || frontier.Failed(link) {
				continue
			}
			frontier.Push(docqa.FrontierItem{URL: link, Depth: item.Depth + 1})
			result.Enqueued++
		}

		notify(ProgressEvent{
			Type:    ProgressCompleted,
			URL:     item.URL,
			Depth:   item.Depth,
			Visited: frontier.VisitedCount(),
			Records: len(extraction.Records),
			Links:   len(links),
		})
	}

	notify(ProgressEvent{
		Type:    ProgressFinished,
		Visited: frontier.VisitedCount(),
		Records: len(result.Records),
	})

	return result, nil
}

// discover resolves hrefs against startURL and returns the distinct
// same-site links in first-seen order. Hrefs that fail to normalize
// are dropped.
func (c *Crawler) discover(startURL string, hrefs []string) []string {
	seen := make(map[string]struct{}, len(hrefs))
	var links []string
	for _, href := range hrefs {
		link, err := c.Links.Normalize(startURL, href)
		if err != nil {
			continue
		}
		if !c.Links.SameSite(startURL, link) {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}
