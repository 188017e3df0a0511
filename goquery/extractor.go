// Package goquery implements docqa.Extractor using goquery's
// jQuery-style traversal over the parsed HTML tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docqa"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// headingSelector matches every heading level a question can come from.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// Extractor pairs headings with the paragraphs that follow them.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns its question/answer records and hrefs.
//
// For each heading, in document order, the question is the text of the
// first link inside the heading, or the heading's own text when it has no
// link. The answer is the text of every <p> among the heading's following
// siblings, up to the next heading sibling, joined by newlines. Only
// siblings are walked: paragraphs nested deeper are not part of the answer.
func (e *Extractor) Extract(pageURL, html string) (*docqa.Extraction, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docqa.Errorf(docqa.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docqa.Errorf(docqa.EINVALID, "failed to parse HTML: %v", err)
	}

	return &docqa.Extraction{
		Records: extractRecords(pageURL, doc),
		Hrefs:   extractHrefs(doc),
	}, nil
}

func extractRecords(pageURL string, doc *goquery.Document) []docqa.Record {
	var records []docqa.Record

	doc.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		question := questionText(heading)
		if question == "" {
			return
		}

		answer := answerText(heading)
		if answer == "" {
			return
		}

		records = append(records, docqa.Record{
			SourceURL: pageURL,
			Question:  question,
			Answer:    answer,
		})
	})

	return records
}

// questionText returns the text of the heading's first link, or the
// heading's own text when it has no link.
func questionText(heading *goquery.Selection) string {
	if link := heading.Find("a").First(); link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return strings.TrimSpace(heading.Text())
}

func answerText(heading *goquery.Selection) string {
	var paragraphs []string

	heading.NextAll().EachWithBreak(func(_ int, sibling *goquery.Selection) bool {
		if sibling.Is(headingSelector) {
			return false
		}
		if goquery.NodeName(sibling) == "p" {
			if text := strings.TrimSpace(sibling.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
		return true
	})

	return strings.Join(paragraphs, "\n")
}

func extractHrefs(doc *goquery.Document) []string {
	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}
		hrefs = append(hrefs, href)
	})
	return hrefs
}
