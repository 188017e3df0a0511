// Package docqa harvests question/answer pairs from documentation sites.
// It crawls a site's link graph breadth-first, pairs each heading with the
// paragraphs that follow it, and cleans the harvested pairs into a
// deduplicated training dataset.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, publicsuffix/, sqlite/).
package docqa
