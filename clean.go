package docqa

import (
	"strings"
	"unicode/utf8"
)

// MinAnswerLength is the answer length, in characters, that a cleaned
// record must exceed.
const MinAnswerLength = 20

// CleanStats reports how many records each cleaning pass removed.
type CleanStats struct {
	Input      int
	Invalid    int
	TooShort   int
	Duplicates int
	Output     int
}

// Clean normalizes, filters and deduplicates records for training use.
// The input slice is not modified. Clean is idempotent.
func Clean(records []Record) []Record {
	cleaned, _ := CleanWithStats(records)
	return cleaned
}

// CleanWithStats is like Clean but also reports per-pass drop counts.
//
// Passes run in order:
//   - normalize: lowercase and trim question and answer
//   - filter: drop empty questions or answers and answers of
//     MinAnswerLength characters or fewer
//   - deduplicate: keep the first record for each (question, answer)
//   - project: keep only source URL, question and answer
func CleanWithStats(records []Record) ([]Record, CleanStats) {
	stats := CleanStats{Input: len(records)}

	type pair struct{ question, answer string }
	seen := make(map[pair]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for _, r := range records {
		question := normalizeText(r.Question)
		answer := normalizeText(r.Answer)

		if question == "" || answer == "" {
			stats.Invalid++
			continue
		}
		if utf8.RuneCountInString(answer) <= MinAnswerLength {
			stats.TooShort++
			continue
		}

		key := pair{question, answer}
		if _, ok := seen[key]; ok {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		out = append(out, Record{
			SourceURL: r.SourceURL,
			Question:  question,
			Answer:    answer,
		})
	}

	stats.Output = len(out)
	return out, stats
}

func normalizeText(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
