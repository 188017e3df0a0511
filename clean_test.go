package docqa_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("drops answers at or below the minimum length", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "Q", Answer: "short"},
			{SourceURL: "https://example.com/a", Question: "Q", Answer: "a sufficiently long answer text here"},
		}

		cleaned := docqa.Clean(records)

		require.Len(t, cleaned, 1)
		assert.Equal(t, "q", cleaned[0].Question)
		assert.Equal(t, "a sufficiently long answer text here", cleaned[0].Answer)
	})

	t.Run("answer of exactly twenty characters is dropped", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "q", Answer: "12345678901234567890"},
			{SourceURL: "https://example.com/a", Question: "q", Answer: "123456789012345678901"},
		}

		cleaned := docqa.Clean(records)

		require.Len(t, cleaned, 1)
		assert.Equal(t, "123456789012345678901", cleaned[0].Answer)
	})

	t.Run("length is measured after trimming", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "q", Answer: "     only fifteen chr     "},
		}

		assert.Empty(t, docqa.Clean(records))
	})

	t.Run("keeps exactly one of identical rows", func(t *testing.T) {
		t.Parallel()

		row := docqa.Record{SourceURL: "https://example.com/1", Question: "q1", Answer: "same long answer text over twenty chars"}

		cleaned := docqa.Clean([]docqa.Record{row, row})

		assert.Equal(t, []docqa.Record{row}, cleaned)
	})

	t.Run("deduplicates after normalization keeping the first source", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/first", Question: "What is CFD?", Answer: "Computational Fluid Dynamics."},
			{SourceURL: "https://example.com/second", Question: "  what is cfd?  ", Answer: "COMPUTATIONAL FLUID DYNAMICS.\n"},
		}

		cleaned := docqa.Clean(records)

		require.Len(t, cleaned, 1)
		assert.Equal(t, "https://example.com/first", cleaned[0].SourceURL)
		assert.Equal(t, "what is cfd?", cleaned[0].Question)
		assert.Equal(t, "computational fluid dynamics.", cleaned[0].Answer)
	})

	t.Run("same question with different answers is kept", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "install", Answer: "run the installer from the website"},
			{SourceURL: "https://example.com/b", Question: "install", Answer: "use the package manager of your distro"},
		}

		assert.Len(t, docqa.Clean(records), 2)
	})

	t.Run("drops empty questions and answers", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "   ", Answer: "an answer that is long enough to keep"},
			{SourceURL: "https://example.com/a", Question: "question", Answer: ""},
		}

		assert.Empty(t, docqa.Clean(records))
	})

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "b", Answer: "second answer, long enough to keep"},
			{SourceURL: "https://example.com/a", Question: "a", Answer: "first answer, long enough to keep"},
		}

		cleaned := docqa.Clean(records)

		require.Len(t, cleaned, 2)
		assert.Equal(t, "b", cleaned[0].Question)
		assert.Equal(t, "a", cleaned[1].Question)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "UPPER", Answer: "  An Answer That Is Long Enough  "},
		}

		_ = docqa.Clean(records)

		assert.Equal(t, "UPPER", records[0].Question)
		assert.Equal(t, "  An Answer That Is Long Enough  ", records[0].Answer)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: " Q1 ", Answer: "  The First Answer Is Long Enough  "},
			{SourceURL: "https://example.com/b", Question: "q1", Answer: "the first answer is long enough"},
			{SourceURL: "https://example.com/c", Question: "Q2", Answer: "tiny"},
			{SourceURL: "https://example.com/d", Question: "Q3", Answer: "Ünïcödé answers are lowercased too"},
		}

		once := docqa.Clean(records)
		twice := docqa.Clean(once)

		assert.Equal(t, once, twice)
	})

	t.Run("returns empty slice for empty input", func(t *testing.T) {
		t.Parallel()

		cleaned := docqa.Clean(nil)

		assert.NotNil(t, cleaned)
		assert.Empty(t, cleaned)
	})
}

func TestCleanWithStats(t *testing.T) {
	t.Parallel()

	records := []docqa.Record{
		{SourceURL: "https://example.com/a", Question: "", Answer: "an answer that is long enough"},
		{SourceURL: "https://example.com/a", Question: "q", Answer: "short"},
		{SourceURL: "https://example.com/a", Question: "q", Answer: "an answer that is long enough"},
		{SourceURL: "https://example.com/b", Question: "Q", Answer: "An answer that is long enough"},
	}

	cleaned, stats := docqa.CleanWithStats(records)

	assert.Len(t, cleaned, 1)
	assert.Equal(t, docqa.CleanStats{
		Input:      4,
		Invalid:    1,
		TooShort:   1,
		Duplicates: 1,
		Output:     1,
	}, stats)
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()

		r := docqa.Record{SourceURL: "https://example.com", Question: "q", Answer: "a"}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing fields are invalid", func(t *testing.T) {
		t.Parallel()

		for _, r := range []docqa.Record{
			{Question: "q", Answer: "a"},
			{SourceURL: "https://example.com", Answer: "a"},
			{SourceURL: "https://example.com", Question: "q"},
		} {
			assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(r.Validate()))
		}
	})
}
