package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetFile_WriteDataset(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		records := []docqa.Record{
			{SourceURL: "https://example.com/faq", Question: "What is it?", Answer: "A tool."},
			{SourceURL: "https://example.com/faq", Question: "Why, though?", Answer: "Line one\nline \"two\""},
		}

		err := fs.NewDatasetFile(path).WriteDataset(context.Background(), records)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"url,question,answer\n"+
				"https://example.com/faq,What is it?,A tool.\n"+
				"https://example.com/faq,\"Why, though?\",\"Line one\nline \"\"two\"\"\"\n",
			string(data))
	})

	t.Run("empty dataset writes header only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		err := fs.NewDatasetFile(path).WriteDataset(context.Background(), nil)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "url,question,answer\n", string(data))
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

		err := fs.NewDatasetFile(path).WriteDataset(context.Background(), []docqa.Record{
			{SourceURL: "https://example.com", Question: "q", Answer: "a"},
		})

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "url,question,answer\nhttps://example.com,q,a\n", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "out.csv")

		err := fs.NewDatasetFile(path).WriteDataset(context.Background(), nil)

		require.Error(t, err)
	})
}

func TestDatasetFile_ReadDataset(t *testing.T) {
	t.Parallel()

	t.Run("round trips written records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		records := []docqa.Record{
			{SourceURL: "https://example.com/a", Question: "Q, with comma", Answer: "multi\nline"},
			{SourceURL: "https://example.com/b", Question: "Q2", Answer: "A2"},
		}
		file := fs.NewDatasetFile(path)
		require.NoError(t, file.WriteDataset(context.Background(), records))

		got, err := file.ReadDataset(context.Background())

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("locates columns by name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		content := "extra,Answer,question,url\n" +
			"x,the answer,the question,https://example.com\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		got, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []docqa.Record{
			{SourceURL: "https://example.com", Question: "the question", Answer: "the answer"},
		}, got)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("url,question,answer\n"), 0644))

		got, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("short rows read as empty fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("url,question,answer\nhttps://example.com,q\n"), 0644))

		got, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "", got[0].Answer)
	})

	t.Run("missing column is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("url,question\nhttps://example.com,q\n"), 0644))

		_, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		require.Error(t, err)
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "answer")
	})

	t.Run("empty file is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	})

	t.Run("missing file is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.csv")

		_, err := fs.NewDatasetFile(path).ReadDataset(context.Background())

		assert.Equal(t, docqa.ENOTFOUND, docqa.ErrorCode(err))
	})
}

func TestCleanedPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"with directory", filepath.Join("data", "raw.csv"), filepath.Join("data", "cleaned-raw.csv")},
		{"bare file name", "raw.csv", "cleaned-raw.csv"},
		{"no extension", filepath.Join("data", "raw"), filepath.Join("data", "cleaned-raw")},
		{"multiple dots", "faq.v2.csv", "cleaned-faq.v2.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.CleanedPath(tt.in))
		})
	}
}
