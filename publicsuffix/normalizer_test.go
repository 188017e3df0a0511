package publicsuffix_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/publicsuffix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"bare domain", "https://example.com/docs", "example.com"},
		{"subdomain", "https://docs.example.com/intro", "example.com"},
		{"nested subdomain", "https://a.b.docs.example.com", "example.com"},
		{"multi-label suffix", "https://docs.example.co.uk/page", "example.co.uk"},
		{"uppercase host", "https://Docs.Example.COM/", "example.com"},
		{"port is ignored", "http://docs.example.com:8080/x", "example.com"},
		{"ip host", "http://127.0.0.1:8080/docs", "127.0.0.1"},
		{"single label host", "http://localhost:3000/docs", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := publicsuffix.RootDomain(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative URL has no root domain", func(t *testing.T) {
		t.Parallel()

		_, err := publicsuffix.RootDomain("/docs/intro")
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	})

	t.Run("public suffix alone has no root domain", func(t *testing.T) {
		t.Parallel()

		_, err := publicsuffix.RootDomain("https://co.uk/")
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	})

	t.Run("unparseable URL", func(t *testing.T) {
		t.Parallel()

		_, err := publicsuffix.RootDomain("http://[::1")
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	const base = "https://docs.example.com/guide/start"

	tests := []struct {
		name string
		href string
		want string
	}{
		{"absolute URL", "https://docs.example.com/api", "https://docs.example.com/api"},
		{"root-relative", "/api/users", "https://docs.example.com/api/users"},
		{"document-relative", "install", "https://docs.example.com/guide/install"},
		{"parent-relative", "../faq", "https://docs.example.com/faq"},
		{"strips fragment", "/api#section-2", "https://docs.example.com/api"},
		{"strips query", "/search?q=cfd&page=2", "https://docs.example.com/search"},
		{"strips query and fragment", "/api?x=1#top", "https://docs.example.com/api"},
		{"fragment only resolves to base", "#top", "https://docs.example.com/guide/start"},
		{"lowercases host", "https://DOCS.Example.com/API", "https://docs.example.com/API"},
		{"other site is still normalized", "https://other.org/x?y#z", "https://other.org/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := publicsuffix.Normalize(base, tt.href)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		for _, href := range []string{"mailto:team@example.com", "javascript:void(0)", "ftp://example.com/file"} {
			_, err := publicsuffix.Normalize(base, href)
			assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err), href)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		hrefs := []string{
			"/api?x=1#top",
			"../faq",
			"https://DOCS.example.com/a/b/../c?d#e",
			"page%20two.html",
			"/",
		}
		for _, href := range hrefs {
			once, err := publicsuffix.Normalize(base, href)
			require.NoError(t, err)
			twice, err := publicsuffix.Normalize(base, once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, href)
		}
	})
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	t.Run("subdomains share a root domain", func(t *testing.T) {
		t.Parallel()

		assert.True(t, publicsuffix.SameSite("https://example.com", "https://docs.example.com/a"))
		assert.True(t, publicsuffix.SameSite("https://docs.example.com", "https://blog.example.com/b"))
		assert.True(t, publicsuffix.SameSite("https://docs.example.com", "http://example.com"))
	})

	t.Run("different root domains", func(t *testing.T) {
		t.Parallel()

		assert.False(t, publicsuffix.SameSite("https://example.com", "https://example.org"))
		assert.False(t, publicsuffix.SameSite("https://example.co.uk", "https://other.co.uk"))
	})

	t.Run("unresolvable candidate is not same site", func(t *testing.T) {
		t.Parallel()

		assert.False(t, publicsuffix.SameSite("https://example.com", "/relative"))
		assert.False(t, publicsuffix.SameSite("https://example.com", "mailto:x@example.com"))
		assert.False(t, publicsuffix.SameSite("/relative", "https://example.com"))
	})

	t.Run("normalizer delegates to functions", func(t *testing.T) {
		t.Parallel()

		n := publicsuffix.NewNormalizer()
		got, err := n.Normalize("https://example.com/", "/a#b")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", got)
		assert.True(t, n.SameSite("https://example.com", got))
	})
}
