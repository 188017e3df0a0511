package docqa

// LinkNormalizer canonicalizes discovered URLs and decides whether they
// belong to the site being crawled.
type LinkNormalizer interface {
	// Normalize resolves href against baseURL and strips the fragment
	// and query string.
	Normalize(baseURL, href string) (string, error)

	// SameSite reports whether candidateURL shares baseURL's root domain.
	// URLs without a resolvable root domain are never the same site.
	SameSite(baseURL, candidateURL string) bool
}
