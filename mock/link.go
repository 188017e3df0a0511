package mock

import "github.com/fwojciec/docqa"

var _ docqa.LinkNormalizer = (*LinkNormalizer)(nil)

// LinkNormalizer is a mock implementation of docqa.LinkNormalizer.
type LinkNormalizer struct {
	NormalizeFn func(baseURL, href string) (string, error)
	SameSiteFn  func(baseURL, candidateURL string) bool
}

func (n *LinkNormalizer) Normalize(baseURL, href string) (string, error) {
	return n.NormalizeFn(baseURL, href)
}

func (n *LinkNormalizer) SameSite(baseURL, candidateURL string) bool {
	return n.SameSiteFn(baseURL, candidateURL)
}
