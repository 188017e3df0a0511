// Package publicsuffix implements docqa.LinkNormalizer on top of the
// public suffix list, so that docs.example.com and example.com are
// treated as one site while example.co.uk and other.co.uk are not.
package publicsuffix

import (
	"net"
	"net/url"
	"strings"

	"github.com/fwojciec/docqa"
	"golang.org/x/net/publicsuffix"
)

// Ensure Normalizer implements docqa.LinkNormalizer at compile time.
var _ docqa.LinkNormalizer = (*Normalizer)(nil)

// Normalizer canonicalizes URLs and compares them by root domain.
// It has no state and is safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize resolves href against baseURL, lowercases the host and strips
// the fragment and query string. Only http and https URLs are accepted.
func (n *Normalizer) Normalize(baseURL, href string) (string, error) {
	return Normalize(baseURL, href)
}

// SameSite reports whether candidateURL has the same root domain as baseURL.
func (n *Normalizer) SameSite(baseURL, candidateURL string) bool {
	return SameSite(baseURL, candidateURL)
}

// Normalize is the function form of Normalizer.Normalize.
func Normalize(baseURL, href string) (string, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", docqa.Errorf(docqa.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", docqa.Errorf(docqa.EINVALID, "invalid URL %q: %v", href, err)
	}

	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", docqa.Errorf(docqa.EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", docqa.Errorf(docqa.EINVALID, "URL %q has no host", u.String())
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	u.RawQuery = ""
	u.ForceQuery = false

	return u.String(), nil
}

// SameSite is the function form of Normalizer.SameSite.
// Any URL whose root domain cannot be determined is not the same site.
func SameSite(baseURL, candidateURL string) bool {
	baseRoot, err := RootDomain(baseURL)
	if err != nil {
		return false
	}
	candidateRoot, err := RootDomain(candidateURL)
	if err != nil {
		return false
	}
	return baseRoot == candidateRoot
}

// RootDomain returns the registrable domain of rawURL: the public suffix
// plus one label (docs.example.com → example.com). IP hosts and
// single-label hosts such as localhost are returned unchanged since they
// have no registrable domain.
func RootDomain(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", docqa.Errorf(docqa.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", docqa.Errorf(docqa.EINVALID, "URL %q has no host", rawURL)
	}

	if net.ParseIP(host) != nil || !strings.Contains(host, ".") {
		return host, nil
	}

	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", docqa.Errorf(docqa.EINVALID, "no root domain for %q: %v", host, err)
	}
	return root, nil
}
