// Package urlinfo decomposes URLs into the host fields used for grouping:
// the registrable domain (eTLD+1) and the full subdomain-qualified host.
package urlinfo

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Info holds the decomposed parts of a URL.
type Info struct {
	RegistrableDomain string // e.g. "google.com"
	FullHost          string // e.g. "mail.google.com"
	Path              string
}

// Decompose splits a URL into its registrable domain, full host, and path.
// It returns an error for URLs without a usable host (chrome:// pages,
// about: pages, empty strings, malformed input); callers drop such records.
func Decompose(rawURL string) (Info, error) {
	if rawURL == "" {
		return Info{}, fmt.Errorf("empty URL")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Info{}, fmt.Errorf("parse URL %q: %w", rawURL, err)
	}

	// Browser-internal schemes like chrome:// parse with a hostname
	// ("newtab"), so scheme filtering has to happen before the host check.
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return Info{}, fmt.Errorf("non-navigation scheme %q in URL %q", u.Scheme, rawURL)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Info{}, fmt.Errorf("no host in URL %q", rawURL)
	}

	return Info{
		RegistrableDomain: registrableDomain(host),
		FullHost:          host,
		Path:              u.Path,
	}, nil
}

// registrableDomain returns the eTLD+1 for a host. Hosts the public suffix
// list cannot resolve (IP addresses, intranet names, localhost) fall back to
// the host itself so their events still group under something stable.
func registrableDomain(host string) string {
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
