// Package history loads raw browsing-history exports into a time-ordered
// sequence of visit events. Records it cannot use are dropped and counted,
// never fatal; only a whole-input parse failure is surfaced as an error.
package history

import (
	"sort"
	"time"
)

// VisitEvent is one browsing action. Events are created once at load time
// and immutable afterwards.
type VisitEvent struct {
	Timestamp         time.Time
	URL               string
	Title             string
	RegistrableDomain string // e.g. "google.com"
	FullHost          string // e.g. "mail.google.com"
}

// Year returns the calendar year of the event in UTC.
func (e VisitEvent) Year() int {
	return e.Timestamp.UTC().Year()
}

// Month returns the calendar month of the event in UTC.
func (e VisitEvent) Month() time.Month {
	return e.Timestamp.UTC().Month()
}

// LoadStats counts how a load went. Dropped covers records with a missing or
// invalid timestamp or URL, URLs without a usable host, and denylisted
// domains.
type LoadStats struct {
	Loaded  int
	Dropped int
}

// Options control record filtering during a load.
type Options struct {
	// DenylistDomains are domains whose events are dropped. An entry
	// matches either the registrable domain (facebook.com blocks every
	// facebook host) or the full host (l.facebook.com blocks only the
	// redirector).
	DenylistDomains []string
}

func (o Options) denylisted(domain, host string) bool {
	for _, d := range o.DenylistDomains {
		if d == domain || d == host {
			return true
		}
	}
	return false
}

// sortEvents orders events ascending by timestamp. The sort is stable so
// ties between equal timestamps keep their input order, which keeps repeated
// loads of the same file deterministic.
func sortEvents(events []VisitEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
