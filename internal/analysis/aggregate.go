package analysis

import (
	"sort"
	"time"
)

// HostGranularity selects which host field rows group on.
type HostGranularity string

const (
	// ByDomain groups on the registrable domain (mail.google.com → google.com).
	ByDomain HostGranularity = "domain"
	// ByFullHost groups on the full subdomain-qualified host.
	ByFullHost HostGranularity = "subdomain"
)

// GroupBy selects the key fields for aggregation. Month grouping always
// includes the year; the two are never split.
type GroupBy struct {
	Host  HostGranularity
	Month bool
}

// Filter restricts which events contribute to an aggregation. Filtering
// happens before grouping, so excluded events never reach any sum. Zero
// values mean no restriction; date bounds are inclusive.
type Filter struct {
	Domains []string // registrable-domain allow-list
	Hosts   []string // full-host allow-list
	Start   time.Time
	End     time.Time
}

func (f Filter) matches(e AnnotatedEvent) bool {
	if len(f.Domains) > 0 && !contains(f.Domains, e.RegistrableDomain) {
		return false
	}
	if len(f.Hosts) > 0 && !contains(f.Hosts, e.FullHost) {
		return false
	}
	if !f.Start.IsZero() && e.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && e.Timestamp.After(f.End) {
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Row is one group-by result. Minutes, Hours, and Days are derived from
// Seconds, never stored independently.
type Row struct {
	Domain  string
	Year    int        // zero unless grouped by month
	Month   time.Month // zero unless grouped by month
	Seconds float64
	Minutes float64
	Hours   float64
	Days    float64
}

type rowKey struct {
	domain string
	year   int
	month  time.Month
}

// Aggregate reduces annotated events into per-key dwell-time sums. Rows come
// back in a deterministic order: (year, month) ascending when month grouping
// is on, then seconds descending, then domain ascending as the tiebreak.
// Zero-sum rows are retained; an empty or fully filtered input yields an
// empty result.
func Aggregate(events []AnnotatedEvent, group GroupBy, filter Filter) []Row {
	if group.Host == "" {
		group.Host = ByDomain
	}

	sums := make(map[rowKey]float64)
	for _, e := range events {
		if !filter.matches(e) {
			continue
		}

		key := rowKey{domain: e.RegistrableDomain}
		if group.Host == ByFullHost {
			key.domain = e.FullHost
		}
		if group.Month {
			key.year = e.Year()
			key.month = e.Month()
		}
		sums[key] += e.Seconds
	}

	rows := make([]Row, 0, len(sums))
	for key, sec := range sums {
		rows = append(rows, Row{
			Domain:  key.domain,
			Year:    key.year,
			Month:   key.month,
			Seconds: sec,
			Minutes: sec / 60,
			Hours:   sec / 3600,
			Days:    sec / 86400,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Seconds != b.Seconds {
			return a.Seconds > b.Seconds
		}
		return a.Domain < b.Domain
	})

	return rows
}
