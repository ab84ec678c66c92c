package analysis

import (
	"math/rand"
	"sort"
	"time"

	"github.com/runnerr0/dwell/internal/history"
)

// Analyzer serves dwell-time queries over one loaded history. The annotated
// sequence is computed once at construction and read-only afterwards, so any
// number of queries can run against it without recomputation.
type Analyzer struct {
	events []AnnotatedEvent
	rng    *rand.Rand
}

// New builds an Analyzer from a time-ordered event sequence. The random
// source only ever influences random-domain selection; pass a fixed-seed
// source for reproducible runs.
func New(events []history.VisitEvent, opts InferOptions, rng *rand.Rand) *Analyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{
		events: Infer(events, opts),
		rng:    rng,
	}
}

// Query names the arguments shared by the analysis presets.
type Query struct {
	Domains      []string // registrable-domain allow-list
	Hosts        []string // full-host allow-list
	GroupBy      HostGranularity
	IncludeMonth bool
	Start        time.Time
	End          time.Time
}

func (q Query) groupBy() GroupBy {
	return GroupBy{Host: q.GroupBy, Month: q.IncludeMonth}
}

func (q Query) filter() Filter {
	return Filter{Domains: q.Domains, Hosts: q.Hosts, Start: q.Start, End: q.End}
}

// TimeByDomain aggregates dwell time per domain (or full host), optionally
// broken down by calendar month.
func (a *Analyzer) TimeByDomain(q Query) []Row {
	return Aggregate(a.events, q.groupBy(), q.filter())
}

// TimeByRandomDomain picks one registrable domain uniformly at random from
// those present and reports on it. Only the pick is random; the report for
// the picked domain is the same TimeByDomain would produce. Returns an empty
// domain and no rows when the history has no events.
func (a *Analyzer) TimeByRandomDomain(q Query) (string, []Row) {
	domains := a.Domains()
	if len(domains) == 0 {
		return "", nil
	}

	pick := domains[a.rng.Intn(len(domains))]
	q.Domains = []string{pick}
	q.Hosts = nil
	return pick, a.TimeByDomain(q)
}

// ExportRows returns the full history at maximal detail: every full host,
// broken down by month, no domain filter.
func (a *Analyzer) ExportRows() []Row {
	return Aggregate(a.events, GroupBy{Host: ByFullHost, Month: true}, Filter{})
}

// Domains returns the distinct registrable domains present, sorted.
func (a *Analyzer) Domains() []string {
	seen := make(map[string]struct{})
	for _, e := range a.events {
		seen[e.RegistrableDomain] = struct{}{}
	}
	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Len returns the number of annotated events.
func (a *Analyzer) Len() int {
	return len(a.events)
}

// Span returns the timestamps of the first and last events. Zero times for
// an empty history.
func (a *Analyzer) Span() (first, last time.Time) {
	if len(a.events) == 0 {
		return time.Time{}, time.Time{}
	}
	return a.events[0].Timestamp, a.events[len(a.events)-1].Timestamp
}
