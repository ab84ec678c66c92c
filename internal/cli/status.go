package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/history"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version        string          `json:"version"`
	EventsLoaded   int             `json:"events_loaded"`
	RecordsDropped int             `json:"records_dropped"`
	OldestEvent    string          `json:"oldest_event,omitempty"`
	NewestEvent    string          `json:"newest_event,omitempty"`
	TopDomains     []domainTimeRow `json:"top_domains"`
}

type domainTimeRow struct {
	Domain string  `json:"domain"`
	Hours  float64 `json:"time_spent_h"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	analyzer, stats, err := buildAnalyzer(cfg, c.globals, -1, "")
	if err != nil {
		return err
	}

	return c.executeWithAnalyzer(analyzer, stats)
}

// executeWithAnalyzer runs status against a provided analyzer (for testing).
func (c *StatusCommand) executeWithAnalyzer(analyzer *analysis.Analyzer, stats history.LoadStats) error {
	top := analyzer.TimeByDomain(analysis.Query{})
	if c.Top > 0 && len(top) > c.Top {
		top = top[:c.Top]
	}

	if c.globals != nil && c.globals.JSON {
		return c.printStatusJSON(analyzer, stats, top)
	}
	return c.printStatusHuman(analyzer, stats, top)
}

func (c *StatusCommand) printStatusHuman(analyzer *analysis.Analyzer, stats history.LoadStats, top []analysis.Row) error {
	fmt.Println("Dwell Status")
	fmt.Println("============")
	fmt.Printf("Version:   %s\n", c.version)
	fmt.Printf("Events:    %d\n", stats.Loaded)
	fmt.Printf("Dropped:   %d\n", stats.Dropped)

	first, last := analyzer.Span()
	if !first.IsZero() {
		fmt.Printf("Oldest:    %s\n", first.Format("2006-01-02"))
		fmt.Printf("Newest:    %s\n", last.Format("2006-01-02"))
	}

	if len(top) > 0 {
		fmt.Println()
		fmt.Println("Top domains by time spent:")
		for _, r := range top {
			fmt.Printf("  %-30s %8.2f h\n", r.Domain, r.Hours)
		}
	}

	return nil
}

func (c *StatusCommand) printStatusJSON(analyzer *analysis.Analyzer, stats history.LoadStats, top []analysis.Row) error {
	out := statusJSON{
		Version:        c.version,
		EventsLoaded:   stats.Loaded,
		RecordsDropped: stats.Dropped,
		TopDomains:     make([]domainTimeRow, len(top)),
	}

	first, last := analyzer.Span()
	if !first.IsZero() {
		out.OldestEvent = first.UTC().Format(time.RFC3339)
		out.NewestEvent = last.UTC().Format(time.RFC3339)
	}

	for i, r := range top {
		out.TopDomains[i] = domainTimeRow{Domain: r.Domain, Hours: r.Hours}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printRowsJSON renders aggregation rows as JSON for the --json flag.
func printRowsJSON(rows []analysis.Row, group analysis.GroupBy) error {
	type jsonRow struct {
		Domain  string  `json:"domain"`
		Year    int     `json:"year,omitempty"`
		Month   int     `json:"month,omitempty"`
		Seconds float64 `json:"time_spent_s"`
		Minutes float64 `json:"time_spent_m"`
		Hours   float64 `json:"time_spent_h"`
		Days    float64 `json:"time_spent_d"`
	}

	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{
			Domain:  r.Domain,
			Seconds: r.Seconds,
			Minutes: r.Minutes,
			Hours:   r.Hours,
			Days:    r.Days,
		}
		if group.Month {
			out[i].Year = r.Year
			out[i].Month = int(r.Month)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
