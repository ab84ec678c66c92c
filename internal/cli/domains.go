package cli

import (
	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/config"
)

// Execute implements the go-flags Commander interface for DomainsCommand.
func (c *DomainsCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	analyzer, _, err := buildAnalyzer(cfg, c.globals, c.Cap, c.Policy)
	if err != nil {
		return err
	}

	return c.executeWithAnalyzer(analyzer, cfg)
}

// executeWithAnalyzer runs the report against a provided analyzer (for testing).
func (c *DomainsCommand) executeWithAnalyzer(analyzer *analysis.Analyzer, cfg *config.Config) error {
	start, end, err := dateRange(c.From, c.To)
	if err != nil {
		return err
	}

	group := analysis.GroupBy{Host: analysis.ByDomain, Month: c.ByMonth}
	if c.GroupBy == "subdomain" {
		group.Host = analysis.ByFullHost
	}

	rows := analyzer.TimeByDomain(analysis.Query{
		Domains:      c.Domain,
		Hosts:        c.Subdomain,
		GroupBy:      group.Host,
		IncludeMonth: c.ByMonth,
		Start:        start,
		End:          end,
	})

	if c.globals != nil && c.globals.JSON && c.Export == "console" {
		return printRowsJSON(rows, group)
	}
	return emitRows(rows, c.Export, cfg.Export.Dir, group)
}
