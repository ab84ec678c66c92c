package cli

import (
	"fmt"
	"math/rand"

	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/config"
	"github.com/runnerr0/dwell/internal/history"
)

// Execute implements the go-flags Commander interface for RandomCommand.
func (c *RandomCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	events, _, err := loadEvents(cfg, c.globals)
	if err != nil {
		return err
	}

	// The random source only decides which domain gets picked; everything
	// downstream is the same deterministic report.
	analyzer := buildRandomAnalyzer(events, cfg, seededRand(c.Seed))
	return c.executeWithAnalyzer(analyzer, cfg)
}

// seededRand returns a deterministic source for an explicit --seed value
// (zero included) and nil when the flag was not given, letting the analyzer
// fall back to time-seeding.
func seededRand(seed *int64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*seed))
}

func buildRandomAnalyzer(events []history.VisitEvent, cfg *config.Config, rng *rand.Rand) *analysis.Analyzer {
	return analysis.New(events, inferOptions(cfg, -1, ""), rng)
}

// executeWithAnalyzer runs the report against a provided analyzer (for testing).
func (c *RandomCommand) executeWithAnalyzer(analyzer *analysis.Analyzer, cfg *config.Config) error {
	domain, rows := analyzer.TimeByRandomDomain(analysis.Query{IncludeMonth: c.ByMonth})
	if domain == "" {
		fmt.Println("History is empty; nothing to pick from.")
		return nil
	}

	group := analysis.GroupBy{Host: analysis.ByDomain, Month: c.ByMonth}

	if c.Export == "console" {
		fmt.Printf("Random domain: %s\n\n", domain)
		if c.globals != nil && c.globals.JSON {
			return printRowsJSON(rows, group)
		}
	}
	return emitRows(rows, c.Export, cfg.Export.Dir, group)
}
