package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/config"
	"github.com/runnerr0/dwell/internal/history"
)

// resolveConfig loads the config named by --config, or the default config
// (creating it on first run).
func resolveConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// loadEvents reads the history export selected by flags and config.
func loadEvents(cfg *config.Config, globals *GlobalFlags) ([]history.VisitEvent, history.LoadStats, error) {
	path := cfg.Input.HistoryPath
	format := cfg.Input.Format
	if globals != nil {
		if globals.Input != "" {
			path = globals.Input
		}
		if globals.Format != "" {
			format = globals.Format
		}
	}

	opts := history.Options{DenylistDomains: cfg.Analysis.DenylistDomains}

	switch format {
	case "takeout", "":
		return history.LoadTakeout(path, opts)
	case "chrome":
		return history.LoadChrome(path, opts)
	default:
		return nil, history.LoadStats{}, fmt.Errorf("unknown input format %q (use takeout or chrome)", format)
	}
}

// inferOptions merges config defaults with per-command overrides. A cap of
// -1 means "no flag given"; the config value applies.
func inferOptions(cfg *config.Config, capFlag float64, policyFlag string) analysis.InferOptions {
	opts := analysis.InferOptions{
		Policy:     analysis.Policy(cfg.Analysis.Policy),
		CapSeconds: cfg.Analysis.CapSeconds,
	}
	if capFlag >= 0 {
		opts.CapSeconds = capFlag
	}
	if policyFlag != "" {
		opts.Policy = analysis.Policy(policyFlag)
	}
	return opts
}

// buildAnalyzer loads the history and constructs an Analyzer over it,
// reporting load stats to stderr when --verbose is set.
func buildAnalyzer(cfg *config.Config, globals *GlobalFlags, capFlag float64, policyFlag string) (*analysis.Analyzer, history.LoadStats, error) {
	events, stats, err := loadEvents(cfg, globals)
	if err != nil {
		return nil, stats, err
	}

	if globals != nil && globals.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %d events, dropped %d records\n", stats.Loaded, stats.Dropped)
	}

	return analysis.New(events, inferOptions(cfg, capFlag, policyFlag), nil), stats, nil
}

// parseDate parses an inclusive date bound, accepting a plain date or a
// date with time.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
}

// dateRange parses optional --from/--to flags into filter bounds. An empty
// flag leaves its bound open.
func dateRange(from, to string) (start, end time.Time, err error) {
	if from != "" {
		start, err = parseDate(from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
		}
	}
	if to != "" {
		end, err = parseDate(to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
		}
		// A bare date means "through the end of that day".
		if len(to) == len("2006-01-02") {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return start, end, nil
}

// emitRows writes rows to stdout (console) or to an export file, printing
// the artifact path in the latter case.
func emitRows(rows []analysis.Row, formatFlag, exportDir string, group analysis.GroupBy) error {
	format, err := analysis.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	if format == analysis.FormatConsole {
		return analysis.WriteRows(os.Stdout, rows, format, group)
	}

	path, err := analysis.ExportFile(exportDir, rows, format, group)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d rows to %s\n", len(rows), path)
	return nil
}
