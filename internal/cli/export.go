package cli

import (
	"fmt"

	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/config"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	analyzer, _, err := buildAnalyzer(cfg, c.globals, -1, "")
	if err != nil {
		return err
	}

	return c.executeWithAnalyzer(analyzer, cfg)
}

// executeWithAnalyzer runs the export against a provided analyzer (for testing).
func (c *ExportCommand) executeWithAnalyzer(analyzer *analysis.Analyzer, cfg *config.Config) error {
	formatFlag := c.Format
	if formatFlag == "" {
		formatFlag = cfg.Export.Format
	}
	format, err := analysis.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if format == analysis.FormatConsole {
		return fmt.Errorf("export writes a file; use csv or tsv")
	}

	dir := c.Dir
	if dir == "" {
		dir = cfg.Export.Dir
	}

	rows := analyzer.ExportRows()
	group := analysis.GroupBy{Host: analysis.ByFullHost, Month: true}

	path, err := analysis.ExportFile(dir, rows, format, group)
	if err != nil {
		return err
	}

	fmt.Printf("exported %d rows to %s\n", len(rows), path)
	return nil
}
