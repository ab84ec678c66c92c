package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// Format selects how aggregation rows are serialized.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatTSV     Format = "tsv"
	FormatConsole Format = "console"
)

// ParseFormat validates an export format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatTSV, FormatConsole:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (use csv, tsv, or console)", s)
	}
}

// WriteRows serializes aggregation rows to w. CSV and TSV get a header row;
// console gets an aligned text table. Column order is the group-key columns
// followed by time_spent_s/m/h/d.
func WriteRows(w io.Writer, rows []Row, format Format, group GroupBy) error {
	switch format {
	case FormatCSV:
		return writeDelimited(w, rows, group, ',')
	case FormatTSV:
		return writeDelimited(w, rows, group, '\t')
	case FormatConsole:
		return writeTable(w, rows, group)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ExportFile writes rows to a new file in dir with a random name, mirroring
// one analysis run producing one artifact. Returns the file path.
func ExportFile(dir string, rows []Row, format Format, group GroupBy) (string, error) {
	if format == FormatConsole {
		return "", fmt.Errorf("console format writes to stdout, not a file")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.%s", uuid.NewString(), format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteRows(f, rows, format, group); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func header(group GroupBy) []string {
	hostCol := "domain"
	if group.Host == ByFullHost {
		hostCol = "subdomain"
	}

	cols := []string{}
	if group.Month {
		cols = append(cols, "year", "month")
	}
	return append(cols, hostCol, "time_spent_s", "time_spent_m", "time_spent_h", "time_spent_d")
}

func rowValues(r Row, group GroupBy) []string {
	vals := []string{}
	if group.Month {
		vals = append(vals, strconv.Itoa(r.Year), strconv.Itoa(int(r.Month)))
	}
	return append(vals,
		r.Domain,
		formatSeconds(r.Seconds),
		formatSeconds(r.Minutes),
		formatSeconds(r.Hours),
		formatSeconds(r.Days),
	)
}

// formatSeconds prints a duration value compactly without trailing zeros.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeDelimited(w io.Writer, rows []Row, group GroupBy, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(header(group)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(rowValues(r, group)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTable renders rows as an aligned console table.
func writeTable(w io.Writer, rows []Row, group GroupBy) error {
	hostCol := "domain"
	if group.Host == ByFullHost {
		hostCol = "subdomain"
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	// Size the host column to its widest value.
	width := len(hostCol)
	for _, r := range rows {
		if len(r.Domain) > width {
			width = len(r.Domain)
		}
	}

	if group.Month {
		fmt.Fprintf(w, "%-6s %-6s %-*s %14s %14s %12s %10s\n",
			"year", "month", width, hostCol, "time_spent_s", "time_spent_m", "time_spent_h", "time_spent_d")
		for _, r := range rows {
			fmt.Fprintf(w, "%-6d %-6d %-*s %14.1f %14.2f %12.2f %10.3f\n",
				r.Year, int(r.Month), width, r.Domain, r.Seconds, r.Minutes, r.Hours, r.Days)
		}
		return nil
	}

	fmt.Fprintf(w, "%-*s %14s %14s %12s %10s\n",
		width, hostCol, "time_spent_s", "time_spent_m", "time_spent_h", "time_spent_d")
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s %14.1f %14.2f %12.2f %10.3f\n",
			width, r.Domain, r.Seconds, r.Minutes, r.Hours, r.Days)
	}
	return nil
}
