package analysis

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []Row {
	return []Row{
		{Domain: "github.com", Seconds: 301, Minutes: 301.0 / 60, Hours: 301.0 / 3600, Days: 301.0 / 86400},
		{Domain: "stackoverflow.com", Seconds: 0, Minutes: 0, Hours: 0, Days: 0},
	}
}

func TestWriteRows_CSVHeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, sampleRows(), FormatCSV, GroupBy{Host: ByDomain})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"domain", "time_spent_s", "time_spent_m", "time_spent_h", "time_spent_d"}, records[0])
	assert.Equal(t, "github.com", records[1][0])
	assert.Equal(t, "301", records[1][1])
	assert.Equal(t, "stackoverflow.com", records[2][0])
	assert.Equal(t, "0", records[2][1])
}

func TestWriteRows_MonthColumnsComeFirst(t *testing.T) {
	rows := []Row{{Domain: "github.com", Year: 2024, Month: time.March, Seconds: 60, Minutes: 1, Hours: 60.0 / 3600, Days: 60.0 / 86400}}

	var buf bytes.Buffer
	err := WriteRows(&buf, rows, FormatCSV, GroupBy{Host: ByDomain, Month: true})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"year", "month", "domain", "time_spent_s", "time_spent_m", "time_spent_h", "time_spent_d"}, records[0])
	assert.Equal(t, []string{"2024", "3", "github.com", "60", "1"}, records[1][:5])
}

func TestWriteRows_TSVUsesTabs(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, sampleRows(), FormatTSV, GroupBy{Host: ByDomain})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "domain\ttime_spent_s\ttime_spent_m\ttime_spent_h\ttime_spent_d", lines[0])
}

func TestWriteRows_ConsoleTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, sampleRows(), FormatConsole, GroupBy{Host: ByDomain})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "domain")
	assert.Contains(t, out, "github.com")
	assert.Contains(t, out, "time_spent_s")
}

func TestWriteRows_ConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, nil, FormatConsole, GroupBy{Host: ByDomain})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results.")
}

func TestExportFile_WritesNamedArtifact(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportFile(dir, sampleRows(), FormatCSV, GroupBy{Host: ByDomain})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "github.com")
}

func TestExportFile_ConsoleIsRejected(t *testing.T) {
	_, err := ExportFile(t.TempDir(), sampleRows(), FormatConsole, GroupBy{Host: ByDomain})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"csv", "tsv", "console"} {
		f, err := ParseFormat(ok)
		require.NoError(t, err)
		assert.Equal(t, Format(ok), f)
	}

	_, err := ParseFormat("xls")
	assert.Error(t, err)
}
