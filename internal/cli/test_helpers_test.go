package cli

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/dwell/internal/analysis"
	"github.com/runnerr0/dwell/internal/history"
	"github.com/runnerr0/dwell/internal/urlinfo"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

var testT0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testVisit builds a VisitEvent with decomposed host fields.
func testVisit(t *testing.T, ts time.Time, rawURL string) history.VisitEvent {
	t.Helper()
	info, err := urlinfo.Decompose(rawURL)
	require.NoError(t, err)
	return history.VisitEvent{
		Timestamp:         ts,
		URL:               rawURL,
		RegistrableDomain: info.RegistrableDomain,
		FullHost:          info.FullHost,
	}
}

// testAnalyzer builds an Analyzer with a fixed-seed random source over the
// standard three-event fixture: github at t=0 and t=300, stackoverflow at
// t=301.
func testAnalyzer(t *testing.T) *analysis.Analyzer {
	t.Helper()
	events := []history.VisitEvent{
		testVisit(t, testT0, "https://github.com/a"),
		testVisit(t, testT0.Add(300*time.Second), "https://github.com/b"),
		testVisit(t, testT0.Add(301*time.Second), "https://stackoverflow.com/q"),
	}
	return analysis.New(events, analysis.InferOptions{}, rand.New(rand.NewSource(7)))
}
