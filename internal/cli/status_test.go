package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/dwell/internal/history"
)

func TestStatusCommand_Human(t *testing.T) {
	cmd := &StatusCommand{Top: 10, version: "test"}
	stats := history.LoadStats{Loaded: 3, Dropped: 1}

	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithAnalyzer(testAnalyzer(t), stats))
	})

	assert.Contains(t, out, "Events:    3")
	assert.Contains(t, out, "Dropped:   1")
	assert.Contains(t, out, "Oldest:    2024-03-01")
	assert.Contains(t, out, "github.com")
}

func TestStatusCommand_TopLimit(t *testing.T) {
	cmd := &StatusCommand{Top: 1, version: "test"}

	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithAnalyzer(testAnalyzer(t), history.LoadStats{Loaded: 3}))
	})

	assert.Contains(t, out, "github.com")
	assert.NotContains(t, out, "stackoverflow.com")
}

func TestStatusCommand_JSON(t *testing.T) {
	cmd := &StatusCommand{
		Top:     10,
		version: "1.0.0",
		globals: &GlobalFlags{JSON: true},
	}
	stats := history.LoadStats{Loaded: 3, Dropped: 2}

	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithAnalyzer(testAnalyzer(t), stats))
	})

	var parsed struct {
		Version        string `json:"version"`
		EventsLoaded   int    `json:"events_loaded"`
		RecordsDropped int    `json:"records_dropped"`
		OldestEvent    string `json:"oldest_event"`
		TopDomains     []struct {
			Domain string  `json:"domain"`
			Hours  float64 `json:"time_spent_h"`
		} `json:"top_domains"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, "1.0.0", parsed.Version)
	assert.Equal(t, 3, parsed.EventsLoaded)
	assert.Equal(t, 2, parsed.RecordsDropped)
	assert.Equal(t, "2024-03-01T12:00:00Z", parsed.OldestEvent)
	require.NotEmpty(t, parsed.TopDomains)
	assert.Equal(t, "github.com", parsed.TopDomains[0].Domain)
}
