package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/dwell/internal/urlinfo"
)

// takeoutFile mirrors the shape of a Google Takeout BrowserHistory.json.
type takeoutFile struct {
	BrowserHistory []takeoutRecord `json:"Browser History"`
}

// takeoutRecord is one raw history entry. Extra fields in the export are
// ignored; only the timestamp and URL are required.
type takeoutRecord struct {
	TimeUsec       int64  `json:"time_usec"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	PageTransition string `json:"page_transition"`
}

// LoadTakeout reads a Google Takeout browser-history export and returns its
// usable records as a time-ordered event sequence. Individual records that
// lack a valid timestamp or URL are dropped and counted in LoadStats; an
// unreadable or structurally invalid file is the one fatal error.
func LoadTakeout(path string, opts Options) ([]VisitEvent, LoadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("reading history file: %w", err)
	}

	var file takeoutFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, LoadStats{}, fmt.Errorf("parsing history file %s: %w", path, err)
	}
	if file.BrowserHistory == nil {
		return nil, LoadStats{}, fmt.Errorf("history file %s has no \"Browser History\" key", path)
	}

	var stats LoadStats
	events := make([]VisitEvent, 0, len(file.BrowserHistory))

	for _, rec := range file.BrowserHistory {
		event, ok := recordToEvent(rec, opts)
		if !ok {
			stats.Dropped++
			continue
		}
		events = append(events, event)
	}

	sortEvents(events)
	stats.Loaded = len(events)
	return events, stats, nil
}

// recordToEvent converts a raw Takeout record into a VisitEvent, reporting
// false when the record should be dropped.
func recordToEvent(rec takeoutRecord, opts Options) (VisitEvent, bool) {
	if rec.TimeUsec <= 0 || rec.URL == "" {
		return VisitEvent{}, false
	}

	info, err := urlinfo.Decompose(rec.URL)
	if err != nil {
		return VisitEvent{}, false
	}
	if opts.denylisted(info.RegistrableDomain, info.FullHost) {
		return VisitEvent{}, false
	}

	return VisitEvent{
		Timestamp:         microsToTime(rec.TimeUsec),
		URL:               rec.URL,
		Title:             rec.Title,
		RegistrableDomain: info.RegistrableDomain,
		FullHost:          info.FullHost,
	}, true
}

// microsToTime converts microseconds since the Unix epoch to a UTC time.
func microsToTime(usec int64) time.Time {
	return time.UnixMicro(usec).UTC()
}
