package history

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/dwell/internal/urlinfo"
)

// Chrome stores visit times as microseconds since 1601-01-01 UTC (the
// Windows FILETIME epoch). This is the offset to the Unix epoch.
const chromeEpochOffsetUsec = 11644473600000000

// LoadChrome reads visit events directly from a Chrome/Chromium History
// sqlite database. The file is opened read-only so a live browser profile
// is safe to point at (though Chrome holds a lock while running; copying
// the file first is the usual workaround). Row-level problems drop the row;
// a missing or unreadable database is fatal.
func LoadChrome(path string, opts Options) ([]VisitEvent, LoadStats, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, LoadStats{}, fmt.Errorf("history database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT v.visit_time, u.url, u.title
		FROM visits v
		JOIN urls u ON u.id = v.url
		ORDER BY v.visit_time
	`)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var stats LoadStats
	var events []VisitEvent

	for rows.Next() {
		var visitTime int64
		var rawURL string
		var title sql.NullString
		if err := rows.Scan(&visitTime, &rawURL, &title); err != nil {
			stats.Dropped++
			continue
		}

		event, ok := chromeRowToEvent(visitTime, rawURL, title.String, opts)
		if !ok {
			stats.Dropped++
			continue
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, LoadStats{}, fmt.Errorf("read visits: %w", err)
	}

	sortEvents(events)
	stats.Loaded = len(events)
	return events, stats, nil
}

func chromeRowToEvent(visitTime int64, rawURL, title string, opts Options) (VisitEvent, bool) {
	usec := visitTime - chromeEpochOffsetUsec
	if usec <= 0 || rawURL == "" {
		return VisitEvent{}, false
	}

	info, err := urlinfo.Decompose(rawURL)
	if err != nil {
		return VisitEvent{}, false
	}
	if opts.denylisted(info.RegistrableDomain, info.FullHost) {
		return VisitEvent{}, false
	}

	return VisitEvent{
		Timestamp:         time.UnixMicro(usec).UTC(),
		URL:               rawURL,
		Title:             title,
		RegistrableDomain: info.RegistrableDomain,
		FullHost:          info.FullHost,
	}, true
}
