package transit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Fixture replays pre-recorded stop-monitoring snapshots from a local
// file, one JSON document per line, round-robin. It lets the whole
// board run deterministically with no network at all.
type Fixture struct {
	snapshots [][]byte
	index     int
	line      string
	direction string
	now       func() time.Time
}

// LoadFixture reads a newline-delimited JSON fixture file. Blank lines
// and lines starting with '#' are skipped; malformed lines are logged
// and skipped without aborting the rest of the file.
func LoadFixture(path, line, direction string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture file: %w", err)
	}
	defer file.Close()

	f := &Fixture{line: line, direction: direction, now: time.Now}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		data := bytes.TrimPrefix([]byte(raw), utf8BOM)
		if !json.Valid(data) {
			slog.Warn("skipping malformed fixture line", "file", path, "line", lineNo)
			continue
		}
		f.snapshots = append(f.snapshots, data)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}

	return f, nil
}

// Poll parses the next recorded snapshot with the same logic as the
// live feed and advances the round-robin cursor.
func (f *Fixture) Poll() []Arrival {
	if len(f.snapshots) == 0 {
		return nil
	}

	raw := f.snapshots[f.index]
	f.index = (f.index + 1) % len(f.snapshots)

	arrivals, err := ParseStopMonitoring(raw, f.line, f.direction, f.now())
	if err != nil {
		slog.Warn("fixture snapshot failed to parse", "error", err)
		return nil
	}
	return arrivals
}

// Len returns the number of usable snapshots in the fixture.
func (f *Fixture) Len() int { return len(f.snapshots) }
