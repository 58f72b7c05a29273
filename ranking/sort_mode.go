// Package ranking filters a venue catalog by name and orders it for display.
package ranking

import (
	"strings"

	"github.com/rotisserie/eris"
)

// SortMode selects how venues are ordered.
type SortMode int

const (
	// Convenience buckets venues by distance and breaks ties by wait time.
	Convenience SortMode = iota
	// WaitTime orders by shortest wait.
	WaitTime
	// DistanceAway orders by raw distance.
	DistanceAway
)

// ErrUnknownSortMode is returned by ParseSortMode for unrecognised values.
var ErrUnknownSortMode = eris.New("unknown sort mode")

// SortModes lists every mode in display order.
var SortModes = []SortMode{Convenience, WaitTime, DistanceAway}

var sortModeLabels = map[SortMode]string{
	Convenience:  "Convenience",
	WaitTime:     "Wait Time",
	DistanceAway: "Distance Away",
}

var sortModeAliases = map[string]SortMode{
	"convenience":   Convenience,
	"wait time":     WaitTime,
	"wait_time":     WaitTime,
	"waittime":      WaitTime,
	"distance away": DistanceAway,
	"distance_away": DistanceAway,
	"distanceaway":  DistanceAway,
}

// String returns the display label.
func (m SortMode) String() string {
	if label, ok := sortModeLabels[m]; ok {
		return label
	}
	return "Unknown"
}

// ParseSortMode accepts a display label or identifier, ignoring case. An empty
// value selects Convenience.
func ParseSortMode(s string) (SortMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Convenience, nil
	}
	if m, ok := sortModeAliases[key]; ok {
		return m, nil
	}
	return Convenience, eris.Wrapf(ErrUnknownSortMode, "%q", s)
}

// MarshalText encodes the mode as its display label.
func (m SortMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes any value accepted by ParseSortMode.
func (m *SortMode) UnmarshalText(text []byte) error {
	parsed, err := ParseSortMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
