// Package transit produces upcoming-arrival lists for a configured MUNI
// line, stop, and direction. Sources never fail: the live feed absorbs
// every transport and parse error by substituting demo data, and an
// empty list is a meaningful result the board renders as "NO DATA".
package transit

import "sort"

// Direction values used by the 511.org stop-monitoring feed.
const (
	DirectionInbound  = "IB"
	DirectionOutbound = "OB"
)

// Arrival is one upcoming vehicle at the configured stop. Minutes is
// never negative; entries already past are dropped at parse time.
type Arrival struct {
	Destination string
	Minutes     int
	VehicleRef  string
}

// Source produces a time-ordered list of upcoming arrivals. Poll never
// returns an error; a nil or empty slice is a valid result.
type Source interface {
	Poll() []Arrival
}

// Equal reports whether two arrival lists are element-wise identical.
// Order matters; lists are always pre-sorted by minutes.
func Equal(a, b []Arrival) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortByMinutes(arrivals []Arrival) {
	sort.Slice(arrivals, func(i, j int) bool {
		return arrivals[i].Minutes < arrivals[j].Minutes
	})
}
