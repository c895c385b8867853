// Package board is the arrival display itself: it reconciles each poll
// against what the panel currently shows, classifies the soonest
// arrival into text and color, and drives the train animation that
// swaps old content for new.
package board

import (
	"strconv"
	"time"

	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/transit"
)

// Decision is the outcome of reconciling one poll. Changed means the
// arrival list differs from the stored snapshot and a transition should
// be armed; Initial means this is the first non-empty poll since start.
type Decision struct {
	Changed bool
	Initial bool
}

// State holds what the panel currently shows and what it showed before
// the last transition. It is owned by the scheduler loop; there is no
// other writer.
type State struct {
	// Committed content, reflecting the most recently completed
	// transition. Previous* is only consulted while an exit phase of
	// an in-flight animation still needs the old content.
	DisplayText   string
	DisplayColor  canvas.RGB
	PreviousText  string
	PreviousColor canvas.RGB

	current   []transit.Arrival
	polled    bool
	seenData  bool
	lastFetch time.Time
}

// NewState creates an empty display state.
func NewState() *State {
	return &State{}
}

// OnPoll reconciles a freshly polled arrival list. The stored snapshot
// and fetch timestamp are replaced unconditionally; the decision tells
// the caller whether that warrants a visible transition.
func (s *State) OnPoll(arrivals []transit.Arrival, now time.Time) Decision {
	d := Decision{
		// The very first poll always counts as a change so the board
		// has something to show even when the list is empty.
		Changed: !s.polled || !transit.Equal(arrivals, s.current),
		Initial: !s.seenData && len(arrivals) > 0,
	}

	s.current = arrivals
	s.polled = true
	if len(arrivals) > 0 {
		s.seenData = true
	}
	s.lastFetch = now

	return d
}

// Commit records a completed transition: the incoming content becomes
// the committed display, and what was displayed becomes the previous.
func (s *State) Commit(text string, color canvas.RGB) {
	s.PreviousText = s.DisplayText
	s.PreviousColor = s.DisplayColor
	s.DisplayText = text
	s.DisplayColor = color
}

// Current returns the stored arrival snapshot.
func (s *State) Current() []transit.Arrival { return s.current }

// LastFetch returns when the most recent poll happened, zero before the
// first poll.
func (s *State) LastFetch() time.Time { return s.lastFetch }

// Classify maps an arrival list to the text and color the panel shows
// for it. Thresholds are exact: 0 and 1 minute are red, 2 through 5
// orange, 6 and up green, and an empty list is the yellow "NO DATA".
func Classify(arrivals []transit.Arrival) (string, canvas.RGB) {
	if len(arrivals) == 0 {
		return "NO DATA", canvas.Yellow
	}

	minutes := arrivals[0].Minutes
	switch {
	case minutes == 0:
		return "NOW", canvas.Red
	case minutes == 1:
		return "1 MIN", canvas.Red
	case minutes <= 5:
		return strconv.Itoa(minutes) + " MIN", canvas.Orange
	default:
		return strconv.Itoa(minutes) + " MIN", canvas.Green
	}
}
