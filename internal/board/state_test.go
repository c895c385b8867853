package board

import (
	"testing"
	"time"

	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/transit"
)

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		arrivals  []transit.Arrival
		wantText  string
		wantColor canvas.RGB
	}{
		{"no data", nil, "NO DATA", canvas.Yellow},
		{"empty list", []transit.Arrival{}, "NO DATA", canvas.Yellow},
		{"arriving now", []transit.Arrival{{Minutes: 0}}, "NOW", canvas.Red},
		{"one minute", []transit.Arrival{{Minutes: 1}}, "1 MIN", canvas.Red},
		{"two minutes", []transit.Arrival{{Minutes: 2}}, "2 MIN", canvas.Orange},
		{"five minutes", []transit.Arrival{{Minutes: 5}}, "5 MIN", canvas.Orange},
		{"six minutes", []transit.Arrival{{Minutes: 6}}, "6 MIN", canvas.Green},
		{"far out", []transit.Arrival{{Minutes: 42}}, "42 MIN", canvas.Green},
		{"uses soonest", []transit.Arrival{{Minutes: 1}, {Minutes: 9}}, "1 MIN", canvas.Red},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, color := Classify(tc.arrivals)
			if text != tc.wantText {
				t.Errorf("text = %q, want %q", text, tc.wantText)
			}
			if color != tc.wantColor {
				t.Errorf("color = %v, want %v", color, tc.wantColor)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// OnPoll reconciliation
// ---------------------------------------------------------------------------

func TestOnPollFirstPollAlwaysChanges(t *testing.T) {
	s := NewState()
	d := s.OnPoll(nil, time.Now())
	if !d.Changed {
		t.Error("first poll should report changed even when empty")
	}
	if d.Initial {
		t.Error("empty poll must not count as the initial data load")
	}
}

func TestOnPollSameListTwice(t *testing.T) {
	s := NewState()
	arrivals := []transit.Arrival{{Destination: "Embarcadero", Minutes: 3, VehicleRef: "L1"}}

	first := s.OnPoll(arrivals, time.Now())
	if !first.Changed || !first.Initial {
		t.Fatalf("first poll = %+v, want changed and initial", first)
	}

	second := s.OnPoll(arrivals, time.Now())
	if second.Changed {
		t.Error("identical list should not report changed")
	}
	if second.Initial {
		t.Error("initial must only be reported once")
	}
}

func TestOnPollMinuteChange(t *testing.T) {
	s := NewState()
	s.OnPoll([]transit.Arrival{{Minutes: 3}, {Minutes: 8}}, time.Now())

	d := s.OnPoll([]transit.Arrival{{Minutes: 2}, {Minutes: 8}}, time.Now())
	if !d.Changed {
		t.Error("a single differing minutes value should report changed")
	}
}

func TestOnPollRecordsFetchTime(t *testing.T) {
	s := NewState()
	if !s.LastFetch().IsZero() {
		t.Fatal("lastFetch should start zero")
	}

	now := time.Date(2026, 8, 26, 8, 30, 0, 0, time.UTC)
	s.OnPoll(nil, now)
	if !s.LastFetch().Equal(now) {
		t.Errorf("lastFetch = %v, want %v", s.LastFetch(), now)
	}
}

func TestOnPollInitialDeferredUntilData(t *testing.T) {
	s := NewState()
	s.OnPoll(nil, time.Now())

	d := s.OnPoll([]transit.Arrival{{Minutes: 4}}, time.Now())
	if !d.Initial {
		t.Error("first non-empty poll should be initial even after empty polls")
	}
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

func TestCommit(t *testing.T) {
	s := NewState()
	s.Commit("3 MIN", canvas.Orange)
	s.Commit("NOW", canvas.Red)

	if s.DisplayText != "NOW" || s.DisplayColor != canvas.Red {
		t.Errorf("display = %q/%v, want NOW/red", s.DisplayText, s.DisplayColor)
	}
	if s.PreviousText != "3 MIN" || s.PreviousColor != canvas.Orange {
		t.Errorf("previous = %q/%v, want 3 MIN/orange", s.PreviousText, s.PreviousColor)
	}
}
