package board

import (
	"context"
	"log/slog"
	"time"

	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/transit"
)

// Tick cadence: fast while a transition animates, slow while parked.
const (
	animateTick = 50 * time.Millisecond
	idleTick    = 5 * time.Second
)

// Loop is the single-threaded cooperative scheduler. Each iteration
// polls the source if the refresh interval has elapsed, renders one
// frame, and advances the animation; polls are never issued while a
// transition is in flight, so the data under an animation stays frozen.
type Loop struct {
	source   transit.Source
	state    *State
	engine   *Engine
	renderer *Renderer
	canvas   canvas.Canvas
	interval time.Duration

	// now is replaceable so tests can drive the poll gate directly.
	now func() time.Time
}

// NewLoop wires a scheduler around a source and a renderer.
func NewLoop(source transit.Source, c canvas.Canvas, renderer *Renderer, interval time.Duration) *Loop {
	return &Loop{
		source:   source,
		state:    NewState(),
		engine:   NewEngine(),
		renderer: renderer,
		canvas:   c,
		interval: interval,
		now:      time.Now,
	}
}

// State exposes the display state, primarily for tests.
func (l *Loop) State() *State { return l.state }

// Engine exposes the animation engine, primarily for tests.
func (l *Loop) Engine() *Engine { return l.engine }

// Run drives the loop until the context is cancelled, then blanks the
// display on the way out.
func (l *Loop) Run(ctx context.Context) error {
	defer l.shutdown()

	for {
		l.Tick()

		d := idleTick
		if l.engine.Active() {
			d = animateTick
		}

		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Tick runs one scheduler iteration: poll if due, render, advance.
func (l *Loop) Tick() {
	now := l.now()

	if l.shouldPoll(now) {
		l.poll(now)
	}

	if err := l.renderer.Render(l.state, l.engine, l.nextFetchIn(now)); err != nil {
		slog.Error("render failed", "error", err)
	}

	if l.engine.Advance() {
		text, color := l.engine.Incoming()
		l.state.Commit(text, color)
		slog.Debug("transition committed", "text", text)
	}
}

// shouldPoll gates data refresh: never during an animation, and only
// once the interval has elapsed since the previous fetch.
func (l *Loop) shouldPoll(now time.Time) bool {
	if l.engine.Active() {
		return false
	}
	last := l.state.LastFetch()
	return last.IsZero() || now.Sub(last) >= l.interval
}

func (l *Loop) poll(now time.Time) {
	arrivals := l.source.Poll()
	decision := l.state.OnPoll(arrivals, now)

	slog.Debug("polled arrivals",
		"count", len(arrivals),
		"changed", decision.Changed,
		"initial", decision.Initial,
	)

	if !decision.Changed {
		return
	}

	text, color := Classify(arrivals)
	l.engine.Arm(text, color, l.state.DisplayText, l.state.DisplayColor, decision.Initial)
	slog.Info("arming transition", "text", text, "frames", l.engine.TotalFrames())
}

// nextFetchIn is the time remaining until the next scheduled poll.
func (l *Loop) nextFetchIn(now time.Time) time.Duration {
	last := l.state.LastFetch()
	if last.IsZero() {
		return 0
	}
	return l.interval - now.Sub(last)
}

// shutdown blanks the panel so an interrupted process does not leave a
// stale arrival glowing on the wall.
func (l *Loop) shutdown() {
	l.canvas.Clear()
	if err := l.canvas.Present(); err != nil {
		slog.Error("final clear failed", "error", err)
	}
}
