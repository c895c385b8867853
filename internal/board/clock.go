package board

import (
	"context"
	"log/slog"
	"time"

	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/font"
)

// Clock renders a live HH:MM:SS readout centered on the panel, once a
// second. It shares the canvas contract with the board loop so the two
// modes are interchangeable at startup.
type Clock struct {
	canvas canvas.Canvas
	color  canvas.RGB
}

// NewClock creates a clock display.
func NewClock(c canvas.Canvas) *Clock {
	return &Clock{canvas: c, color: canvas.Green}
}

// Run drives the clock until the context is cancelled, then blanks the
// display.
func (cl *Clock) Run(ctx context.Context) error {
	defer func() {
		cl.canvas.Clear()
		if err := cl.canvas.Present(); err != nil {
			slog.Error("final clear failed", "error", err)
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	cl.draw(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			cl.draw(now)
		}
	}
}

func (cl *Clock) draw(now time.Time) {
	text := now.Format("15:04:05")
	x := (canvas.Width - font.TextWidth(text)) / 2
	y := (canvas.Height - font.GlyphHeight) / 2

	cl.canvas.Clear()
	font.Draw(cl.canvas, text, x, y, cl.color)
	if err := cl.canvas.Present(); err != nil {
		slog.Error("render failed", "error", err)
	}
}
