package board

import (
	"fmt"
	"time"

	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/font"
)

// Panel row layout. Header on top, train lane through the middle,
// update footer along the bottom.
const (
	headerY = 1
	trainY  = 11
	textY   = 12
	footerY = 24
)

// rightMargin keeps one blank column at the panel's right edge.
const rightMargin = 1

// headerGap separates the truncated line name from the direction arrow.
const headerGap = 2

// Renderer composes one frame: header, animated or parked train, and
// the update footer. It owns no state beyond the static line identity.
type Renderer struct {
	canvas    canvas.Canvas
	lineName  string
	lineColor canvas.RGB
	direction string
}

// NewRenderer creates a renderer for one line and direction.
func NewRenderer(c canvas.Canvas, lineName string, lineColor canvas.RGB, direction string) *Renderer {
	return &Renderer{
		canvas:    c,
		lineName:  lineName,
		lineColor: lineColor,
		direction: direction,
	}
}

// Render draws a complete frame and presents it. nextFetchIn is how
// long until the next scheduled poll; negative values display as
// "UPD NOW".
func (r *Renderer) Render(state *State, engine *Engine, nextFetchIn time.Duration) error {
	c := r.canvas
	c.Clear()

	r.drawHeader()

	countdown := nextFetchLabel(nextFetchIn)
	if engine.Active() {
		r.drawAnimation(engine)
	} else {
		r.drawParked(state, countdown)
	}

	font.DrawRightAligned(c, countdown, canvas.Width-rightMargin-1, footerY, canvas.White)

	return c.Present()
}

func (r *Renderer) drawHeader() {
	arrowX := canvas.Width - rightMargin - arrowWidth
	drawDirection(r.canvas, r.direction, arrowX, headerY, r.lineColor)

	available := arrowX - headerGap - ParkX
	name := font.TruncateToFit(r.lineName, available)
	font.Draw(r.canvas, name, ParkX, headerY, r.lineColor)
}

func (r *Renderer) drawAnimation(engine *Engine) {
	// The outgoing train draws first so the incoming one wins any
	// overlapping pixels.
	if text, color, ok := engine.Outgoing(); ok {
		r.drawTrainWithLabel(engine.OutgoingX(), text, color)
	}
	text, color := engine.Incoming()
	r.drawTrainWithLabel(engine.IncomingX(), text, color)
}

func (r *Renderer) drawParked(state *State, countdown string) {
	r.drawTrainWithLabel(ParkX, state.DisplayText, state.DisplayColor)

	if last := state.LastFetch(); !last.IsZero() {
		stamp := "UPD " + last.Format("15:04")
		// Leave room for the countdown on the same row.
		available := r.countdownX(countdown) - headerGap - ParkX
		font.Draw(r.canvas, font.TruncateToFit(stamp, available), ParkX, footerY, canvas.Gray)
	}
}

func (r *Renderer) drawTrainWithLabel(x int, text string, color canvas.RGB) {
	// Partially visible sprites still render their in-bounds pixels;
	// the canvas drops the rest.
	drawTrain(r.canvas, x, trainY, r.lineColor)
	font.Draw(r.canvas, text, x+TrainWidth+trainGap, textY, color)
}

func (r *Renderer) countdownX(label string) int {
	return canvas.Width - rightMargin - font.TextWidth(label)
}

// nextFetchLabel formats the seconds-until-refresh countdown, clamped
// at zero.
func nextFetchLabel(d time.Duration) string {
	secs := int(d.Seconds())
	if secs <= 0 {
		return "UPD NOW"
	}
	return fmt.Sprintf("UPD %ds", secs)
}
