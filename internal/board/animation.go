package board

import (
	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/font"
)

// Sprite geometry on the 64-wide panel.
const (
	// TrainWidth is the fixed width of the train glyph in pixels.
	TrainWidth = 16
	// trainGap separates the train glyph from its trailing text.
	trainGap = 2
	// ParkX is the resting x of the train when nothing is animating.
	ParkX = 1
)

// Engine steps the two-phase train transition: while a new arrival
// enters from the right, the previous one simultaneously exits to the
// left. It is a pure frame counter; the renderer asks it where each
// sprite is and draws accordingly.
type Engine struct {
	panelWidth  int
	active      bool
	frame       int
	totalFrames int

	inText   string
	inColor  canvas.RGB
	outText  string
	outColor canvas.RGB
	outgoing bool
}

// NewEngine creates an idle engine for the standard panel width.
func NewEngine() *Engine {
	return &Engine{panelWidth: canvas.Width}
}

// contentWidth is the full pixel width of a train plus its label.
func contentWidth(text string) int {
	return TrainWidth + trainGap + font.TextWidth(text)
}

// enterDistance is the travel from fully off-screen right to parked.
func (e *Engine) enterDistance(text string) int {
	return e.panelWidth + contentWidth(text) - ParkX
}

// exitDistance is the travel from parked to fully off-screen left.
func (e *Engine) exitDistance(text string) int {
	return ParkX + contentWidth(text)
}

// Arm starts a transition to newText. When initial is set, or no prior
// content exists, only the entering sprite runs; otherwise the prior
// content exits while the new content enters, and the frame budget is
// whichever sprite has farther to travel, plus one frame of slack so
// neither is cut off.
func (e *Engine) Arm(newText string, newColor canvas.RGB, prevText string, prevColor canvas.RGB, initial bool) {
	e.inText = newText
	e.inColor = newColor
	e.outgoing = !initial && prevText != ""

	if e.outgoing {
		e.outText = prevText
		e.outColor = prevColor
		e.totalFrames = max(e.enterDistance(newText), e.exitDistance(prevText)) + 1
	} else {
		e.outText = ""
		e.totalFrames = e.enterDistance(newText)
	}

	e.frame = 0
	e.active = true
}

// Advance steps one frame. It reports true exactly once, on the tick
// that completes the transition; the engine is idle afterwards.
func (e *Engine) Advance() bool {
	if !e.active {
		return false
	}
	e.frame++
	if e.frame >= e.totalFrames {
		e.active = false
		e.frame = 0
		return true
	}
	return false
}

// Active reports whether a transition is in flight.
func (e *Engine) Active() bool { return e.active }

// TotalFrames returns the frame budget of the current or last armed
// transition.
func (e *Engine) TotalFrames() int { return e.totalFrames }

// Progress is the elapsed fraction of the transition, clamped to [0,1].
func (e *Engine) Progress() float64 {
	if e.totalFrames <= 0 {
		return 0
	}
	p := float64(e.frame) / float64(e.totalFrames)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IncomingX is the x of the entering train's left edge at the current
// frame, interpolated from off-screen right down to the parked slot.
func (e *Engine) IncomingX() int {
	start := ParkX + e.enterDistance(e.inText)
	return start - int(e.Progress()*float64(e.enterDistance(e.inText)))
}

// OutgoingX is the x of the exiting train's left edge at the current
// frame, interpolated from the parked slot to off-screen left.
func (e *Engine) OutgoingX() int {
	return ParkX - int(e.Progress()*float64(e.exitDistance(e.outText)))
}

// Incoming returns the entering content.
func (e *Engine) Incoming() (string, canvas.RGB) { return e.inText, e.inColor }

// Outgoing returns the exiting content and whether one exists for this
// transition.
func (e *Engine) Outgoing() (string, canvas.RGB, bool) {
	return e.outText, e.outColor, e.outgoing
}
