package canvas

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Emulator renders the panel into a terminal using 24-bit color escape
// codes, one "▀" cell per vertical pixel pair. It lets the board run on
// a development machine with no matrix attached.
type Emulator struct {
	buffer
	out     io.Writer
	started bool
}

// NewEmulator creates a terminal emulator canvas writing to stdout.
func NewEmulator(brightness int) *Emulator {
	return &Emulator{buffer: newBuffer(brightness), out: os.Stdout}
}

// SetPixel writes a pixel into the offscreen frame.
func (e *Emulator) SetPixel(x, y int, c RGB) { e.set(x, y, c) }

// Clear blanks the offscreen frame.
func (e *Emulator) Clear() { e.clear() }

// Present draws the frame, rewinding the cursor so successive frames
// overwrite each other in place.
func (e *Emulator) Present() error {
	var sb strings.Builder
	if e.started {
		// Move back up over the previously drawn frame.
		fmt.Fprintf(&sb, "\x1b[%dA", Height/2)
	}
	for y := 0; y < Height; y += 2 {
		for x := 0; x < Width; x++ {
			top := e.pixels[y][x]
			bot := e.pixels[y+1][x]
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		sb.WriteString("\x1b[0m\n")
	}
	e.started = true
	_, err := io.WriteString(e.out, sb.String())
	return err
}

// Close resets terminal color attributes, leaving the last frame.
func (e *Emulator) Close() error {
	_, err := io.WriteString(e.out, "\x1b[0m")
	return err
}
