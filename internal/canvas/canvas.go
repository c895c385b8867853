// Package canvas provides the drawing surface for the 64x32 RGB matrix,
// with emulator, framebuffer, and no-op backends selected explicitly by
// the caller.
package canvas

import "fmt"

// Panel dimensions. The board layout math assumes a single 64x32 panel.
const (
	Width  = 64
	Height = 32
)

// RGB is a color on the panel.
type RGB struct {
	R, G, B uint8
}

// Common panel colors.
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Red    = RGB{255, 0, 0}
	Orange = RGB{255, 128, 0}
	Yellow = RGB{255, 255, 0}
	Green  = RGB{0, 255, 0}
	Gray   = RGB{100, 100, 100}
)

// Canvas is the drawing surface the board renders onto. SetPixel calls
// outside the panel bounds are silently ignored, never an error.
type Canvas interface {
	SetPixel(x, y int, c RGB)
	Clear()
	Present() error
	Close() error
}

// Kind names a canvas backend.
type Kind string

const (
	KindEmulator Kind = "emulator"
	KindHardware Kind = "hardware"
	KindNone     Kind = "none"
)

// New creates the requested backend. Brightness is 0-100 and scales
// every pixel written to the canvas.
func New(kind Kind, brightness int) (Canvas, error) {
	switch kind {
	case KindEmulator:
		return NewEmulator(brightness), nil
	case KindHardware:
		return NewFramebuffer("/dev/fb0", brightness)
	case KindNone:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unknown canvas backend %q", kind)
	}
}

// buffer is the shared offscreen frame used by every backend. It owns
// the bounds check and brightness scaling.
type buffer struct {
	pixels     [Height][Width]RGB
	brightness int
}

func newBuffer(brightness int) buffer {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 100 {
		brightness = 100
	}
	return buffer{brightness: brightness}
}

func (b *buffer) set(x, y int, c RGB) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.pixels[y][x] = b.scale(c)
}

func (b *buffer) scale(c RGB) RGB {
	if b.brightness >= 100 {
		return c
	}
	return RGB{
		R: uint8(int(c.R) * b.brightness / 100),
		G: uint8(int(c.G) * b.brightness / 100),
		B: uint8(int(c.B) * b.brightness / 100),
	}
}

func (b *buffer) clear() {
	for y := range b.pixels {
		for x := range b.pixels[y] {
			b.pixels[y][x] = Black
		}
	}
}
