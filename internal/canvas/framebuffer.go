package canvas

import (
	"fmt"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// Framebuffer drives a Linux framebuffer device, scaling each matrix
// pixel to a square block so the 64x32 panel fills the screen. This is
// the "hardware" backend on boards where the matrix is mapped to a
// framebuffer; it is selected by configuration, never probed for.
type Framebuffer struct {
	buffer
	dev   *fb.Device
	scale int
	offX  int
	offY  int
}

// NewFramebuffer opens the framebuffer device and computes the largest
// integer scale that fits the panel on it.
func NewFramebuffer(device string, brightness int) (*Framebuffer, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("opening framebuffer %s: %w", device, err)
	}

	bounds := dev.Bounds()
	scale := min(bounds.Dx()/Width, bounds.Dy()/Height)
	if scale < 1 {
		dev.Close()
		return nil, fmt.Errorf("framebuffer %dx%d too small for %dx%d panel",
			bounds.Dx(), bounds.Dy(), Width, Height)
	}

	return &Framebuffer{
		buffer: newBuffer(brightness),
		dev:    dev,
		scale:  scale,
		offX:   (bounds.Dx() - Width*scale) / 2,
		offY:   (bounds.Dy() - Height*scale) / 2,
	}, nil
}

// SetPixel writes a pixel into the offscreen frame.
func (f *Framebuffer) SetPixel(x, y int, c RGB) { f.set(x, y, c) }

// Clear blanks the offscreen frame.
func (f *Framebuffer) Clear() { f.clear() }

// Present copies the frame to the device, one scale x scale block per
// panel pixel.
func (f *Framebuffer) Present() error {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := f.pixels[y][x]
			c := color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
			for dy := 0; dy < f.scale; dy++ {
				for dx := 0; dx < f.scale; dx++ {
					f.dev.Set(f.offX+x*f.scale+dx, f.offY+y*f.scale+dy, c)
				}
			}
		}
	}
	return nil
}

// Close blanks the device and releases it.
func (f *Framebuffer) Close() error {
	f.clear()
	if err := f.Present(); err != nil {
		f.dev.Close()
		return err
	}
	f.dev.Close()
	return nil
}
