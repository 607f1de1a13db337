// Package process provides bounded views over the frames passed to a plugin's
// update call and helpers to read and write their pixels.
package process

import (
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Frame gives 2D access to a frame of Width*Height packed 32-bit pixels stored
// row-major, top row first, with no padding between rows. A Frame does not
// own its pixels: when they come from the host it is only valid for the
// duration of the update call and must not be retained.
type Frame struct {
	Pixels []uint32
	Width  int
	Height int
}

// NewFrame wraps pixels as a width x height frame.
func NewFrame(pixels []uint32, width, height int) (Frame, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return Frame{}, fmt.Errorf("%w: %d pixels for %dx%d", frei0r.ErrFrameSize, len(pixels), width, height)
	}
	return Frame{Pixels: pixels, Width: width, Height: height}, nil
}

// Alloc creates a zeroed frame owned by the caller.
func Alloc(width, height int) Frame {
	return Frame{Pixels: make([]uint32, width*height), Width: width, Height: height}
}

// At returns the pixel at column x, row y
func (f Frame) At(x, y int) uint32 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at column x, row y
func (f Frame) Set(x, y int, p uint32) {
	f.Pixels[y*f.Width+x] = p
}

// Row returns row y as a slice aliasing the frame
func (f Frame) Row(y int) []uint32 {
	start := y * f.Width
	return f.Pixels[start : start+f.Width : start+f.Width]
}

// Fill sets every pixel to p
func (f Frame) Fill(p uint32) {
	for i := range f.Pixels {
		f.Pixels[i] = p
	}
}

// Len returns the number of pixels
func (f Frame) Len() int {
	return len(f.Pixels)
}
