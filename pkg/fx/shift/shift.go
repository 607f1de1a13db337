// Package shift is a filter plugin that rotates the frame horizontally and
// vertically, wrapping pixels around the edges.
package shift

import (
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

// Info describes the plugin
var Info = plugin.Info{
	Name:        "shift",
	Author:      "frei0rgo",
	Version:     "0.1.0",
	ColorModel:  frei0r.ColorModelPacked32,
	Explanation: "Shifts the image with wrap-around",
}

// Shift holds the parameters of one instance. Shifts are fractions of the
// frame size.
type Shift struct {
	XShift float64 `frei0r:"xshift,explain=Shift in x direction"`
	YShift float64 `frei0r:"yshift,explain=Shift in y direction"`

	width, height int
}

// Params is the parameter table of Shift
var Params = param.MustDerive[Shift]()

// Definition registers Shift as a filter plugin
var Definition = f0r.Must(f0r.NewFilter(Info, Params, New))

// New creates an unshifted filter for width x height frames
func New(width, height int) *Shift {
	return &Shift{width: width, height: height}
}

// UpdateFilter writes in, shifted, to out
func (s *Shift) UpdateFilter(time float64, in, out []uint32) {
	src := process.Frame{Pixels: in, Width: s.width, Height: s.height}
	dst := process.Frame{Pixels: out, Width: s.width, Height: s.height}
	Apply(dst, src, offset(s.XShift, s.width), offset(s.YShift, s.height))
}

// Apply sets dst(x, y) to src((x+dx) mod width, (y+dy) mod height). Both
// frames must have the same size and must not overlap.
func Apply(dst, src process.Frame, dx, dy int) {
	dx = wrap(dx, src.Width)
	dy = wrap(dy, src.Height)
	for y := 0; y < dst.Height; y++ {
		row := dst.Row(y)
		from := src.Row((y + dy) % src.Height)
		// the source row split at dx
		n := copy(row, from[dx:])
		copy(row[n:], from[:dx])
	}
}

// offset converts a fraction of size to whole pixels, truncating toward zero
func offset(fraction float64, size int) int {
	return int(fraction * float64(size))
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
