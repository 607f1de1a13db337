// Package fill is a source plugin that paints every pixel with one color.
package fill

import (
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

// Info describes the plugin
var Info = plugin.Info{
	Name:        "color",
	Author:      "frei0rgo",
	Version:     "0.1.0",
	ColorModel:  frei0r.ColorModelRGBA8888,
	Explanation: "Fills the frame with a single color",
}

// Fill holds the parameters of one instance
type Fill struct {
	Color param.Color `frei0r:"color,explain=Fill color"`

	model frei0r.ColorModel
}

// Params is the parameter table of Fill
var Params = param.MustDerive[Fill]()

// Definition registers Fill as a source plugin
var Definition = f0r.Must(f0r.NewSource(Info, Params, New))

// New creates a white fill for frames of any size
func New(width, height int) *Fill {
	return &Fill{
		Color: param.Color{R: 1, G: 1, B: 1},
		model: Info.ColorModel,
	}
}

// UpdateSource paints out with the current color
func (f *Fill) UpdateSource(time float64, out []uint32) {
	Paint(out, f.model, f.Color)
}

// Paint sets every pixel of out to the opaque pixel for c
func Paint(out []uint32, model frei0r.ColorModel, c param.Color) {
	p := process.ColorPixel(model, c)
	for i := range out {
		out[i] = p
	}
}
