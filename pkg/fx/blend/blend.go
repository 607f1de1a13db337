// Package blend is a mixer plugin that crossfades between two frames.
package blend

import (
	"math"

	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

// Info describes the plugin
var Info = plugin.Info{
	Name:        "blend",
	Author:      "frei0rgo",
	Version:     "0.1.0",
	ColorModel:  frei0r.ColorModelRGBA8888,
	Explanation: "Crossfades from the first input to the second",
}

// Blend holds the parameters of one instance
type Blend struct {
	Position   float64 `frei0r:"position,explain=0 shows the first input, 1 the second"`
	EqualPower bool    `frei0r:"equal power,explain=Use a cosine crossfade instead of a linear one"`
}

// Params is the parameter table of Blend
var Params = param.MustDerive[Blend]()

// Definition registers Blend as a two input mixer
var Definition = f0r.Must(f0r.NewMixer2(Info, Params, New))

// New creates a blend showing the first input
func New(width, height int) *Blend {
	return &Blend{}
}

// UpdateMixer2 writes the crossfade of in1 and in2 to out
func (b *Blend) UpdateMixer2(time float64, in1, in2, out []uint32) {
	gainA, gainB := Gains(b.Position, b.EqualPower)
	Crossfade(Info.ColorModel, in1, in2, out, gainA, gainB)
}

// Gains returns the weights of the first and second input at position,
// clamped to [0, 1]. The equal power curve keeps gainA²+gainB² at 1.
func Gains(position float64, equalPower bool) (gainA, gainB float64) {
	position = math.Max(0, math.Min(1, position))
	if equalPower {
		angle := position * math.Pi / 2
		return math.Cos(angle), math.Sin(angle)
	}
	return 1 - position, position
}

// Crossfade sets every channel of out to a*gainA + b*gainB, alpha included.
func Crossfade(model frei0r.ColorModel, a, b, out []uint32, gainA, gainB float64) {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		ar, ag, ab, aa := process.Unpack(model, a[i])
		br, bg, bb, ba := process.Unpack(model, b[i])
		out[i] = process.Pack(model,
			mix(ar, br, gainA, gainB),
			mix(ag, bg, gainA, gainB),
			mix(ab, bb, gainA, gainB),
			mix(aa, ba, gainA, gainB))
	}
}

func mix(a, b uint8, gainA, gainB float64) uint8 {
	v := math.Round(float64(a)*gainA + float64(b)*gainB)
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
