package process

import (
	"encoding/binary"
	"math"

	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Opaque is the alpha value of a fully opaque pixel
const Opaque = 0xFF

// Pack builds a pixel whose bytes in memory follow the color model's order.
// PACKED32 has no defined component order; it is packed like RGBA8888.
func Pack(model frei0r.ColorModel, r, g, b, a uint8) uint32 {
	var px [4]byte
	if model == frei0r.ColorModelBGRA8888 {
		px = [4]byte{b, g, r, a}
	} else {
		px = [4]byte{r, g, b, a}
	}
	return binary.NativeEndian.Uint32(px[:])
}

// Unpack splits a pixel into components according to the color model.
func Unpack(model frei0r.ColorModel, p uint32) (r, g, b, a uint8) {
	var px [4]byte
	binary.NativeEndian.PutUint32(px[:], p)
	if model == frei0r.ColorModelBGRA8888 {
		return px[2], px[1], px[0], px[3]
	}
	return px[0], px[1], px[2], px[3]
}

// ColorPixel converts a color parameter to an opaque pixel.
func ColorPixel(model frei0r.ColorModel, c param.Color) uint32 {
	return Pack(model, component(c.R), component(c.G), component(c.B), Opaque)
}

// component maps [0, 1] to [0, 255], clamping out of range values
func component(v float32) uint8 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// Copy copies src into dst and returns the number of pixels copied
func Copy(dst, src Frame) int {
	return copy(dst.Pixels, src.Pixels)
}
