package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

func TestDefaults(t *testing.T) {
	f := New(8, 8)
	assert.Equal(t, param.Color{R: 1, G: 1, B: 1}, f.Color)

	out := make([]uint32, 64)
	f.UpdateSource(0, out)
	for _, p := range out {
		r, g, b, a := process.Unpack(frei0r.ColorModelRGBA8888, p)
		assert.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{r, g, b, a})
	}
}

func TestParams(t *testing.T) {
	require.Equal(t, 1, Params.Len())
	info, err := Params.Describe(0)
	require.NoError(t, err)
	assert.Equal(t, "color", info.Name)
	assert.Equal(t, "Fill color", info.Explanation)
	assert.Equal(t, param.KindColor, info.Kind)
}

func TestDefinition(t *testing.T) {
	assert.Equal(t, f0r.KindSource{}, Definition.Kind())
	assert.Equal(t, "color", Definition.Info().Name)
	major, minor := Definition.Versions()
	assert.Equal(t, int32(0), major)
	assert.Equal(t, int32(1), minor)
}

func TestRedFill(t *testing.T) {
	f := New(16, 8)
	require.NoError(t, Params.Set(f, 0, param.Color{R: 1, G: 0, B: 0}))

	out := make([]uint32, 16*8)
	f.UpdateSource(0, out)

	want := process.Pack(frei0r.ColorModelRGBA8888, 255, 0, 0, process.Opaque)
	for i, p := range out {
		if p != want {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, p, want)
		}
	}
}

func TestPaintColorModels(t *testing.T) {
	c := param.Color{R: 0.2, G: 0.4, B: 0.6}
	for _, model := range []frei0r.ColorModel{frei0r.ColorModelBGRA8888, frei0r.ColorModelRGBA8888} {
		out := make([]uint32, 8)
		Paint(out, model, c)
		r, g, b, a := process.Unpack(model, out[7])
		assert.Equal(t, [4]uint8{51, 102, 153, 255}, [4]uint8{r, g, b, a}, model.String())
	}
}
