package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		kind       Kind
		pluginType frei0r.PluginType
		inputs     int
	}{
		{KindSource{}, frei0r.PluginTypeSource, 0},
		{KindFilter{}, frei0r.PluginTypeFilter, 1},
		{KindMixer2{}, frei0r.PluginTypeMixer2, 2},
		{KindMixer3{}, frei0r.PluginTypeMixer3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.pluginType, tt.kind.PluginType())
			assert.Equal(t, tt.inputs, tt.kind.Inputs())
			assert.LessOrEqual(t, tt.kind.Inputs(), maxInputs)
		})
	}
}

func TestConstructorsSetKind(t *testing.T) {
	src, err := NewSource(testInfo, nil, func(w, h int) *source { return &source{} })
	require.NoError(t, err)
	assert.Equal(t, KindSource{}, src.Kind())

	flt, err := NewFilter(testInfo, everythingParams, newEverything)
	require.NoError(t, err)
	assert.Equal(t, KindFilter{}, flt.Kind())
	assert.Equal(t, 5, flt.NumParams())

	m2, err := NewMixer2(testInfo, nil, func(w, h int) mixer2 { return mixer2{} })
	require.NoError(t, err)
	assert.Equal(t, KindMixer2{}, m2.Kind())

	m3, err := NewMixer3(testInfo, nil, func(w, h int) mixer3 { return mixer3{} })
	require.NoError(t, err)
	assert.Equal(t, KindMixer3{}, m3.Kind())

	major, minor := flt.Versions()
	assert.Equal(t, int32(2), major)
	assert.Equal(t, int32(3), minor)
}

func TestDefinitionValidation(t *testing.T) {
	create := func(w, h int) *source { return &source{} }

	_, err := NewSource[*source](testInfo, nil, nil)
	assert.Error(t, err, "nil constructor")

	packed := testInfo
	packed.ColorModel = frei0r.ColorModelPacked32
	_, err = NewSource(packed, nil, create)
	assert.Error(t, err, "sources cannot use packed32")
	_, err = NewFilter(packed, everythingParams, newEverything)
	assert.NoError(t, err, "filters may use packed32")

	badVersion := testInfo
	badVersion.Version = "one"
	_, err = NewSource(badVersion, nil, create)
	assert.Error(t, err)

	noName := testInfo
	noName.Name = ""
	_, err = NewSource(noName, nil, create)
	assert.Error(t, err)

	assert.Panics(t, func() { Must(NewSource(noName, nil, create)) })
	assert.NotPanics(t, func() { Must(NewSource(testInfo, nil, create)) })
}

func TestRegisteredRequiresRegistration(t *testing.T) {
	registryMu.Lock()
	prev := registered
	registered = nil
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		registered = prev
		registryMu.Unlock()
	}()

	_, err := Registered()
	assert.ErrorIs(t, err, frei0r.ErrNotRegistered)
	_, err = Construct(8, 8)
	assert.ErrorIs(t, err, frei0r.ErrNotRegistered)
}

func TestRegisterReplacesStrings(t *testing.T) {
	alloc := install(t, filterDefinition(t))
	// name, author, explanation and two strings per parameter
	assert.Equal(t, 3+2*5, alloc.Live())

	other, err := NewSource(plugin.Info{Name: "other", Author: "a", Version: "1.0.0"}, nil,
		func(w, h int) *source { return &source{} })
	require.NoError(t, err)
	Register(other)
	assert.Equal(t, 3, alloc.Live())

	d, err := Registered()
	require.NoError(t, err)
	assert.Equal(t, "other", d.Info().Name)
}

func TestSourceUpdate(t *testing.T) {
	install(t, Must(NewSource(testInfo, nil, func(w, h int) *source { return &source{} })))

	h, err := Construct(8, 8)
	require.NoError(t, err)

	out := frame(64, 0xdeadbeef)
	require.NoError(t, Update(h, 1.5, out))
	for i, p := range out {
		assert.Equal(t, uint32(i), p)
	}
}

func TestMixerUpdates(t *testing.T) {
	t.Run("mixer2", func(t *testing.T) {
		install(t, Must(NewMixer2(testInfo, nil, func(w, h int) mixer2 { return mixer2{} })))
		h, err := Construct(8, 8)
		require.NoError(t, err)

		out := frame(64, 0)
		require.NoError(t, Update(h, 0, out, frame(64, 1), frame(64, 2)))
		assert.Equal(t, frame(64, 3), out)

		err = Update(h, 0, out, frame(64, 1))
		assert.ErrorIs(t, err, frei0r.ErrNullFrame, "missing second input")
	})

	t.Run("mixer3", func(t *testing.T) {
		install(t, Must(NewMixer3(testInfo, nil, func(w, h int) mixer3 { return mixer3{} })))
		h, err := Construct(8, 8)
		require.NoError(t, err)

		out := frame(64, 0)
		require.NoError(t, Update(h, 0, out, frame(64, 1), frame(64, 2), frame(64, 4)))
		assert.Equal(t, frame(64, 7), out)
	})
}

func TestUpdateChecksFrames(t *testing.T) {
	install(t, filterDefinition(t))
	h, err := Construct(16, 8)
	require.NoError(t, err)

	err = Update(h, 0, nil, frame(128, 0))
	assert.ErrorIs(t, err, frei0r.ErrNullFrame)

	err = Update(h, 0, frame(64, 0), frame(128, 0))
	assert.ErrorIs(t, err, frei0r.ErrFrameSize)

	err = Update(h, 0, frame(128, 0), frame(127, 0))
	assert.ErrorIs(t, err, frei0r.ErrFrameSize)

	err = Update(h, 0, frame(128, 0))
	assert.ErrorIs(t, err, frei0r.ErrNullFrame)

	out := frame(128, 0)
	require.NoError(t, Update(h, 2.5, out, frame(128, 9), frame(1, 0)), "extra inputs are ignored")
	assert.Equal(t, frame(128, 9), out)
}

func TestUpdatePassesTime(t *testing.T) {
	var created *everything
	d := Must(NewFilter(testInfo, everythingParams, func(w, h int) *everything {
		created = newEverything(w, h)
		return created
	}))
	install(t, d)

	h, err := Construct(8, 16)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 8, created.width)
	assert.Equal(t, 16, created.height)

	require.NoError(t, Update(h, 3.25, frame(128, 0), frame(128, 0)))
	assert.Equal(t, 1, created.calls)
	assert.Equal(t, 3.25, created.lastTime)
	assert.Len(t, created.inputs, 1)
}

func TestPluginPanicBecomesError(t *testing.T) {
	install(t, Must(NewSource(testInfo, nil, func(w, h int) panicking { return panicking{} })))
	h, err := Construct(8, 8)
	require.NoError(t, err)

	err = Update(h, 0, frame(64, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSetParamValidation(t *testing.T) {
	install(t, filterDefinition(t))
	h, err := Construct(8, 8)
	require.NoError(t, err)

	assert.ErrorIs(t, SetParam(h, 5, param.Bool(true)), frei0r.ErrIndexOutOfRange)
	assert.ErrorIs(t, SetParam(h, -1, param.Bool(true)), frei0r.ErrIndexOutOfRange)
	assert.ErrorIs(t, SetParam(h, 0, param.Double(1)), frei0r.ErrKindMismatch)
	assert.ErrorIs(t, SetParam(h, 0, nil), frei0r.ErrKindMismatch)
	assert.ErrorIs(t, SetParam(h+100, 0, param.Bool(true)), frei0r.ErrUnknownHandle)
	_, err = GetParam(0, 0)
	assert.ErrorIs(t, err, frei0r.ErrUnknownHandle)

	require.NoError(t, SetParam(h, 1, param.Double(0.75)))
	v, err := GetParam(h, 1)
	require.NoError(t, err)
	assert.Equal(t, param.Double(0.75), v)

	v, err = GetParam(h, 4)
	require.NoError(t, err)
	assert.Equal(t, param.String("initial"), v)
}

func TestProfileUpdates(t *testing.T) {
	install(t, filterDefinition(t))
	cfg := CurrentConfig()
	cfg.ProfileUpdates = true
	SetConfig(cfg)

	h, err := Construct(8, 8)
	require.NoError(t, err)
	require.NoError(t, Update(h, 0, frame(64, 0), frame(64, 0)))
	require.NoError(t, Update(h, 0, frame(64, 0), frame(64, 0)))

	m, ok := Profiler().Measurement("update.filter")
	require.True(t, ok)
	assert.Equal(t, uint64(2), m.Count)
	assert.Equal(t, uint64(128), m.Pixels)
}
