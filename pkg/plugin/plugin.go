// Package plugin turns a typed Go plugin into a frei0r plugin: it owns the
// registered definition, the live instances behind opaque handles and the
// translation of the untyped f0r_* calls into typed calls.
package plugin

import (
	"errors"
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

// SourcePlugin is implemented by plugins registered with NewSource.
type SourcePlugin interface {
	UpdateSource(time float64, out []uint32)
}

// FilterPlugin is implemented by plugins registered with NewFilter.
type FilterPlugin interface {
	UpdateFilter(time float64, in, out []uint32)
}

// Mixer2Plugin is implemented by plugins registered with NewMixer2.
type Mixer2Plugin interface {
	UpdateMixer2(time float64, in1, in2, out []uint32)
}

// Mixer3Plugin is implemented by plugins registered with NewMixer3.
type Mixer3Plugin interface {
	UpdateMixer3(time float64, in1, in2, in3, out []uint32)
}

// In every update call the frames hold exactly width*height pixels. Input
// frames must be treated as read-only, and no frame may be retained after
// the call returns.

// Definition binds a plugin type P to its metadata, parameter table,
// constructor and update shape. P is usually a pointer type.
type Definition[P any] struct {
	info   plugin.Info
	kind   Kind
	params *param.Table[P]
	create func(width, height int) P
	update func(p P, time float64, in *frames, out []uint32)

	major, minor int32
}

// NewSource defines a plugin with no inputs.
func NewSource[P SourcePlugin](info plugin.Info, params *param.Table[P], create func(width, height int) P) (*Definition[P], error) {
	return newDefinition(KindSource{}, info, params, create,
		func(p P, time float64, _ *frames, out []uint32) {
			p.UpdateSource(time, out)
		})
}

// NewFilter defines a plugin with one input.
func NewFilter[P FilterPlugin](info plugin.Info, params *param.Table[P], create func(width, height int) P) (*Definition[P], error) {
	return newDefinition(KindFilter{}, info, params, create,
		func(p P, time float64, in *frames, out []uint32) {
			p.UpdateFilter(time, in[0], out)
		})
}

// NewMixer2 defines a plugin with two inputs.
func NewMixer2[P Mixer2Plugin](info plugin.Info, params *param.Table[P], create func(width, height int) P) (*Definition[P], error) {
	return newDefinition(KindMixer2{}, info, params, create,
		func(p P, time float64, in *frames, out []uint32) {
			p.UpdateMixer2(time, in[0], in[1], out)
		})
}

// NewMixer3 defines a plugin with three inputs.
func NewMixer3[P Mixer3Plugin](info plugin.Info, params *param.Table[P], create func(width, height int) P) (*Definition[P], error) {
	return newDefinition(KindMixer3{}, info, params, create,
		func(p P, time float64, in *frames, out []uint32) {
			p.UpdateMixer3(time, in[0], in[1], in[2], out)
		})
}

// Must panics if err is non-nil. It wraps the New* constructors for use in
// package initialisation.
func Must[P any](d *Definition[P], err error) *Definition[P] {
	if err != nil {
		panic(fmt.Sprintf("plugin: %v", err))
	}
	return d
}

func newDefinition[P any](kind Kind, info plugin.Info, params *param.Table[P],
	create func(width, height int) P, update func(P, float64, *frames, []uint32)) (*Definition[P], error) {
	if create == nil {
		return nil, errors.New("plugin constructor is nil")
	}
	if err := info.Validate(kind.PluginType()); err != nil {
		return nil, err
	}
	major, minor, err := info.Versions()
	if err != nil {
		return nil, err
	}

	return &Definition[P]{
		info:   info,
		kind:   kind,
		params: params,
		create: create,
		update: update,
		major:  major,
		minor:  minor,
	}, nil
}

// Info returns the plugin metadata
func (d *Definition[P]) Info() plugin.Info { return d.info }

// Kind returns the plugin kind
func (d *Definition[P]) Kind() Kind { return d.kind }

// Versions returns the major and minor version reported to the host
func (d *Definition[P]) Versions() (major, minor int32) { return d.major, d.minor }

// NumParams returns the number of parameters
func (d *Definition[P]) NumParams() int { return d.params.Len() }

// Describe returns the metadata of the parameter at index
func (d *Definition[P]) Describe(index int) (param.Info, error) { return d.params.Describe(index) }

// Params returns the metadata of all parameters in index order
func (d *Definition[P]) Params() []param.Info { return d.params.Infos() }

func (d *Definition[P]) instantiate(width, height int) pluginValue {
	return &boundPlugin[P]{def: d, value: d.create(width, height)}
}

// Driver is the type-erased view of a Definition used by the registry and
// the wire layer. Only *Definition implements it.
type Driver interface {
	Info() plugin.Info
	Kind() Kind
	Versions() (major, minor int32)
	NumParams() int
	Describe(index int) (param.Info, error)
	Params() []param.Info

	instantiate(width, height int) pluginValue
}

// pluginValue is one live plugin value with its table and update shape
// already bound.
type pluginValue interface {
	get(index int) (param.Value, error)
	set(index int, v param.Value) error
	update(time float64, in *frames, out []uint32)
}

type boundPlugin[P any] struct {
	def   *Definition[P]
	value P
}

func (b *boundPlugin[P]) get(index int) (param.Value, error) {
	return b.def.params.Get(b.value, index)
}

func (b *boundPlugin[P]) set(index int, v param.Value) error {
	return b.def.params.Set(b.value, index, v)
}

func (b *boundPlugin[P]) update(time float64, in *frames, out []uint32) {
	b.def.update(b.value, time, in, out)
}
