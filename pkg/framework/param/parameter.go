// Package param describes the typed parameters of a frei0r plugin and routes
// index-addressed get/set calls to the accessor of the right kind.
package param

import (
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Kind is the type of a parameter.
type Kind int

const (
	KindBool Kind = iota
	KindDouble
	KindColor
	KindPosition
	KindString
)

// ParamType returns the wire discriminant of the kind.
func (k Kind) ParamType() frei0r.ParamType {
	switch k {
	case KindBool:
		return frei0r.ParamTypeBool
	case KindDouble:
		return frei0r.ParamTypeDouble
	case KindColor:
		return frei0r.ParamTypeColor
	case KindPosition:
		return frei0r.ParamTypePosition
	case KindString:
		return frei0r.ParamTypeString
	default:
		return frei0r.ParamType(-1)
	}
}

func (k Kind) String() string {
	return k.ParamType().String()
}

// Color parameter. All components are in the range [0, 1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// Position parameter. Coordinates are nominally in the range [0, 1].
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Value is a parameter value tagged with its kind. It is one of Bool, Double,
// Color, Position or String.
type Value interface {
	Kind() Kind
	isValue()
}

// Bool is the value of a KindBool parameter.
type Bool bool

// Double is the value of a KindDouble parameter.
type Double float64

// String is the value of a KindString parameter.
type String string

func (Bool) Kind() Kind     { return KindBool }
func (Double) Kind() Kind   { return KindDouble }
func (Color) Kind() Kind    { return KindColor }
func (Position) Kind() Kind { return KindPosition }
func (String) Kind() Kind   { return KindString }

func (Bool) isValue()     {}
func (Double) isValue()   {}
func (Color) isValue()    {}
func (Position) isValue() {}
func (String) isValue()   {}

// Info is the metadata of one parameter as reported to the host.
type Info struct {
	Name        string
	Explanation string
	Kind        Kind
}

// Descriptor pairs a parameter's metadata with the typed get and set
// accessors acting on a plugin value of type T.
type Descriptor[T any] struct {
	name        string
	explanation string
	access      accessor[T]
}

// accessor is implemented by exactly one type per Kind.
type accessor[T any] interface {
	kind() Kind
	valid() bool
}

type boolAccess[T any] struct {
	get func(T) bool
	set func(T, bool)
}

type doubleAccess[T any] struct {
	get func(T) float64
	set func(T, float64)
}

type colorAccess[T any] struct {
	get func(T) Color
	set func(T, Color)
}

type positionAccess[T any] struct {
	get func(T) Position
	set func(T, Position)
}

type stringAccess[T any] struct {
	get func(T) string
	set func(T, string)
}

func (boolAccess[T]) kind() Kind     { return KindBool }
func (doubleAccess[T]) kind() Kind   { return KindDouble }
func (colorAccess[T]) kind() Kind    { return KindColor }
func (positionAccess[T]) kind() Kind { return KindPosition }
func (stringAccess[T]) kind() Kind   { return KindString }

func (a boolAccess[T]) valid() bool     { return a.get != nil && a.set != nil }
func (a doubleAccess[T]) valid() bool   { return a.get != nil && a.set != nil }
func (a colorAccess[T]) valid() bool    { return a.get != nil && a.set != nil }
func (a positionAccess[T]) valid() bool { return a.get != nil && a.set != nil }
func (a stringAccess[T]) valid() bool   { return a.get != nil && a.set != nil }

// NewBool creates a bool parameter
func NewBool[T any](name, explanation string, get func(T) bool, set func(T, bool)) Descriptor[T] {
	return Descriptor[T]{name: name, explanation: explanation, access: boolAccess[T]{get, set}}
}

// NewDouble creates a double parameter
func NewDouble[T any](name, explanation string, get func(T) float64, set func(T, float64)) Descriptor[T] {
	return Descriptor[T]{name: name, explanation: explanation, access: doubleAccess[T]{get, set}}
}

// NewColor creates a color parameter
func NewColor[T any](name, explanation string, get func(T) Color, set func(T, Color)) Descriptor[T] {
	return Descriptor[T]{name: name, explanation: explanation, access: colorAccess[T]{get, set}}
}

// NewPosition creates a position parameter
func NewPosition[T any](name, explanation string, get func(T) Position, set func(T, Position)) Descriptor[T] {
	return Descriptor[T]{name: name, explanation: explanation, access: positionAccess[T]{get, set}}
}

// NewString creates a string parameter. The set accessor receives a string
// the plugin owns; the bytes it was decoded from are not retained.
func NewString[T any](name, explanation string, get func(T) string, set func(T, string)) Descriptor[T] {
	return Descriptor[T]{name: name, explanation: explanation, access: stringAccess[T]{get, set}}
}

// Name returns the display name
func (d Descriptor[T]) Name() string { return d.name }

// Explanation returns the explanation text
func (d Descriptor[T]) Explanation() string { return d.explanation }

// Kind returns the parameter kind
func (d Descriptor[T]) Kind() Kind { return d.access.kind() }

// Info returns the descriptor's metadata
func (d Descriptor[T]) Info() Info {
	return Info{Name: d.name, Explanation: d.explanation, Kind: d.Kind()}
}

func (d Descriptor[T]) validate() error {
	if d.name == "" {
		return fmt.Errorf("parameter without a name")
	}
	if d.access == nil || !d.access.valid() {
		return fmt.Errorf("parameter %q is missing an accessor", d.name)
	}
	return nil
}

// get reads the parameter from p. It never mutates p.
func (d Descriptor[T]) get(p T) Value {
	switch a := d.access.(type) {
	case boolAccess[T]:
		return Bool(a.get(p))
	case doubleAccess[T]:
		return Double(a.get(p))
	case colorAccess[T]:
		return a.get(p)
	case positionAccess[T]:
		return a.get(p)
	case stringAccess[T]:
		return String(a.get(p))
	default:
		panic(fmt.Sprintf("param: unhandled accessor %T", a))
	}
}

// set replaces the parameter's value in p. v must be of the descriptor's kind.
func (d Descriptor[T]) set(p T, v Value) error {
	switch a := d.access.(type) {
	case boolAccess[T]:
		if b, ok := v.(Bool); ok {
			a.set(p, bool(b))
			return nil
		}
	case doubleAccess[T]:
		if f, ok := v.(Double); ok {
			a.set(p, float64(f))
			return nil
		}
	case colorAccess[T]:
		if c, ok := v.(Color); ok {
			a.set(p, c)
			return nil
		}
	case positionAccess[T]:
		if pos, ok := v.(Position); ok {
			a.set(p, pos)
			return nil
		}
	case stringAccess[T]:
		if s, ok := v.(String); ok {
			a.set(p, string(s))
			return nil
		}
	default:
		panic(fmt.Sprintf("param: unhandled accessor %T", a))
	}
	return fmt.Errorf("%w: %q is %s, got %s", frei0r.ErrKindMismatch, d.name, d.Kind(), kindOf(v))
}

func kindOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
