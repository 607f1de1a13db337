package param

import (
	"fmt"
	"reflect"
	"strings"
)

// tagName is the struct tag read by Derive.
//
//	XShift float64 `frei0r:"xshift,explain=Shift in x direction"`
//	cache  []byte  // unexported fields are never parameters
//	Scale  int     `frei0r:"-"`
const tagName = "frei0r"

var (
	colorType    = reflect.TypeOf(Color{})
	positionType = reflect.TypeOf(Position{})
)

// Derive builds a parameter table from the exported fields of struct S, in
// declaration order. Supported field types are bool, float64, Color, Position
// and string (or named types with those underlying kinds). Each parameter is
// named after the lower-cased field name unless the tag overrides it, and the
// explanation follows "explain=" in the tag. Fields tagged "-", unexported
// fields and embedded fields are skipped; any other field type is an error.
func Derive[S any]() (*Table[*S], error) {
	st := reflect.TypeOf((*S)(nil)).Elem()
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: %s is not a struct", st)
	}

	b := NewBuilder[*S]()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		tag := f.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name, explanation, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("derive: %s.%s: %w", st.Name(), f.Name, err)
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}

		d, err := deriveField[S](i, f, name, explanation)
		if err != nil {
			return nil, fmt.Errorf("derive: %s.%s: %w", st.Name(), f.Name, err)
		}
		b.Add(d)
	}

	return b.Build()
}

// MustDerive is like Derive but panics on error.
func MustDerive[S any]() *Table[*S] {
	t, err := Derive[S]()
	if err != nil {
		panic(fmt.Sprintf("param: %v", err))
	}
	return t
}

// parseTag splits `name,explain=text`. Everything after "explain=" belongs to
// the explanation, commas included. Any other attribute is an error.
func parseTag(tag string) (name, explanation string, err error) {
	name, rest, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return name, "", nil
	}
	explanation, ok := strings.CutPrefix(rest, "explain=")
	if !ok {
		attr, _, _ := strings.Cut(rest, "=")
		return "", "", fmt.Errorf("unknown attribute %q in tag %q", attr, tag)
	}
	return name, explanation, nil
}

func deriveField[S any](index int, f reflect.StructField, name, explanation string) (Descriptor[*S], error) {
	field := func(p *S) reflect.Value {
		return reflect.ValueOf(p).Elem().Field(index)
	}

	switch {
	case f.Type == colorType:
		return NewColor(name, explanation,
			func(p *S) Color { return field(p).Interface().(Color) },
			func(p *S, v Color) { field(p).Set(reflect.ValueOf(v)) },
		), nil
	case f.Type == positionType:
		return NewPosition(name, explanation,
			func(p *S) Position { return field(p).Interface().(Position) },
			func(p *S, v Position) { field(p).Set(reflect.ValueOf(v)) },
		), nil
	}

	switch f.Type.Kind() {
	case reflect.Bool:
		return NewBool(name, explanation,
			func(p *S) bool { return field(p).Bool() },
			func(p *S, v bool) { field(p).SetBool(v) },
		), nil
	case reflect.Float64:
		return NewDouble(name, explanation,
			func(p *S) float64 { return field(p).Float() },
			func(p *S, v float64) { field(p).SetFloat(v) },
		), nil
	case reflect.String:
		return NewString(name, explanation,
			func(p *S) string { return field(p).String() },
			func(p *S, v string) { field(p).SetString(v) },
		), nil
	}

	return Descriptor[*S]{}, fmt.Errorf("unsupported parameter type %s", f.Type)
}
