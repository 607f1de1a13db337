package param

import (
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Table is the ordered, fixed list of parameters of one plugin type. It is
// built once and never mutated, so it may be read from any goroutine.
// Parameters are addressed solely by their zero-based index.
type Table[T any] struct {
	descriptors []Descriptor[T]
}

// NewTable creates a table from descriptors in index order. Names must be
// non-empty and unique, and every descriptor needs both accessors.
func NewTable[T any](descriptors ...Descriptor[T]) (*Table[T], error) {
	seen := make(map[string]int, len(descriptors))
	for i, d := range descriptors {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		if prev, exists := seen[d.name]; exists {
			return nil, fmt.Errorf("parameter %d: name %q already used by parameter %d", i, d.name, prev)
		}
		seen[d.name] = i
	}

	t := &Table[T]{descriptors: make([]Descriptor[T], len(descriptors))}
	copy(t.descriptors, descriptors)
	return t, nil
}

// MustTable is like NewTable but panics on an invalid table. It is meant for
// package-level table variables.
func MustTable[T any](descriptors ...Descriptor[T]) *Table[T] {
	t, err := NewTable(descriptors...)
	if err != nil {
		panic(fmt.Sprintf("param: %v", err))
	}
	return t
}

// Len returns the number of parameters. A nil table has none.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.descriptors)
}

// Describe returns the metadata of the parameter at index.
func (t *Table[T]) Describe(index int) (Info, error) {
	d, err := t.descriptor(index)
	if err != nil {
		return Info{}, err
	}
	return d.Info(), nil
}

// Infos returns the metadata of all parameters in index order.
func (t *Table[T]) Infos() []Info {
	result := make([]Info, t.Len())
	for i := range result {
		result[i] = t.descriptors[i].Info()
	}
	return result
}

// Index returns the position of the parameter with the given name. It is a
// convenience for Go callers; the wire protocol only ever uses positions.
func (t *Table[T]) Index(name string) (int, bool) {
	for i := 0; i < t.Len(); i++ {
		if t.descriptors[i].name == name {
			return i, true
		}
	}
	return -1, false
}

// Get reads the parameter at index from p without modifying p.
func (t *Table[T]) Get(p T, index int) (Value, error) {
	d, err := t.descriptor(index)
	if err != nil {
		return nil, err
	}
	return d.get(p), nil
}

// Set replaces the value of the parameter at index in p. The value's kind
// must match the descriptor's kind.
func (t *Table[T]) Set(p T, index int, v Value) error {
	d, err := t.descriptor(index)
	if err != nil {
		return err
	}
	return d.set(p, v)
}

func (t *Table[T]) descriptor(index int) (Descriptor[T], error) {
	if index < 0 || index >= t.Len() {
		return Descriptor[T]{}, fmt.Errorf("%w: %d not in [0, %d)", frei0r.ErrIndexOutOfRange, index, t.Len())
	}
	return t.descriptors[index], nil
}
