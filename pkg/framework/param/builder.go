package param

// Builder provides a fluent API for assembling a parameter table
type Builder[T any] struct {
	descriptors []Descriptor[T]
}

// NewBuilder creates a new table builder
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends already constructed descriptors
func (b *Builder[T]) Add(descriptors ...Descriptor[T]) *Builder[T] {
	b.descriptors = append(b.descriptors, descriptors...)
	return b
}

// Bool appends a bool parameter
func (b *Builder[T]) Bool(name, explanation string, get func(T) bool, set func(T, bool)) *Builder[T] {
	return b.Add(NewBool(name, explanation, get, set))
}

// Double appends a double parameter
func (b *Builder[T]) Double(name, explanation string, get func(T) float64, set func(T, float64)) *Builder[T] {
	return b.Add(NewDouble(name, explanation, get, set))
}

// Color appends a color parameter
func (b *Builder[T]) Color(name, explanation string, get func(T) Color, set func(T, Color)) *Builder[T] {
	return b.Add(NewColor(name, explanation, get, set))
}

// Position appends a position parameter
func (b *Builder[T]) Position(name, explanation string, get func(T) Position, set func(T, Position)) *Builder[T] {
	return b.Add(NewPosition(name, explanation, get, set))
}

// String appends a string parameter
func (b *Builder[T]) String(name, explanation string, get func(T) string, set func(T, string)) *Builder[T] {
	return b.Add(NewString(name, explanation, get, set))
}

// Build returns the table, or the first validation error
func (b *Builder[T]) Build() (*Table[T], error) {
	return NewTable(b.descriptors...)
}

// MustBuild returns the table and panics if it is invalid
func (b *Builder[T]) MustBuild() *Table[T] {
	return MustTable(b.descriptors...)
}
