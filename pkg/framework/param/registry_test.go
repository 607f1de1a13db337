package param

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

type sample struct {
	enabled bool
	amount  float64
	tint    Color
	center  Position
	label   string
}

func sampleTable(t *testing.T) *Table[*sample] {
	t.Helper()
	table, err := NewBuilder[*sample]().
		Bool("enabled", "Enable the effect",
			func(s *sample) bool { return s.enabled },
			func(s *sample, v bool) { s.enabled = v }).
		Double("amount", "Effect amount",
			func(s *sample) float64 { return s.amount },
			func(s *sample, v float64) { s.amount = v }).
		Color("tint", "Tint color",
			func(s *sample) Color { return s.tint },
			func(s *sample, v Color) { s.tint = v }).
		Position("center", "Effect center",
			func(s *sample) Position { return s.center },
			func(s *sample, v Position) { s.center = v }).
		String("label", "Overlay text",
			func(s *sample) string { return s.label },
			func(s *sample, v string) { s.label = v }).
		Build()
	require.NoError(t, err)
	return table
}

func TestTableRoundTrip(t *testing.T) {
	table := sampleTable(t)
	s := &sample{}

	values := []Value{
		Bool(true),
		Double(0.125),
		Color{R: 1, G: 0.5, B: 0.25},
		Position{X: 0.3, Y: 0.7},
		String("hello"),
	}

	for i, v := range values {
		t.Run(v.Kind().String(), func(t *testing.T) {
			require.NoError(t, table.Set(s, i, v))
			got, err := table.Get(s, i)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}

	assert.Equal(t, &sample{
		enabled: true,
		amount:  0.125,
		tint:    Color{R: 1, G: 0.5, B: 0.25},
		center:  Position{X: 0.3, Y: 0.7},
		label:   "hello",
	}, s)
}

func TestTableSetReplaces(t *testing.T) {
	table := sampleTable(t)
	s := &sample{tint: Color{R: 1, G: 1, B: 1}}

	require.NoError(t, table.Set(s, 2, Color{B: 0.5}))
	assert.Equal(t, Color{B: 0.5}, s.tint)
}

func TestTableGetDoesNotMutate(t *testing.T) {
	table := sampleTable(t)
	s := &sample{amount: 3, label: "x"}
	before := *s

	for i := 0; i < table.Len(); i++ {
		_, err := table.Get(s, i)
		require.NoError(t, err)
	}
	assert.Equal(t, before, *s)
}

func TestTableDescribe(t *testing.T) {
	table := sampleTable(t)
	require.Equal(t, 5, table.Len())

	info, err := table.Describe(3)
	require.NoError(t, err)
	assert.Equal(t, Info{Name: "center", Explanation: "Effect center", Kind: KindPosition}, info)

	// Repeated queries report the same thing
	infos := table.Infos()
	assert.Equal(t, infos, table.Infos())
	for i, want := range infos {
		got, err := table.Describe(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	idx, ok := table.Index("tint")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	_, ok = table.Index("missing")
	assert.False(t, ok)
}

func TestTableContractErrors(t *testing.T) {
	table := sampleTable(t)
	s := &sample{}

	_, err := table.Describe(5)
	assert.True(t, errors.Is(err, frei0r.ErrIndexOutOfRange))
	_, err = table.Get(s, -1)
	assert.True(t, errors.Is(err, frei0r.ErrIndexOutOfRange))
	err = table.Set(s, 99, Bool(true))
	assert.True(t, errors.Is(err, frei0r.ErrIndexOutOfRange))

	err = table.Set(s, 0, Double(1))
	assert.True(t, errors.Is(err, frei0r.ErrKindMismatch))
	err = table.Set(s, 4, nil)
	assert.True(t, errors.Is(err, frei0r.ErrKindMismatch))
	assert.Equal(t, sample{}, *s)
}

func TestNewTableValidation(t *testing.T) {
	get := func(s *sample) float64 { return s.amount }
	set := func(s *sample, v float64) { s.amount = v }

	t.Run("Empty", func(t *testing.T) {
		table, err := NewTable[*sample]()
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("NilTable", func(t *testing.T) {
		var table *Table[*sample]
		assert.Equal(t, 0, table.Len())
		assert.Empty(t, table.Infos())
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := NewTable(NewDouble("", "", get, set))
		assert.Error(t, err)
	})

	t.Run("MissingAccessor", func(t *testing.T) {
		_, err := NewTable(NewDouble[*sample]("amount", "", get, nil))
		assert.Error(t, err)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := NewTable(NewDouble("amount", "", get, set), NewDouble("amount", "", get, set))
		assert.Error(t, err)
	})

	t.Run("MustTablePanics", func(t *testing.T) {
		assert.Panics(t, func() { MustTable(NewDouble("", "", get, set)) })
	})
}

func TestKindParamType(t *testing.T) {
	tests := []struct {
		kind Kind
		want frei0r.ParamType
	}{
		{KindBool, frei0r.ParamTypeBool},
		{KindDouble, frei0r.ParamTypeDouble},
		{KindColor, frei0r.ParamTypeColor},
		{KindPosition, frei0r.ParamTypePosition},
		{KindString, frei0r.ParamTypeString},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.ParamType(), tt.kind.String())
	}
}
