package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a value for display and logs. Parse accepts its output.
//
//	Bool      on | off
//	Double    0.25
//	Color     #ff8000
//	Position  0.5,0.25
//	String    unchanged
func Format(v Value) string {
	switch v := v.(type) {
	case Bool:
		if v {
			return "on"
		}
		return "off"
	case Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case Color:
		return fmt.Sprintf("#%02x%02x%02x", channel(v.R), channel(v.G), channel(v.B))
	case Position:
		return strconv.FormatFloat(v.X, 'g', -1, 64) + "," + strconv.FormatFloat(v.Y, 'g', -1, 64)
	case String:
		return string(v)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(v)
	}
}

// Parse converts text to a value of the given kind. Besides Format's
// output it accepts true/false/1/0 for bools and r,g,b components in
// [0, 1] for colors.
func Parse(kind Kind, s string) (Value, error) {
	switch kind {
	case KindBool:
		return parseBool(s)
	case KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		return Double(f), nil
	case KindColor:
		return parseColor(s)
	case KindPosition:
		xy, err := parseFloats(s, 2)
		if err != nil {
			return nil, err
		}
		return Position{X: xy[0], Y: xy[1]}, nil
	case KindString:
		return String(s), nil
	default:
		return nil, fmt.Errorf("cannot parse %s parameter", kind)
	}
}

func parseBool(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return Bool(true), nil
	case "off", "false", "no", "0":
		return Bool(false), nil
	}
	return nil, fmt.Errorf("invalid bool %q", s)
}

func parseColor(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return nil, fmt.Errorf("invalid color %q: want #rrggbb", s)
		}
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color{
			R: float32(rgb>>16&0xff) / 255,
			G: float32(rgb>>8&0xff) / 255,
			B: float32(rgb&0xff) / 255,
		}, nil
	}

	rgb, err := parseFloats(s, 3)
	if err != nil {
		return nil, err
	}
	return Color{R: float32(rgb[0]), G: float32(rgb[1]), B: float32(rgb[2])}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid value %q: want %d comma separated numbers", s, n)
	}
	result := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		result[i] = f
	}
	return result, nil
}

// channel maps [0, 1] to [0, 255]
func channel(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
