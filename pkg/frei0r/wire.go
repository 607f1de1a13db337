package frei0r

import "unsafe"

// Parameter blocks arrive as untyped f0r_param_t pointers. The helpers below
// reinterpret a block with the fixed layout of one parameter type. Callers
// must derive the type from the parameter's descriptor and pass a non-nil
// block; nothing here can check either.

// boolThreshold is the value at and above which a bool block reads as true.
const boolThreshold = 0.5

// ReadBool decodes an f0r_param_bool block.
func ReadBool(block unsafe.Pointer) bool {
	return *(*float64)(block) >= boolThreshold
}

// WriteBool encodes v as an f0r_param_bool block (1.0 or 0.0).
func WriteBool(block unsafe.Pointer, v bool) {
	if v {
		*(*float64)(block) = 1
	} else {
		*(*float64)(block) = 0
	}
}

// ReadDouble decodes an f0r_param_double block.
func ReadDouble(block unsafe.Pointer) float64 {
	return *(*float64)(block)
}

// WriteDouble encodes an f0r_param_double block.
func WriteDouble(block unsafe.Pointer, v float64) {
	*(*float64)(block) = v
}

// ReadColor decodes an f0r_param_color_t block.
func ReadColor(block unsafe.Pointer) ParamColor {
	return *(*ParamColor)(block)
}

// WriteColor encodes an f0r_param_color_t block.
func WriteColor(block unsafe.Pointer, c ParamColor) {
	*(*ParamColor)(block) = c
}

// ReadPosition decodes an f0r_param_position_t block.
func ReadPosition(block unsafe.Pointer) ParamPosition {
	return *(*ParamPosition)(block)
}

// WritePosition encodes an f0r_param_position_t block.
func WritePosition(block unsafe.Pointer, p ParamPosition) {
	*(*ParamPosition)(block) = p
}

// ReadString decodes an f0r_param_string block and copies the NUL-terminated
// bytes it points to. The source bytes are only valid for the current call.
func ReadString(block unsafe.Pointer) string {
	return GoString(*(**byte)(block))
}

// WriteString stores s in an f0r_param_string block. The pointed-to bytes
// stay owned by the caller.
func WriteString(block unsafe.Pointer, s *byte) {
	*(**byte)(block) = s
}

// GoString copies a NUL-terminated C string into a Go string.
func GoString(s *byte) string {
	if s == nil {
		return ""
	}

	// Count length
	length := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(s), length)) != 0 {
		length++
	}

	return string(unsafe.Slice(s, length))
}
