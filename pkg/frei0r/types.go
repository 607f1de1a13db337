// Package frei0r mirrors the numeric constants and fixed-layout records of the
// frei0r plugin ABI so the rest of the module can work with them in plain Go.
package frei0r

// ABI version implemented by this module
const (
	MajorVersion = 1
	MinorVersion = 2
)

// PluginType is the wire discriminant of a plugin's kind.
type PluginType int32

const (
	PluginTypeFilter PluginType = 0 // one input, one output
	PluginTypeSource PluginType = 1 // just one output
	PluginTypeMixer2 PluginType = 2 // two inputs, one output
	PluginTypeMixer3 PluginType = 3 // three inputs, one output
)

func (t PluginType) String() string {
	switch t {
	case PluginTypeFilter:
		return "filter"
	case PluginTypeSource:
		return "source"
	case PluginTypeMixer2:
		return "mixer2"
	case PluginTypeMixer3:
		return "mixer3"
	default:
		return "unknown"
	}
}

// ColorModel describes the byte order of the 32-bit pixels a plugin expects.
// The models are endian independent: components are defined by their position
// in memory, not by their significance in a uint32.
type ColorModel int32

const (
	// ColorModelBGRA8888 stores blue, green, red, alpha in consecutive bytes.
	ColorModelBGRA8888 ColorModel = 0
	// ColorModelRGBA8888 stores red, green, blue, alpha in consecutive bytes.
	ColorModelRGBA8888 ColorModel = 1
	// ColorModelPacked32 is any 32-bit pixel format. Source plugins must not
	// use it because the host has to know the format of generated frames.
	ColorModelPacked32 ColorModel = 2
)

func (m ColorModel) String() string {
	switch m {
	case ColorModelBGRA8888:
		return "bgra8888"
	case ColorModelRGBA8888:
		return "rgba8888"
	case ColorModelPacked32:
		return "packed32"
	default:
		return "unknown"
	}
}

// ParamType is the wire discriminant of a parameter's kind.
type ParamType int32

const (
	ParamTypeBool     ParamType = 0
	ParamTypeDouble   ParamType = 1
	ParamTypeColor    ParamType = 2
	ParamTypePosition ParamType = 3
	ParamTypeString   ParamType = 4
)

func (t ParamType) String() string {
	switch t {
	case ParamTypeBool:
		return "bool"
	case ParamTypeDouble:
		return "double"
	case ParamTypeColor:
		return "color"
	case ParamTypePosition:
		return "position"
	case ParamTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Frame geometry limits of the ABI
const (
	FrameAlignment = 16   // bytes
	DimensionStep  = 8    // width and height are multiples of this
	MaxDimension   = 2048 // inclusive
	BytesPerPixel  = 4
)

// Error codes
type Error int

const (
	ErrIndexOutOfRange  Error = -1
	ErrKindMismatch     Error = -2
	ErrUnknownHandle    Error = -3
	ErrNullFrame        Error = -4
	ErrFrameSize        Error = -5
	ErrInvalidGeometry  Error = -6
	ErrNotRegistered    Error = -7
	ErrNullParamBlock   Error = -8
	ErrUnsupportedParam Error = -9
)

func (e Error) Error() string {
	switch e {
	case ErrIndexOutOfRange:
		return "parameter index out of range"
	case ErrKindMismatch:
		return "parameter kind mismatch"
	case ErrUnknownHandle:
		return "unknown instance handle"
	case ErrNullFrame:
		return "null frame pointer"
	case ErrFrameSize:
		return "frame size does not match instance geometry"
	case ErrInvalidGeometry:
		return "invalid frame geometry"
	case ErrNotRegistered:
		return "no plugin registered"
	case ErrNullParamBlock:
		return "null parameter block"
	case ErrUnsupportedParam:
		return "unsupported parameter type"
	default:
		return "unknown error"
	}
}

// ValidGeometry reports whether width and height satisfy the ABI's frame
// constraints: positive, multiples of 8 and at most 2048.
func ValidGeometry(width, height int) bool {
	valid := func(d int) bool {
		return d > 0 && d <= MaxDimension && d%DimensionStep == 0
	}
	return valid(width) && valid(height)
}
