package frei0r

// PluginInfo mirrors f0r_plugin_info_t.
// Layout on 64-bit: name (8) + author (8) + six C ints (24) + explanation (8) = 48 bytes.
type PluginInfo struct {
	Name          *byte
	Author        *byte
	PluginType    PluginType
	ColorModel    ColorModel
	Frei0rVersion int32
	MajorVersion  int32
	MinorVersion  int32
	NumParams     int32
	Explanation   *byte
}

// ParamInfo mirrors f0r_param_info_t.
// Layout on 64-bit: name (8) + type (4) + padding (4) + explanation (8) = 24 bytes.
type ParamInfo struct {
	Name        *byte
	Type        ParamType
	_           [4]byte
	Explanation *byte
}

// ParamColor mirrors f0r_param_color_t: three floats in [0, 1].
type ParamColor struct {
	R float32
	G float32
	B float32
}

// ParamPosition mirrors f0r_param_position_t.
type ParamPosition struct {
	X float64
	Y float64
}
