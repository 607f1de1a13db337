package plugin

import "github.com/justyntemme/frei0rgo/pkg/frei0r"

// Kind marks the shape of a plugin: how many input frames its update call
// receives. The set is closed: KindSource, KindFilter, KindMixer2 and
// KindMixer3 are the only implementations.
type Kind interface {
	// PluginType returns the wire discriminant reported to the host
	PluginType() frei0r.PluginType
	// Inputs returns the number of input frames the update call receives
	Inputs() int
	String() string

	sealed()
}

// KindSource plugins generate a frame from nothing.
type KindSource struct{}

// KindFilter plugins transform one input frame.
type KindFilter struct{}

// KindMixer2 plugins combine two input frames.
type KindMixer2 struct{}

// KindMixer3 plugins combine three input frames.
type KindMixer3 struct{}

func (KindSource) PluginType() frei0r.PluginType { return frei0r.PluginTypeSource }
func (KindFilter) PluginType() frei0r.PluginType { return frei0r.PluginTypeFilter }
func (KindMixer2) PluginType() frei0r.PluginType { return frei0r.PluginTypeMixer2 }
func (KindMixer3) PluginType() frei0r.PluginType { return frei0r.PluginTypeMixer3 }

func (KindSource) Inputs() int { return 0 }
func (KindFilter) Inputs() int { return 1 }
func (KindMixer2) Inputs() int { return 2 }
func (KindMixer3) Inputs() int { return 3 }

func (KindSource) String() string { return "source" }
func (KindFilter) String() string { return "filter" }
func (KindMixer2) String() string { return "mixer2" }
func (KindMixer3) String() string { return "mixer3" }

func (KindSource) sealed() {}
func (KindFilter) sealed() {}
func (KindMixer2) sealed() {}
func (KindMixer3) sealed() {}

// maxInputs is the largest Inputs() of any kind
const maxInputs = 3

// frames holds the input frames of one update call. Only the first
// Kind.Inputs() entries are set.
type frames [maxInputs][]uint32
