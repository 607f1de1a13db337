package plugin

import (
	"io"
	"os"
	"sync"
	"testing"
	"unsafe"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

// trackingAllocator hands out Go memory and records which strings are live
type trackingAllocator struct {
	mu     sync.Mutex
	live   map[*byte]string
	allocs int
	frees  int
}

func newTrackingAllocator() *trackingAllocator {
	return &trackingAllocator{live: make(map[*byte]string)}
}

func (a *trackingAllocator) CString(s string) *byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	b := append([]byte(s), 0)
	a.live[&b[0]] = s
	a.allocs++
	return &b[0]
}

func (a *trackingAllocator) Free(p *byte) {
	if p == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.live[p]; !ok {
		panic("free of unknown or already freed string")
	}
	delete(a.live, p)
	a.frees++
}

func (a *trackingAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// install registers d with a tracking allocator and restores the package
// state when the test ends
func install(t *testing.T, d Driver) *trackingAllocator {
	t.Helper()

	alloc := newTrackingAllocator()
	prevAlloc := strAlloc
	prevConfig := CurrentConfig()
	strAlloc = alloc
	debug.SetOutput(io.Discard)
	Register(d)

	t.Cleanup(func() {
		instancesMu.Lock()
		for h, inst := range instances {
			inst.release()
			delete(instances, h)
		}
		tokens = make(map[uintptr]Handle)
		instancesMu.Unlock()

		registryMu.Lock()
		if registered != nil {
			registered.release()
			registered = nil
		}
		registryMu.Unlock()

		if n := alloc.Live(); n != 0 {
			t.Errorf("%d strings leaked", n)
		}
		strAlloc = prevAlloc
		SetConfig(prevConfig)
		profiler.Reset()
		debug.SetOutput(os.Stderr)
	})
	return alloc
}

// cString returns a NUL-terminated copy of s in Go memory
func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func frame(n int, fill uint32) []uint32 {
	f := make([]uint32, n)
	for i := range f {
		f[i] = fill
	}
	return f
}

func pixels(f []uint32) unsafe.Pointer {
	return unsafe.Pointer(&f[0])
}

var testInfo = plugin.Info{
	Name:        "test",
	Author:      "frei0rgo",
	Version:     "2.3.1",
	ColorModel:  frei0r.ColorModelRGBA8888,
	Explanation: "plugin used by tests",
}

// everything has one parameter of each kind
type everything struct {
	Enabled bool
	Amount  float64
	Tint    param.Color
	Center  param.Position
	Label   string

	width, height int
	calls         int
	lastTime      float64
	inputs        [][]uint32
}

func (e *everything) record(time float64, in ...[]uint32) {
	e.calls++
	e.lastTime = time
	e.inputs = in
}

func (e *everything) UpdateFilter(time float64, in, out []uint32) {
	e.record(time, in)
	copy(out, in)
}

var everythingParams = param.MustDerive[everything]()

func newEverything(width, height int) *everything {
	return &everything{Amount: 0.5, Label: "initial", width: width, height: height}
}

type source struct{ calls int }

func (s *source) UpdateSource(time float64, out []uint32) {
	s.calls++
	for i := range out {
		out[i] = uint32(i)
	}
}

type mixer2 struct{}

func (mixer2) UpdateMixer2(time float64, in1, in2, out []uint32) {
	for i := range out {
		out[i] = in1[i] + in2[i]
	}
}

type mixer3 struct{}

func (mixer3) UpdateMixer3(time float64, in1, in2, in3, out []uint32) {
	for i := range out {
		out[i] = in1[i] + in2[i] + in3[i]
	}
}

type panicking struct{}

func (panicking) UpdateSource(time float64, out []uint32) {
	panic("boom")
}

func filterDefinition(t *testing.T) *Definition[*everything] {
	t.Helper()
	d, err := NewFilter(testInfo, everythingParams, newEverything)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	return d
}
