package plugin

import (
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
)

// instance is one constructed plugin value plus the bookkeeping the wire
// layer needs for it
type instance struct {
	handle      Handle
	kind        Kind
	width       int
	height      int
	frameLength int
	plugin      pluginValue

	// token is the address the host uses for this instance
	token *byte

	// C copies of string parameters last returned to the host, by index
	strings map[int]hostString
}

type hostString struct {
	value string
	ptr   *byte
}

func newInstance(d Driver, width, height int) *instance {
	return &instance{
		kind:        d.Kind(),
		width:       width,
		height:      height,
		frameLength: width * height,
		plugin:      d.instantiate(width, height),
	}
}

func (inst *instance) setParam(index int, v param.Value) error {
	if err := inst.plugin.set(index, v); err != nil {
		return err
	}
	if v.Kind() == param.KindString {
		inst.releaseString(index)
	}
	return nil
}

func (inst *instance) getParam(index int) (param.Value, error) {
	return inst.plugin.get(index)
}

// hostString returns a C copy of s for the string parameter at index. The
// copy is reused while the value is unchanged and stays valid until the
// parameter is set again, the value changes or the instance is destroyed.
func (inst *instance) hostString(index int, s string) *byte {
	if cur, ok := inst.strings[index]; ok && cur.value == s {
		return cur.ptr
	}
	inst.releaseString(index)
	if inst.strings == nil {
		inst.strings = make(map[int]hostString)
	}
	p := strAlloc.CString(s)
	inst.strings[index] = hostString{value: s, ptr: p}
	return p
}

func (inst *instance) releaseString(index int) {
	if cur, ok := inst.strings[index]; ok {
		strAlloc.Free(cur.ptr)
		delete(inst.strings, index)
	}
}

// release frees everything the instance handed to the host
func (inst *instance) release() {
	for index := range inst.strings {
		inst.releaseString(index)
	}
	strAlloc.Free(inst.token)
	inst.token = nil
}

// update runs one frame. in must hold kind.Inputs() frames.
func (inst *instance) update(time float64, in *frames, out []uint32) error {
	if out == nil {
		return fmt.Errorf("%w: output", frei0r.ErrNullFrame)
	}
	if len(out) != inst.frameLength {
		return fmt.Errorf("%w: output has %d pixels, want %d", frei0r.ErrFrameSize, len(out), inst.frameLength)
	}
	for i := 0; i < inst.kind.Inputs(); i++ {
		if in[i] == nil {
			return fmt.Errorf("%w: input %d", frei0r.ErrNullFrame, i+1)
		}
		if len(in[i]) != inst.frameLength {
			return fmt.Errorf("%w: input %d has %d pixels, want %d", frei0r.ErrFrameSize, i+1, len(in[i]), inst.frameLength)
		}
	}

	if profiler.IsEnabled() {
		done := profiler.Start("update." + inst.kind.String())
		defer done(inst.frameLength)
	}
	inst.plugin.update(time, in, out)
	return nil
}
