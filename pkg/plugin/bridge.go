package plugin

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
)

// errNullOutput marks an update without an output frame. It is fatal
// regardless of Config.TrapContractViolations.
var errNullOutput = fmt.Errorf("%w: output", frei0r.ErrNullFrame)

// getPluginInfo fills the host's plugin info record
func getPluginInfo(out *frei0r.PluginInfo) error {
	reg, err := currentRegistration()
	if err != nil {
		return err
	}
	d := reg.driver
	major, minor := d.Versions()

	out.Name = reg.name
	out.Author = reg.author
	out.PluginType = d.Kind().PluginType()
	out.ColorModel = d.Info().ColorModel
	out.Frei0rVersion = frei0r.MajorVersion
	out.MajorVersion = major
	out.MinorVersion = minor
	out.NumParams = int32(d.NumParams())
	out.Explanation = reg.explanation
	return nil
}

// getParamInfo fills the host's parameter info record for index
func getParamInfo(out *frei0r.ParamInfo, index int) error {
	reg, err := currentRegistration()
	if err != nil {
		return err
	}
	info, err := reg.driver.Describe(index)
	if err != nil {
		return err
	}

	out.Name = reg.params[index].name
	out.Type = info.Kind.ParamType()
	out.Explanation = reg.params[index].explanation
	return nil
}

// setParamValue decodes the block according to the kind of parameter index
func setParamValue(h Handle, block unsafe.Pointer, index int) error {
	if block == nil {
		return frei0r.ErrNullParamBlock
	}
	d, err := Registered()
	if err != nil {
		return err
	}
	info, err := d.Describe(index)
	if err != nil {
		return err
	}

	var v param.Value
	switch info.Kind {
	case param.KindBool:
		v = param.Bool(frei0r.ReadBool(block))
	case param.KindDouble:
		v = param.Double(frei0r.ReadDouble(block))
	case param.KindColor:
		c := frei0r.ReadColor(block)
		v = param.Color{R: c.R, G: c.G, B: c.B}
	case param.KindPosition:
		p := frei0r.ReadPosition(block)
		v = param.Position{X: p.X, Y: p.Y}
	case param.KindString:
		v = param.String(frei0r.ReadString(block))
	default:
		return fmt.Errorf("%w: %s", frei0r.ErrUnsupportedParam, info.Kind)
	}
	return SetParam(h, index, v)
}

// getParamValue encodes the value of parameter index into the block. For
// string parameters the block receives a pointer owned by the instance.
func getParamValue(h Handle, block unsafe.Pointer, index int) (err error) {
	if block == nil {
		return frei0r.ErrNullParamBlock
	}
	inst, err := getInstance(h)
	if err != nil {
		return err
	}
	defer recoverPanic("get parameter", &err)
	v, err := inst.getParam(index)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case param.Bool:
		frei0r.WriteBool(block, bool(v))
	case param.Double:
		frei0r.WriteDouble(block, float64(v))
	case param.Color:
		frei0r.WriteColor(block, frei0r.ParamColor{R: v.R, G: v.G, B: v.B})
	case param.Position:
		frei0r.WritePosition(block, frei0r.ParamPosition{X: v.X, Y: v.Y})
	case param.String:
		frei0r.WriteString(block, inst.hostString(index, string(v)))
	default:
		return fmt.Errorf("%w: %T", frei0r.ErrUnsupportedParam, v)
	}
	return nil
}

// update2 wraps the frames of one update call and runs the plugin. Only the
// inputs the plugin kind declares are touched; the rest may be null.
func update2(h Handle, time float64, in1, in2, in3, out unsafe.Pointer) (err error) {
	if out == nil {
		return errNullOutput
	}
	inst, err := getInstance(h)
	if err != nil {
		return err
	}
	defer recoverPanic("update", &err)

	var in frames
	ptrs := [maxInputs]unsafe.Pointer{in1, in2, in3}
	for i, p := range ptrs[:inst.kind.Inputs()] {
		if p == nil {
			return fmt.Errorf("%w: input %d", frei0r.ErrNullFrame, i+1)
		}
		in[i] = viewFrame(p, inst.frameLength)
	}
	return inst.update(time, &in, viewFrame(out, inst.frameLength))
}

// isNullOutput reports whether err came from a missing output frame
func isNullOutput(err error) bool {
	return errors.Is(err, errNullOutput)
}
