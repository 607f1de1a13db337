package plugin

import (
	"fmt"
	"math"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
)

// The functions below are the typed form of the frei0r entry points. The
// exported C symbols decode their arguments and call them; Go hosts such as
// the render command call them directly.

// Construct creates an instance of the registered plugin for frames of the
// given size.
func Construct(width, height int) (h Handle, err error) {
	reg, err := currentRegistration()
	if err != nil {
		return 0, err
	}
	if CurrentConfig().ValidateGeometry && !frei0r.ValidGeometry(width, height) {
		return 0, fmt.Errorf("%w: %dx%d", frei0r.ErrInvalidGeometry, width, height)
	}
	if width <= 0 || height <= 0 || int64(width)*int64(height) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %dx%d", frei0r.ErrInvalidGeometry, width, height)
	}

	defer recoverPanic("construct", &err)
	inst := newInstance(reg.driver, width, height)
	h = registerInstance(inst)
	debug.Debug("constructed %q instance %#x (%dx%d)", reg.driver.Info().Name, uintptr(h), width, height)
	return h, nil
}

// Destruct destroys the instance behind h. The handle is invalid afterwards.
func Destruct(h Handle) error {
	inst, err := unregisterInstance(h)
	if err != nil {
		return err
	}
	inst.release()
	debug.Debug("destroyed instance %#x", uintptr(h))
	return nil
}

// SetParam sets the parameter at index. v must be of the parameter's kind.
func SetParam(h Handle, index int, v param.Value) (err error) {
	inst, err := getInstance(h)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: nil value", frei0r.ErrKindMismatch)
	}
	defer recoverPanic("set parameter", &err)
	if err := inst.setParam(index, v); err != nil {
		return err
	}
	debug.Debug("instance %#x: parameter %d = %s", uintptr(h), index, param.Format(v))
	return nil
}

// GetParam returns the current value of the parameter at index.
func GetParam(h Handle, index int) (v param.Value, err error) {
	inst, err := getInstance(h)
	if err != nil {
		return nil, err
	}
	defer recoverPanic("get parameter", &err)
	return inst.getParam(index)
}

// Update renders one frame into out. inputs must hold at least as many frames
// as the plugin kind declares; extra frames are ignored. Every frame must
// hold exactly width*height pixels.
func Update(h Handle, time float64, out []uint32, inputs ...[]uint32) (err error) {
	inst, err := getInstance(h)
	if err != nil {
		return err
	}

	var in frames
	n := inst.kind.Inputs()
	if len(inputs) < n {
		return fmt.Errorf("%w: %s plugin takes %d inputs, got %d", frei0r.ErrNullFrame, inst.kind, n, len(inputs))
	}
	copy(in[:n], inputs)

	defer recoverPanic("update", &err)
	return inst.update(time, &in, out)
}

// Geometry returns the frame size the instance behind h was constructed with.
func Geometry(h Handle) (width, height int, err error) {
	inst, err := getInstance(h)
	if err != nil {
		return 0, 0, err
	}
	return inst.width, inst.height, nil
}
