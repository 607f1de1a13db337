package plugin

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "frei0r/frei0r.h"
import "C"
import (
	"unsafe"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
)

// violation handles a call that breaks the host contract
func violation(operation string, err error) {
	if isNullOutput(err) || CurrentConfig().TrapContractViolations {
		debug.Fatal("%s: %v", operation, err)
	}
	debug.Error("%s: %v (ignored)", operation, err)
}

//export f0r_init
func f0r_init() C.int {
	if _, err := Registered(); err != nil {
		debug.Error("f0r_init: %v", err)
		return 0
	}
	return 1
}

//export f0r_deinit
func f0r_deinit() {
	if n := liveInstances(); n > 0 {
		debug.Warn("f0r_deinit: %d instances still alive", n)
	}
	if profiler.IsEnabled() {
		debug.Info("update profile:\n%s", profiler.Report())
	}
}

//export f0r_get_plugin_info
func f0r_get_plugin_info(info unsafe.Pointer) {
	if info == nil {
		violation("f0r_get_plugin_info", frei0r.ErrNullParamBlock)
		return
	}
	if err := getPluginInfo((*frei0r.PluginInfo)(info)); err != nil {
		violation("f0r_get_plugin_info", err)
	}
}

//export f0r_get_param_info
func f0r_get_param_info(info unsafe.Pointer, index C.int) {
	if info == nil {
		violation("f0r_get_param_info", frei0r.ErrNullParamBlock)
		return
	}
	if err := getParamInfo((*frei0r.ParamInfo)(info), int(index)); err != nil {
		violation("f0r_get_param_info", err)
	}
}
