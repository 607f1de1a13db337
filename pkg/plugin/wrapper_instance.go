package plugin

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "frei0r/frei0r.h"
import "C"
import (
	"unsafe"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
)

// Pointer arguments are declared as unsafe.Pointer, which cgo exports as
// void*. The instance and param typedefs are void* already and the frame
// pointers are only ever viewed through viewFrame.

//export f0r_construct
func f0r_construct(width, height C.uint) unsafe.Pointer {
	h, err := Construct(int(width), int(height))
	if err != nil {
		debug.Error("f0r_construct: %v", err)
		return nil
	}
	token, err := hostToken(h)
	if err != nil {
		debug.Error("f0r_construct: %v", err)
		return nil
	}
	return token
}

//export f0r_destruct
func f0r_destruct(instance unsafe.Pointer) {
	if err := Destruct(tokenHandle(instance)); err != nil {
		violation("f0r_destruct", err)
	}
}

//export f0r_set_param_value
func f0r_set_param_value(instance, param unsafe.Pointer, index C.int) {
	if err := setParamValue(tokenHandle(instance), param, int(index)); err != nil {
		violation("f0r_set_param_value", err)
	}
}

//export f0r_get_param_value
func f0r_get_param_value(instance, param unsafe.Pointer, index C.int) {
	if err := getParamValue(tokenHandle(instance), param, int(index)); err != nil {
		violation("f0r_get_param_value", err)
	}
}

//export f0r_update
func f0r_update(instance unsafe.Pointer, time C.double, inframe, outframe unsafe.Pointer) {
	err := update2(tokenHandle(instance), float64(time), inframe, nil, nil, outframe)
	if err != nil {
		violation("f0r_update", err)
	}
}

//export f0r_update2
func f0r_update2(instance unsafe.Pointer, time C.double,
	inframe1, inframe2, inframe3, outframe unsafe.Pointer) {
	err := update2(tokenHandle(instance), float64(time), inframe1, inframe2, inframe3, outframe)
	if err != nil {
		violation("f0r_update2", err)
	}
}
