package plugin

import "unsafe"

// viewFrame exposes n pixels at p as a slice without copying. The slice
// aliases host memory and must not outlive the call that received p.
var viewFrame = func(p unsafe.Pointer, n int) []uint32 {
	return unsafe.Slice((*uint32)(p), n)
}
