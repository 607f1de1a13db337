package plugin

// #include <stdlib.h>
import "C"
import "unsafe"

// cAllocator allocates strings on the C heap
type cAllocator struct{}

func (cAllocator) CString(s string) *byte {
	return (*byte)(unsafe.Pointer(C.CString(s)))
}

func (cAllocator) Free(p *byte) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}
