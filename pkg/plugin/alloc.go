package plugin

// Allocator hands out NUL-terminated strings that stay valid outside the Go
// heap's control, for metadata and string parameter values read by the host.
type Allocator interface {
	// CString returns a NUL-terminated copy of s
	CString(s string) *byte
	// Free releases a string returned by CString. Free(nil) is a no-op.
	Free(p *byte)
}

// strAlloc allocates every string handed to the host
var strAlloc Allocator = cAllocator{}
