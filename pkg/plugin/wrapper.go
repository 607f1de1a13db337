package plugin

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
)

// Handle identifies a live instance. Zero is never a valid handle. The host
// never sees a handle: it gets the address of a token allocated for the
// instance, see hostToken.
type Handle uintptr

var (
	// Live instances indexed by handle, and handles by token address
	instances   = make(map[Handle]*instance)
	tokens      = make(map[uintptr]Handle)
	instancesMu sync.RWMutex
	nextHandle  Handle = 1
)

// registration is the registered plugin together with the C copies of its
// metadata strings. The copies live until the plugin is replaced.
type registration struct {
	driver      Driver
	name        *byte
	author      *byte
	explanation *byte
	params      []paramStrings
}

type paramStrings struct {
	name        *byte
	explanation *byte
}

var (
	registered *registration
	registryMu sync.RWMutex
)

// Configuration for plugin behavior
type Config struct {
	// ValidateGeometry makes construct reject frame sizes that are not
	// positive multiples of 8 no larger than 2048
	ValidateGeometry bool

	// TrapContractViolations aborts the host process on calls that break the
	// frei0r contract, such as unknown handles or out of range indices. When
	// false they are logged and ignored. A null output frame always aborts.
	TrapContractViolations bool

	// ProfileUpdates records the duration of every update call
	ProfileUpdates bool
}

var (
	globalConfig = Config{
		ValidateGeometry:       true,
		TrapContractViolations: true,
	}
	configMu sync.RWMutex
)

var profiler = debug.NewProfiler(1024)

// Register makes d the plugin exposed by this library. It is normally called
// once from an init function; calling it again replaces the previous plugin,
// which must not have live instances.
func Register(d Driver) {
	reg := &registration{
		driver:      d,
		name:        strAlloc.CString(d.Info().Name),
		author:      strAlloc.CString(d.Info().Author),
		explanation: strAlloc.CString(d.Info().Explanation),
	}
	for _, p := range d.Params() {
		reg.params = append(reg.params, paramStrings{
			name:        strAlloc.CString(p.Name),
			explanation: strAlloc.CString(p.Explanation),
		})
	}

	registryMu.Lock()
	old := registered
	registered = reg
	registryMu.Unlock()

	if old != nil {
		old.release()
	}
	debug.Debug("registered %s plugin %q with %d parameters", d.Kind(), d.Info().Name, d.NumParams())
}

// Registered returns the registered plugin
func Registered() (Driver, error) {
	reg, err := currentRegistration()
	if err != nil {
		return nil, err
	}
	return reg.driver, nil
}

func currentRegistration() (*registration, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registered == nil {
		return nil, frei0r.ErrNotRegistered
	}
	return registered, nil
}

func (r *registration) release() {
	strAlloc.Free(r.name)
	strAlloc.Free(r.author)
	strAlloc.Free(r.explanation)
	for _, p := range r.params {
		strAlloc.Free(p.name)
		strAlloc.Free(p.explanation)
	}
	r.params = nil
}

// SetConfig sets the global plugin configuration
func SetConfig(cfg Config) {
	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	profiler.SetEnabled(cfg.ProfileUpdates)
}

// CurrentConfig returns the global plugin configuration
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}

// Profiler returns the profiler fed by update calls when
// Config.ProfileUpdates is set
func Profiler() *debug.Profiler {
	return profiler
}

// registerInstance stores inst and returns its new handle
func registerInstance(inst *instance) Handle {
	token := strAlloc.CString("")

	instancesMu.Lock()
	defer instancesMu.Unlock()
	h := nextHandle
	nextHandle++
	inst.handle = h
	inst.token = token
	instances[h] = inst
	tokens[uintptr(unsafe.Pointer(token))] = h
	return h
}

// unregisterInstance removes and returns the instance behind h
func unregisterInstance(h Handle) (*instance, error) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	inst, ok := instances[h]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", frei0r.ErrUnknownHandle, uintptr(h))
	}
	delete(instances, h)
	delete(tokens, uintptr(unsafe.Pointer(inst.token)))
	return inst, nil
}

// hostToken returns the pointer the host holds for the instance behind h.
// It addresses memory outside the Go heap that stays allocated until the
// instance is destroyed.
func hostToken(h Handle) (unsafe.Pointer, error) {
	inst, err := getInstance(h)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(inst.token), nil
}

// tokenHandle maps a pointer from the host back to its handle. Unknown
// pointers map to zero.
func tokenHandle(p unsafe.Pointer) Handle {
	if p == nil {
		return 0
	}
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return tokens[uintptr(p)]
}

// getInstance retrieves an instance by handle
func getInstance(h Handle) (*instance, error) {
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	if h == 0 {
		return nil, fmt.Errorf("%w: null handle", frei0r.ErrUnknownHandle)
	}
	inst, ok := instances[h]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", frei0r.ErrUnknownHandle, uintptr(h))
	}
	return inst, nil
}

// liveInstances returns the number of constructed, not yet destroyed instances
func liveInstances() int {
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return len(instances)
}

// recoverPanic converts a panic raised by plugin code into an error so it
// never unwinds into the host
func recoverPanic(operation string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: plugin panicked: %v", operation, r)
	}
}
