//go:build linux || freebsd

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// DefaultLibrary is opened by DefaultLoader when no library is given.
const DefaultLibrary = "libGL.so.1"

// DefaultLoader opens library (DefaultLibrary if empty) and resolves entry
// points through glXGetProcAddressARB, falling back to the library exports.
//
// GLX may hand out dispatch stubs for names the driver does not implement, so
// a non-zero address does not prove the entry point is usable.
func DefaultLoader(library string) (ProcAddressFunc, error) {
	if library == "" {
		library = DefaultLibrary
	}
	handle, err := purego.Dlopen(library, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", library, err)
	}

	var getProcAddress func(name string) uintptr
	if addr, err := purego.Dlsym(handle, "glXGetProcAddressARB"); err == nil {
		purego.RegisterFunc(&getProcAddress, addr)
	}

	return func(name string) uintptr {
		if getProcAddress != nil {
			if addr := getProcAddress(name); addr != 0 {
				return addr
			}
		}
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}, nil
}
