//go:build darwin

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// DefaultLibrary is opened by DefaultLoader when no library is given.
const DefaultLibrary = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// DefaultLoader opens the OpenGL framework. macOS stops at 4.1, so the 4.4
// and 4.5 entry points always come back missing.
func DefaultLoader(library string) (ProcAddressFunc, error) {
	if library == "" {
		library = DefaultLibrary
	}
	handle, err := purego.Dlopen(library, purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", library, err)
	}
	return func(name string) uintptr {
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}, nil
}
