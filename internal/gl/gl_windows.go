//go:build windows

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// DefaultLibrary is opened by DefaultLoader when no library is given.
const DefaultLibrary = "opengl32.dll"

// DefaultLoader loads opengl32.dll. Entry points past OpenGL 1.1 only exist
// through wglGetProcAddress; the rest are plain DLL exports.
func DefaultLoader(library string) (ProcAddressFunc, error) {
	if library == "" {
		library = DefaultLibrary
	}
	dll, err := windows.LoadLibrary(library)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", library, err)
	}
	proc, err := windows.GetProcAddress(dll, "wglGetProcAddress")
	if err != nil {
		return nil, fmt.Errorf("resolve wglGetProcAddress: %w", err)
	}
	var wglGetProcAddress func(name string) uintptr
	purego.RegisterFunc(&wglGetProcAddress, proc)

	return func(name string) uintptr {
		addr := wglGetProcAddress(name)
		switch addr {
		// Some drivers report failure with small sentinels instead of NULL.
		case 0, 1, 2, 3, ^uintptr(0):
			addr, err := windows.GetProcAddress(dll, name)
			if err != nil {
				return 0
			}
			return addr
		}
		return addr
	}, nil
}
