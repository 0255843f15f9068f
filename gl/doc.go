// Package gl is a typed wrapper over the OpenGL 3.3–4.5 Core profile.
//
// Object names are distinct handle types, enumerated parameters are distinct
// integer types whose constants carry the OpenGL value, and every wrapper
// reads the error flag after its call and reports a classified *Error.
//
// A Context is loaded once per OpenGL context and must only be used from the
// thread that has that context current:
//
//	runtime.LockOSThread()
//	ctx, err := gl.LoadDefault(gl.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//	vbo, err := ctx.GenBuffer()
//
// Building with the glnocheck tag skips the error poll entirely; wrappers
// keep their signatures and only report conversion failures.
package gl
