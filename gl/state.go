package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// stateResult classifies calls whose errors only describe their arguments.
func (c *Context) stateResult(op string, expected ...ErrorCode) error {
	code := c.poll()
	if code == NoError {
		return nil
	}
	for _, e := range expected {
		if code == e {
			return c.plain(op, code)
		}
	}
	return c.unclassified(op, code)
}

// Enable enables capability.
func (c *Context) Enable(capability Capability) error {
	c.fns.Enable(capability.GLenum())
	return c.stateResult("glEnable", InvalidEnum)
}

// Disable disables capability.
func (c *Context) Disable(capability Capability) error {
	c.fns.Disable(capability.GLenum())
	return c.stateResult("glDisable", InvalidEnum)
}

// IsEnabled reports whether capability is enabled.
func (c *Context) IsEnabled(capability Capability) (bool, error) {
	on := c.fns.IsEnabled(capability.GLenum())
	if err := c.stateResult("glIsEnabled", InvalidEnum); err != nil {
		return false, err
	}
	return on, nil
}

// Clear clears the buffers in mask of the draw framebuffer to their clear
// values.
func (c *Context) Clear(mask ClearMask) error {
	c.fns.Clear(mask.Bits())
	return c.stateResult("glClear", InvalidValue, InvalidFramebufferOperation)
}

// ClearColour sets the colour Clear writes to colour buffers.
func (c *Context) ClearColour(r, g, b, a float32) error {
	c.fns.ClearColor(r, g, b, a)
	return c.stateResult("glClearColor")
}

// ClearDepth sets the depth Clear writes, clamped to [0,1].
func (c *Context) ClearDepth(depth float64) error {
	c.fns.ClearDepth(depth)
	return c.stateResult("glClearDepth")
}

// ClearStencil sets the stencil value Clear writes.
func (c *Context) ClearStencil(s int32) error {
	c.fns.ClearStencil(s)
	return c.stateResult("glClearStencil")
}

// Viewport sets the viewport transform.
func (c *Context) Viewport(x, y, width, height int32) error {
	c.fns.Viewport(x, y, width, height)
	return c.stateResult("glViewport", InvalidValue)
}

// DepthFunc sets the depth comparison.
func (c *Context) DepthFunc(fn CompareFunc) error {
	c.fns.DepthFunc(fn.GLenum())
	return c.stateResult("glDepthFunc", InvalidEnum)
}

// DepthMask enables or disables writing to the depth buffer.
func (c *Context) DepthMask(write bool) error {
	c.fns.DepthMask(write)
	return c.stateResult("glDepthMask")
}

// StencilFunc sets the stencil test for both faces.
func (c *Context) StencilFunc(fn CompareFunc, ref int32, mask uint32) error {
	c.fns.StencilFunc(fn.GLenum(), ref, mask)
	return c.stateResult("glStencilFunc", InvalidEnum)
}

// StencilFuncSeparate sets the stencil test for face.
func (c *Context) StencilFuncSeparate(face StencilFace, fn CompareFunc, ref int32, mask uint32) error {
	c.fns.StencilFuncSeparate(face.GLenum(), fn.GLenum(), ref, mask)
	return c.stateResult("glStencilFuncSeparate", InvalidEnum)
}

// StencilMask sets which stencil bits are writable for both faces.
func (c *Context) StencilMask(mask uint32) error {
	c.fns.StencilMask(mask)
	return c.stateResult("glStencilMask")
}

// StencilMaskSeparate sets which stencil bits are writable for face.
func (c *Context) StencilMaskSeparate(face StencilFace, mask uint32) error {
	c.fns.StencilMaskSeparate(face.GLenum(), mask)
	return c.stateResult("glStencilMaskSeparate", InvalidEnum)
}

// StencilOp sets the stencil actions for both faces.
func (c *Context) StencilOp(sfail, dpfail, dppass StencilOp) error {
	c.fns.StencilOp(sfail.GLenum(), dpfail.GLenum(), dppass.GLenum())
	return c.stateResult("glStencilOp", InvalidEnum)
}

// StencilOpSeparate sets the stencil actions for face.
func (c *Context) StencilOpSeparate(face StencilFace, sfail, dpfail, dppass StencilOp) error {
	c.fns.StencilOpSeparate(face.GLenum(), sfail.GLenum(), dpfail.GLenum(), dppass.GLenum())
	return c.stateResult("glStencilOpSeparate", InvalidEnum)
}

// BlendFunc sets the blend factors of every draw buffer.
func (c *Context) BlendFunc(src, dst BlendFactor) error {
	c.fns.BlendFunc(src.GLenum(), dst.GLenum())
	return c.stateResult("glBlendFunc", InvalidEnum)
}

// BlendFuncBuffer sets the blend factors of draw buffer buf. Requires
// OpenGL 4.0.
func (c *Context) BlendFuncBuffer(buf uint32, src, dst BlendFactor) error {
	const op = "glBlendFunci"
	if c.fns.BlendFunci == nil {
		return c.missing(op)
	}
	c.fns.BlendFunci(buf, src.GLenum(), dst.GLenum())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindOutOfBoundsDrawBuffer, Code: code, Index: buf})
	default:
		return c.unclassified(op, code)
	}
}

// PixelStorePackAlignment sets the row alignment ReadPixels writes with.
// Valid alignments are 1, 2, 4 and 8.
func (c *Context) PixelStorePackAlignment(alignment int32) error {
	c.fns.PixelStorei(rawgl.PackAlignment, alignment)
	return c.stateResult("glPixelStorei", InvalidValue)
}

// PixelStoreUnpackAlignment sets the row alignment texture uploads read
// with.
func (c *Context) PixelStoreUnpackAlignment(alignment int32) error {
	c.fns.PixelStorei(rawgl.UnpackAlignment, alignment)
	return c.stateResult("glPixelStorei", InvalidValue)
}

// ReadPixels reads a width by height block at (x, y) of the read
// framebuffer into dst. A nil dst writes to offset zero of a bound pixel
// pack buffer. dst must hold the whole block at the current pack alignment.
func (c *Context) ReadPixels(x, y, width, height int32, format TextureFormat, typ TexturePixelType, dst []byte) error {
	const op = "glReadPixels"
	if err := c.checkPackPixels(op, width, height, format, typ, dst); err != nil {
		return err
	}
	c.fns.ReadPixels(x, y, width, height, format.GLenum(), typ.GLenum(), pointer(dst))
	return c.stateResult(op, InvalidEnum, InvalidValue, InvalidOperation, InvalidFramebufferOperation)
}
