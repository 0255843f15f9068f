package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// drawError refines InvalidOperation raised by a draw call. indexed is set
// for calls that read the element array buffer.
func (c *Context) drawError(op string, code ErrorCode, indexed bool) error {
	switch code {
	case InvalidEnum, InvalidValue, InvalidFramebufferOperation:
		return c.plain(op, code)
	case InvalidOperation:
		if c.getInteger(rawgl.VertexArrayBinding) == 0 {
			return c.fail(&Error{Op: op, Kind: KindNoVertexArrayBound, Code: code})
		}
		if indexed && c.getInteger(rawgl.ElementArrayBufferBinding) == 0 {
			return c.fail(&Error{Op: op, Kind: KindUnboundTarget, Code: code, BufferTarget: ElementArrayBuffer})
		}
		return c.plain(op, code)
	}
	return c.unclassified(op, code)
}

// DrawArrays renders count vertices starting at first.
func (c *Context) DrawArrays(mode DrawMode, first, count int32) error {
	c.fns.DrawArrays(mode.GLenum(), first, count)
	if code := c.poll(); code != NoError {
		return c.drawError("glDrawArrays", code, false)
	}
	return nil
}

// DrawArraysInstanced renders instances copies of the vertex range.
func (c *Context) DrawArraysInstanced(mode DrawMode, first, count, instances int32) error {
	c.fns.DrawArraysInstanced(mode.GLenum(), first, count, instances)
	if code := c.poll(); code != NoError {
		return c.drawError("glDrawArraysInstanced", code, false)
	}
	return nil
}

// DrawElements renders count indices read from the bound element array
// buffer at byte offset.
func (c *Context) DrawElements(mode DrawMode, count int32, typ IndicesType, offset uintptr) error {
	c.fns.DrawElements(mode.GLenum(), count, typ.GLenum(), offset)
	if code := c.poll(); code != NoError {
		return c.drawError("glDrawElements", code, true)
	}
	return nil
}

// DrawElementsInstanced renders instances copies of the indexed range.
func (c *Context) DrawElementsInstanced(mode DrawMode, count int32, typ IndicesType, offset uintptr, instances int32) error {
	c.fns.DrawElementsInstanced(mode.GLenum(), count, typ.GLenum(), offset, instances)
	if code := c.poll(); code != NoError {
		return c.drawError("glDrawElementsInstanced", code, true)
	}
	return nil
}
