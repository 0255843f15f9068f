package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// GenVertexArrays fills dst with unused vertex array names.
func (c *Context) GenVertexArrays(dst []VertexArray) error {
	n, e := sizei("glGenVertexArrays", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.GenVertexArrays(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified("glGenVertexArrays", code)
	}
	return nil
}

// GenVertexArray returns one unused vertex array name.
func (c *Context) GenVertexArray() (VertexArray, error) {
	var a [1]VertexArray
	err := c.GenVertexArrays(a[:])
	return a[0], err
}

// DeleteVertexArrays deletes vertex arrays. Deleting the bound vertex array
// reverts the binding to zero.
func (c *Context) DeleteVertexArrays(arrays ...VertexArray) error {
	n, e := sizei("glDeleteVertexArrays", "n", len(arrays))
	if e != nil {
		return c.fail(e)
	}
	c.fns.DeleteVertexArrays(n, names(arrays))
	if code := c.poll(); code != NoError {
		return c.unclassified("glDeleteVertexArrays", code)
	}
	return nil
}

// IsVertexArray reports whether a names a vertex array object.
func (c *Context) IsVertexArray(a VertexArray) bool {
	return c.fns.IsVertexArray(a.v)
}

// BindVertexArray binds array. The zero VertexArray unbinds.
func (c *Context) BindVertexArray(array VertexArray) error {
	const op = "glBindVertexArray"
	c.fns.BindVertexArray(array.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLVertexArray, Code: code, VertexArray: array})
	default:
		return c.unclassified(op, code)
	}
}

// attribIndexError refines InvalidValue raised by a call taking a vertex
// attribute index.
func (c *Context) attribIndexError(op string, code ErrorCode, index uint32) error {
	if index >= uint32(c.getInteger(rawgl.MaxVertexAttribs)) {
		return c.fail(&Error{Op: op, Kind: KindOutOfBoundsVertexAttributeIndex, Code: code, Index: index})
	}
	return c.plain(op, code)
}

// attribStateError refines InvalidOperation raised by a call that changes
// the state of the bound vertex array.
func (c *Context) attribStateError(op string, code ErrorCode, offset uintptr) error {
	if c.getInteger(rawgl.VertexArrayBinding) == 0 {
		return c.fail(&Error{Op: op, Kind: KindNoVertexArrayBound, Code: code})
	}
	if offset != 0 && c.getInteger(rawgl.ArrayBufferBinding) == 0 {
		return c.fail(&Error{Op: op, Kind: KindUnboundTarget, Code: code, BufferTarget: ArrayBuffer})
	}
	return c.plain(op, code)
}

func (c *Context) attribResult(op string, index uint32, offset uintptr) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.attribIndexError(op, code, index)
	case InvalidOperation:
		return c.attribStateError(op, code, offset)
	default:
		return c.unclassified(op, code)
	}
}

// EnableVertexAttribArray enables attribute index of the bound vertex array.
func (c *Context) EnableVertexAttribArray(index uint32) error {
	c.fns.EnableVertexAttribArray(index)
	return c.attribResult("glEnableVertexAttribArray", index, 0)
}

// DisableVertexAttribArray disables attribute index of the bound vertex
// array.
func (c *Context) DisableVertexAttribArray(index uint32) error {
	c.fns.DisableVertexAttribArray(index)
	return c.attribResult("glDisableVertexAttribArray", index, 0)
}

// VertexAttribFloatPointer describes attribute index as read from the
// array buffer at offset and converted to floating point. If normalised,
// integer data is mapped to [-1,1] or [0,1].
func (c *Context) VertexAttribFloatPointer(index uint32, size VertexAttributeSize, typ VertexAttributeFloatType, normalised bool, stride int32, offset uintptr) error {
	c.fns.VertexAttribPointer(index, size.GLint(), typ.GLenum(), normalised, stride, offset)
	return c.attribResult("glVertexAttribPointer", index, offset)
}

// VertexAttribIntegerPointer describes attribute index as integer data read
// without conversion.
func (c *Context) VertexAttribIntegerPointer(index uint32, size VertexAttributeSize, typ VertexAttributeIntegerType, stride int32, offset uintptr) error {
	c.fns.VertexAttribIPointer(index, size.GLint(), typ.GLenum(), stride, offset)
	return c.attribResult("glVertexAttribIPointer", index, offset)
}

// VertexAttribF64Pointer describes attribute index as double precision
// data. Requires OpenGL 4.1.
func (c *Context) VertexAttribF64Pointer(index uint32, size VertexAttributeSize, stride int32, offset uintptr) error {
	const op = "glVertexAttribLPointer"
	if c.fns.VertexAttribLPointer == nil {
		return c.missing(op)
	}
	c.fns.VertexAttribLPointer(index, size.GLint(), rawgl.Double, stride, offset)
	return c.attribResult(op, index, offset)
}

// VertexAttribBGRAColourPointer describes attribute index as packed
// 2_10_10_10_REV colour. With bgra set the components are read in BGRA
// order, otherwise as four RGBA components.
func (c *Context) VertexAttribBGRAColourPointer(index uint32, bgra, signed bool, stride int32, offset uintptr) error {
	size := int32(4)
	if bgra {
		size = rawgl.BGRA
	}
	typ := uint32(rawgl.UnsignedInt2101010Rev)
	if signed {
		typ = rawgl.Int2101010Rev
	}
	c.fns.VertexAttribPointer(index, size, typ, true, stride, offset)
	return c.attribResult("glVertexAttribPointer", index, offset)
}

// VertexAttribU8ColourPointer describes attribute index as unsigned byte
// colour data. A zero size selects BGRA order.
func (c *Context) VertexAttribU8ColourPointer(index uint32, size VertexAttributeSize, normalised bool, stride int32, offset uintptr) error {
	n := size.GLint()
	if size == 0 {
		n = rawgl.BGRA
	}
	c.fns.VertexAttribPointer(index, n, rawgl.UnsignedByte, normalised, stride, offset)
	return c.attribResult("glVertexAttribPointer", index, offset)
}

// VertexAttribF32ColourPointer describes attribute index as packed
// 10F_11F_11F_REV colour with three components.
func (c *Context) VertexAttribF32ColourPointer(index uint32, normalised bool, stride int32, offset uintptr) error {
	c.fns.VertexAttribPointer(index, 3, rawgl.UnsignedInt10f11f11fRev, normalised, stride, offset)
	return c.attribResult("glVertexAttribPointer", index, offset)
}

// VertexAttribDivisor sets how many instances pass between updates of
// attribute index. Zero advances it per vertex.
func (c *Context) VertexAttribDivisor(index, divisor uint32) error {
	c.fns.VertexAttribDivisor(index, divisor)
	return c.attribResult("glVertexAttribDivisor", index, 0)
}

// The remaining calls act on a vertex array directly. They require
// OpenGL 4.5.

// CreateVertexArrays fills dst with new, initialised vertex array objects.
func (c *Context) CreateVertexArrays(dst []VertexArray) error {
	const op = "glCreateVertexArrays"
	if c.fns.CreateVertexArrays == nil {
		return c.missing(op)
	}
	n, e := sizei("glCreateVertexArrays", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.CreateVertexArrays(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified(op, code)
	}
	return nil
}

// CreateVertexArray returns one new vertex array object.
func (c *Context) CreateVertexArray() (VertexArray, error) {
	var a [1]VertexArray
	err := c.CreateVertexArrays(a[:])
	return a[0], err
}

// vertexArrayResult classifies errors of calls naming a vertex array and an
// attribute or binding index bounded by limit.
func (c *Context) vertexArrayResult(op string, array VertexArray, index uint32, limit uint32) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		if index >= uint32(c.getInteger(limit)) {
			if limit == rawgl.MaxVertexAttribs {
				return c.fail(&Error{Op: op, Kind: KindOutOfBoundsVertexAttributeIndex, Code: code, Index: index, VertexArray: array})
			}
			return c.fail(&Error{Op: op, Kind: KindOutOfBoundsBindingIndex, Code: code, Index: index, VertexArray: array})
		}
		return c.plain(op, code)
	case InvalidOperation:
		if !c.fns.IsVertexArray(array.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLVertexArray, Code: code, VertexArray: array})
		}
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// EnableVertexArrayAttrib enables attribute index of array.
func (c *Context) EnableVertexArrayAttrib(array VertexArray, index uint32) error {
	const op = "glEnableVertexArrayAttrib"
	if c.fns.EnableVertexArrayAttrib == nil {
		return c.missing(op)
	}
	c.fns.EnableVertexArrayAttrib(array.v, index)
	return c.vertexArrayResult(op, array, index, rawgl.MaxVertexAttribs)
}

// DisableVertexArrayAttrib disables attribute index of array.
func (c *Context) DisableVertexArrayAttrib(array VertexArray, index uint32) error {
	const op = "glDisableVertexArrayAttrib"
	if c.fns.DisableVertexArrayAttrib == nil {
		return c.missing(op)
	}
	c.fns.DisableVertexArrayAttrib(array.v, index)
	return c.vertexArrayResult(op, array, index, rawgl.MaxVertexAttribs)
}

// VertexArrayElementBuffer binds buffer as the element array of array.
func (c *Context) VertexArrayElementBuffer(array VertexArray, buffer Buffer) error {
	const op = "glVertexArrayElementBuffer"
	if c.fns.VertexArrayElementBuffer == nil {
		return c.missing(op)
	}
	c.fns.VertexArrayElementBuffer(array.v, buffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidOperation:
		if !c.fns.IsVertexArray(array.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLVertexArray, Code: code, VertexArray: array})
		}
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLBuffer, Code: code, Buffer: buffer})
	default:
		return c.unclassified(op, code)
	}
}

// VertexArrayVertexBuffer binds buffer to vertex buffer binding point
// bindingIndex of array.
func (c *Context) VertexArrayVertexBuffer(array VertexArray, bindingIndex uint32, buffer Buffer, offset int, stride int32) error {
	const op = "glVertexArrayVertexBuffer"
	if c.fns.VertexArrayVertexBuffer == nil {
		return c.missing(op)
	}
	c.fns.VertexArrayVertexBuffer(array.v, bindingIndex, buffer.v, offset, stride)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		if bindingIndex >= uint32(c.getInteger(rawgl.MaxVertexAttribBindings)) {
			return c.fail(&Error{Op: op, Kind: KindOutOfBoundsBindingIndex, Code: code, Index: bindingIndex, VertexArray: array})
		}
		return c.plain(op, code)
	case InvalidOperation:
		if !c.fns.IsVertexArray(array.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLVertexArray, Code: code, VertexArray: array})
		}
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLBuffer, Code: code, Buffer: buffer})
	default:
		return c.unclassified(op, code)
	}
}

// VertexArrayAttribFormat describes the layout of attribute attribIndex of
// array as floating point data at relativeOffset within its vertex.
func (c *Context) VertexArrayAttribFormat(array VertexArray, attribIndex uint32, size VertexAttributeSize, typ VertexAttributeFloatType, normalised bool, relativeOffset uint32) error {
	const op = "glVertexArrayAttribFormat"
	if c.fns.VertexArrayAttribFormat == nil {
		return c.missing(op)
	}
	c.fns.VertexArrayAttribFormat(array.v, attribIndex, size.GLint(), typ.GLenum(), normalised, relativeOffset)
	return c.vertexArrayResult(op, array, attribIndex, rawgl.MaxVertexAttribs)
}

// VertexArrayAttribIFormat describes attribute attribIndex of array as
// integer data.
func (c *Context) VertexArrayAttribIFormat(array VertexArray, attribIndex uint32, size VertexAttributeSize, typ VertexAttributeIntegerType, relativeOffset uint32) error {
	const op = "glVertexArrayAttribIFormat"
	if c.fns.VertexArrayAttribIFormat == nil {
		return c.missing(op)
	}
	c.fns.VertexArrayAttribIFormat(array.v, attribIndex, size.GLint(), typ.GLenum(), relativeOffset)
	return c.vertexArrayResult(op, array, attribIndex, rawgl.MaxVertexAttribs)
}

// VertexArrayAttribBinding sources attribute attribIndex of array from
// vertex buffer binding point bindingIndex.
func (c *Context) VertexArrayAttribBinding(array VertexArray, attribIndex, bindingIndex uint32) error {
	const op = "glVertexArrayAttribBinding"
	if c.fns.VertexArrayAttribBinding == nil {
		return c.missing(op)
	}
	c.fns.VertexArrayAttribBinding(array.v, attribIndex, bindingIndex)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		if attribIndex >= uint32(c.getInteger(rawgl.MaxVertexAttribs)) {
			return c.fail(&Error{Op: op, Kind: KindOutOfBoundsVertexAttributeIndex, Code: code, Index: attribIndex, VertexArray: array})
		}
		if bindingIndex >= uint32(c.getInteger(rawgl.MaxVertexAttribBindings)) {
			return c.fail(&Error{Op: op, Kind: KindOutOfBoundsBindingIndex, Code: code, Index: bindingIndex, VertexArray: array})
		}
		return c.plain(op, code)
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLVertexArray, Code: code, VertexArray: array})
	default:
		return c.unclassified(op, code)
	}
}
