package gl

import (
	"unsafe"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// The Named* wrappers act on a buffer directly instead of through a binding
// target. They require OpenGL 4.5.

// namedBufferError refines InvalidOperation raised by a direct-state-access
// buffer call.
func (c *Context) namedBufferError(op string, code ErrorCode, buffer Buffer, checks bufferChecks) error {
	if !c.fns.IsBuffer(buffer.v) {
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLBuffer, Code: code, Buffer: buffer})
	}
	param := func(pname uint32) int32 {
		var v int32
		c.fns.GetNamedBufferParameteriv(buffer.v, pname, &v)
		return v
	}
	if checks&checkMapped != 0 && param(rawgl.BufferMapped) != rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindBufferMapped, Code: code, Buffer: buffer})
	}
	if checks&checkNotMapped != 0 && param(rawgl.BufferMapped) == rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindBufferNotMapped, Code: code, Buffer: buffer})
	}
	if checks&checkImmutable != 0 && param(rawgl.BufferImmutableStorage) != rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindImmutableBuffer, Code: code, Buffer: buffer})
	}
	return c.plain(op, code)
}

// CreateBuffers fills dst with new, initialised buffer objects.
func (c *Context) CreateBuffers(dst []Buffer) error {
	const op = "glCreateBuffers"
	if c.fns.CreateBuffers == nil {
		return c.missing(op)
	}
	n, e := sizei("glCreateBuffers", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.CreateBuffers(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified(op, code)
	}
	return nil
}

// CreateBuffer returns one new buffer object.
func (c *Context) CreateBuffer() (Buffer, error) {
	var b [1]Buffer
	err := c.CreateBuffers(b[:])
	return b[0], err
}

func (c *Context) namedBufferData(buffer Buffer, size int, data unsafe.Pointer, usage BufferUsage) error {
	const op = "glNamedBufferData"
	if c.fns.NamedBufferData == nil {
		return c.missing(op)
	}
	c.fns.NamedBufferData(buffer.v, size, data, usage.GLenum())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.namedBufferError(op, code, buffer, checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

// NamedBufferData replaces the data store of buffer with a copy of data.
func (c *Context) NamedBufferData(buffer Buffer, data []byte, usage BufferUsage) error {
	return c.namedBufferData(buffer, len(data), pointer(data), usage)
}

// NamedBufferDataSize replaces the data store of buffer with size bytes of
// undefined contents.
func (c *Context) NamedBufferDataSize(buffer Buffer, size int, usage BufferUsage) error {
	return c.namedBufferData(buffer, size, nil, usage)
}

// NamedBufferSubData copies data into buffer at offset.
func (c *Context) NamedBufferSubData(buffer Buffer, offset int, data []byte) error {
	const op = "glNamedBufferSubData"
	if c.fns.NamedBufferSubData == nil {
		return c.missing(op)
	}
	c.fns.NamedBufferSubData(buffer.v, offset, len(data), pointer(data))
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.namedBufferError(op, code, buffer, checkMapped|checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) namedBufferStorage(buffer Buffer, size int, data unsafe.Pointer, flags BufferStorageFlags) error {
	const op = "glNamedBufferStorage"
	if c.fns.NamedBufferStorage == nil {
		return c.missing(op)
	}
	c.fns.NamedBufferStorage(buffer.v, size, data, flags.Bits())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.namedBufferError(op, code, buffer, checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

// NamedBufferStorage creates an immutable data store for buffer, initialised
// from data.
func (c *Context) NamedBufferStorage(buffer Buffer, data []byte, flags BufferStorageFlags) error {
	return c.namedBufferStorage(buffer, len(data), pointer(data), flags)
}

// NamedBufferStorageSize creates an immutable data store of size bytes with
// undefined contents.
func (c *Context) NamedBufferStorageSize(buffer Buffer, size int, flags BufferStorageFlags) error {
	return c.namedBufferStorage(buffer, size, nil, flags)
}

// MapNamedBuffer maps the whole data store of buffer.
func (c *Context) MapNamedBuffer(buffer Buffer, access BufferAccess) ([]byte, error) {
	const op = "glMapNamedBuffer"
	if c.fns.MapNamedBuffer == nil {
		return nil, c.missing(op)
	}
	ptr := c.fns.MapNamedBuffer(buffer.v, access.GLenum())
	switch code := c.poll(); code {
	case NoError:
	case InvalidEnum:
		return nil, c.plain(op, code)
	case InvalidOperation:
		return nil, c.namedBufferError(op, code, buffer, checkMapped)
	default:
		return nil, c.unclassified(op, code)
	}
	var size int64
	c.fns.GetNamedBufferParameteri64v(buffer.v, rawgl.BufferSize, &size)
	return mapped(ptr, size), nil
}

// MapNamedBufferRange maps length bytes at offset of buffer.
func (c *Context) MapNamedBufferRange(buffer Buffer, offset, length int, access BufferMapFlags) ([]byte, error) {
	const op = "glMapNamedBufferRange"
	if c.fns.MapNamedBufferRange == nil {
		return nil, c.missing(op)
	}
	ptr := c.fns.MapNamedBufferRange(buffer.v, offset, length, access.Bits())
	switch code := c.poll(); code {
	case NoError:
		return mapped(ptr, int64(length)), nil
	case InvalidValue:
		return nil, c.plain(op, code)
	case InvalidOperation:
		return nil, c.namedBufferError(op, code, buffer, checkMapped)
	default:
		return nil, c.unclassified(op, code)
	}
}

// UnmapNamedBuffer releases the mapping of buffer. See UnmapBuffer.
func (c *Context) UnmapNamedBuffer(buffer Buffer) (bool, error) {
	const op = "glUnmapNamedBuffer"
	if c.fns.UnmapNamedBuffer == nil {
		return false, c.missing(op)
	}
	ok := c.fns.UnmapNamedBuffer(buffer.v)
	switch code := c.poll(); code {
	case NoError:
		return ok, nil
	case InvalidOperation:
		return false, c.namedBufferError(op, code, buffer, checkNotMapped)
	default:
		return false, c.unclassified(op, code)
	}
}

// GetNamedBufferSubData copies len(dst) bytes at offset of buffer into dst.
func (c *Context) GetNamedBufferSubData(buffer Buffer, offset int, dst []byte) error {
	const op = "glGetNamedBufferSubData"
	if c.fns.GetNamedBufferSubData == nil {
		return c.missing(op)
	}
	c.fns.GetNamedBufferSubData(buffer.v, offset, len(dst), pointer(dst))
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.namedBufferError(op, code, buffer, checkMapped)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) namedBufferParameter(buffer Buffer, pname uint32) (int64, error) {
	const op = "glGetNamedBufferParameteri64v"
	if c.fns.GetNamedBufferParameteri64v == nil {
		return 0, c.missing(op)
	}
	var v int64
	c.fns.GetNamedBufferParameteri64v(buffer.v, pname, &v)
	switch code := c.poll(); code {
	case NoError:
		return v, nil
	case InvalidEnum:
		return 0, c.plain(op, code)
	case InvalidOperation:
		return 0, c.namedBufferError(op, code, buffer, 0)
	default:
		return 0, c.unclassified(op, code)
	}
}

func (c *Context) namedBufferBool(buffer Buffer, pname uint32) (bool, error) {
	v, err := c.namedBufferParameter(buffer, pname)
	if err != nil {
		return false, err
	}
	b, ok := glBool(v)
	if !ok {
		return false, c.fail(&Error{Op: "glGetNamedBufferParameteri64v", Kind: KindInvalidParameterValue, Buffer: buffer, Value: v})
	}
	return b, nil
}

// GetNamedBufferSize returns the size in bytes of buffer.
func (c *Context) GetNamedBufferSize(buffer Buffer) (int64, error) {
	v, err := c.namedBufferParameter(buffer, rawgl.BufferSize)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, c.fail(&Error{Op: "glGetNamedBufferParameteri64v", Kind: KindInvalidParameterValue, Buffer: buffer, Value: v})
	}
	return v, nil
}

// GetNamedBufferUsage returns the usage hint of buffer.
func (c *Context) GetNamedBufferUsage(buffer Buffer) (BufferUsage, error) {
	v, err := c.namedBufferParameter(buffer, rawgl.BufferUsage)
	if err != nil {
		return BufferUsage{}, err
	}
	usage, err := BufferUsageFromGL(uint32(v))
	if err != nil {
		return BufferUsage{}, c.withOp("glGetNamedBufferParameteri64v", err)
	}
	return usage, nil
}

// IsNamedBufferImmutableStorage reports whether buffer has immutable storage.
func (c *Context) IsNamedBufferImmutableStorage(buffer Buffer) (bool, error) {
	return c.namedBufferBool(buffer, rawgl.BufferImmutableStorage)
}

// IsNamedBufferMapped reports whether buffer is mapped.
func (c *Context) IsNamedBufferMapped(buffer Buffer) (bool, error) {
	return c.namedBufferBool(buffer, rawgl.BufferMapped)
}
