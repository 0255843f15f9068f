package gl

import (
	"unsafe"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// bufferChecks selects which states are tested when a buffer call raises
// InvalidOperation.
type bufferChecks uint8

const (
	checkMapped bufferChecks = 1 << iota
	checkNotMapped
	checkImmutable
)

// boundBufferError refines InvalidOperation raised by a call on the buffer
// bound to target.
func (c *Context) boundBufferError(op string, code ErrorCode, target BufferBindingTarget, checks bufferChecks) error {
	if c.getInteger(target.bindingQuery()) == 0 {
		return c.fail(&Error{Op: op, Kind: KindUnboundTarget, Code: code, BufferTarget: target})
	}
	param := func(pname uint32) int32 {
		var v int32
		c.fns.GetBufferParameteriv(target.GLenum(), pname, &v)
		return v
	}
	if checks&checkMapped != 0 && param(rawgl.BufferMapped) != rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindBufferMapped, Code: code, BufferTarget: target})
	}
	if checks&checkNotMapped != 0 && param(rawgl.BufferMapped) == rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindBufferNotMapped, Code: code, BufferTarget: target})
	}
	if checks&checkImmutable != 0 && param(rawgl.BufferImmutableStorage) != rawgl.False {
		return c.fail(&Error{Op: op, Kind: KindImmutableBufferTarget, Code: code, BufferTarget: target})
	}
	return c.plain(op, code)
}

// GenBuffers fills dst with unused buffer names.
func (c *Context) GenBuffers(dst []Buffer) error {
	n, e := sizei("glGenBuffers", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.GenBuffers(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified("glGenBuffers", code)
	}
	return nil
}

// GenBuffer returns one unused buffer name.
func (c *Context) GenBuffer() (Buffer, error) {
	var b [1]Buffer
	err := c.GenBuffers(b[:])
	return b[0], err
}

// DeleteBuffers deletes buffers. Zero and unused names are ignored.
func (c *Context) DeleteBuffers(buffers ...Buffer) error {
	n, e := sizei("glDeleteBuffers", "n", len(buffers))
	if e != nil {
		return c.fail(e)
	}
	c.fns.DeleteBuffers(n, names(buffers))
	if code := c.poll(); code != NoError {
		return c.unclassified("glDeleteBuffers", code)
	}
	return nil
}

// IsBuffer reports whether b names a buffer object.
func (c *Context) IsBuffer(b Buffer) bool {
	return c.fns.IsBuffer(b.v)
}

// BindBuffer binds buffer to target. The zero Buffer unbinds.
func (c *Context) BindBuffer(target BufferBindingTarget, buffer Buffer) error {
	const op = "glBindBuffer"
	c.fns.BindBuffer(target.GLenum(), buffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLBuffer, Code: code, Buffer: buffer})
	default:
		return c.unclassified(op, code)
	}
}

// indexedBindingError refines InvalidValue raised by glBindBufferBase and
// glBindBufferRange.
func (c *Context) indexedBindingError(op string, code ErrorCode, target BufferBindingRangeTarget, index uint32, buffer Buffer) error {
	if limit := c.getInteger(target.maxBindingsQuery()); limit > 0 && index >= uint32(limit) {
		return c.fail(&Error{Op: op, Kind: KindOutOfBoundsBindingIndex, Code: code, Index: index, BufferTarget: target.Target()})
	}
	if !buffer.IsZero() && !c.fns.IsBuffer(buffer.v) {
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLBuffer, Code: code, Buffer: buffer})
	}
	return c.plain(op, code)
}

// BindBufferBase binds buffer to binding point index of target, and to
// target itself.
func (c *Context) BindBufferBase(target BufferBindingRangeTarget, index uint32, buffer Buffer) error {
	const op = "glBindBufferBase"
	c.fns.BindBufferBase(target.GLenum(), index, buffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.indexedBindingError(op, code, target, index, buffer)
	default:
		return c.unclassified(op, code)
	}
}

// BindBufferRange binds size bytes of buffer starting at offset to binding
// point index of target.
func (c *Context) BindBufferRange(target BufferBindingRangeTarget, index uint32, buffer Buffer, offset, size int) error {
	const op = "glBindBufferRange"
	c.fns.BindBufferRange(target.GLenum(), index, buffer.v, offset, size)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.indexedBindingError(op, code, target, index, buffer)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) bufferData(target BufferBindingTarget, size int, data unsafe.Pointer, usage BufferUsage) error {
	const op = "glBufferData"
	c.fns.BufferData(target.GLenum(), size, data, usage.GLenum())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.boundBufferError(op, code, target, checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

// BufferData replaces the data store of the buffer bound to target with a
// copy of data.
func (c *Context) BufferData(target BufferBindingTarget, data []byte, usage BufferUsage) error {
	return c.bufferData(target, len(data), pointer(data), usage)
}

// BufferDataSize replaces the data store of the buffer bound to target with
// size bytes of undefined contents.
func (c *Context) BufferDataSize(target BufferBindingTarget, size int, usage BufferUsage) error {
	return c.bufferData(target, size, nil, usage)
}

// BufferSubData copies data into the buffer bound to target at offset.
func (c *Context) BufferSubData(target BufferBindingTarget, offset int, data []byte) error {
	const op = "glBufferSubData"
	c.fns.BufferSubData(target.GLenum(), offset, len(data), pointer(data))
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.boundBufferError(op, code, target, checkMapped|checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) bufferStorage(target BufferBindingTarget, size int, data unsafe.Pointer, flags BufferStorageFlags) error {
	const op = "glBufferStorage"
	if c.fns.BufferStorage == nil {
		return c.missing(op)
	}
	c.fns.BufferStorage(target.GLenum(), size, data, flags.Bits())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.boundBufferError(op, code, target, checkImmutable)
	default:
		return c.unclassified(op, code)
	}
}

// BufferStorage creates an immutable data store for the buffer bound to
// target, initialised from data. Requires OpenGL 4.4.
func (c *Context) BufferStorage(target BufferBindingTarget, data []byte, flags BufferStorageFlags) error {
	return c.bufferStorage(target, len(data), pointer(data), flags)
}

// BufferStorageSize creates an immutable data store of size bytes with
// undefined contents. Requires OpenGL 4.4.
func (c *Context) BufferStorageSize(target BufferBindingTarget, size int, flags BufferStorageFlags) error {
	return c.bufferStorage(target, size, nil, flags)
}

// mapped turns a mapping returned by OpenGL into a byte slice.
func mapped(ptr unsafe.Pointer, length int64) []byte {
	if ptr == nil || length <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

// MapBuffer maps the whole data store of the buffer bound to target. The
// slice is valid until UnmapBuffer.
func (c *Context) MapBuffer(target BufferBindingTarget, access BufferAccess) ([]byte, error) {
	const op = "glMapBuffer"
	ptr := c.fns.MapBuffer(target.GLenum(), access.GLenum())
	switch code := c.poll(); code {
	case NoError:
	case InvalidEnum:
		return nil, c.plain(op, code)
	case InvalidOperation:
		return nil, c.boundBufferError(op, code, target, checkMapped)
	default:
		return nil, c.unclassified(op, code)
	}
	var size int64
	c.fns.GetBufferParameteri64v(target.GLenum(), rawgl.BufferSize, &size)
	return mapped(ptr, size), nil
}

// MapBufferRange maps length bytes at offset of the buffer bound to target.
func (c *Context) MapBufferRange(target BufferBindingTarget, offset, length int, access BufferMapFlags) ([]byte, error) {
	const op = "glMapBufferRange"
	ptr := c.fns.MapBufferRange(target.GLenum(), offset, length, access.Bits())
	switch code := c.poll(); code {
	case NoError:
		return mapped(ptr, int64(length)), nil
	case InvalidEnum, InvalidValue:
		return nil, c.plain(op, code)
	case InvalidOperation:
		return nil, c.boundBufferError(op, code, target, checkMapped)
	default:
		return nil, c.unclassified(op, code)
	}
}

// FlushMappedBufferRange flushes a range of a mapping made with
// MapFlushExplicit. offset is relative to the start of the mapping.
func (c *Context) FlushMappedBufferRange(target BufferBindingTarget, offset, length int) error {
	const op = "glFlushMappedBufferRange"
	c.fns.FlushMappedBufferRange(target.GLenum(), offset, length)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.boundBufferError(op, code, target, checkNotMapped)
	default:
		return c.unclassified(op, code)
	}
}

// UnmapBuffer releases the mapping of the buffer bound to target. It
// returns false if the data store was corrupted while mapped and must be
// reinitialised.
func (c *Context) UnmapBuffer(target BufferBindingTarget) (bool, error) {
	const op = "glUnmapBuffer"
	ok := c.fns.UnmapBuffer(target.GLenum())
	switch code := c.poll(); code {
	case NoError:
		return ok, nil
	case InvalidEnum:
		return false, c.plain(op, code)
	case InvalidOperation:
		return false, c.boundBufferError(op, code, target, checkNotMapped)
	default:
		return false, c.unclassified(op, code)
	}
}

// GetBufferSubData copies len(dst) bytes at offset of the buffer bound to
// target into dst.
func (c *Context) GetBufferSubData(target BufferBindingTarget, offset int, dst []byte) error {
	const op = "glGetBufferSubData"
	c.fns.GetBufferSubData(target.GLenum(), offset, len(dst), pointer(dst))
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		return c.boundBufferError(op, code, target, checkMapped)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) bufferParameter(target BufferBindingTarget, pname uint32) (int64, error) {
	const op = "glGetBufferParameteri64v"
	var v int64
	c.fns.GetBufferParameteri64v(target.GLenum(), pname, &v)
	switch code := c.poll(); code {
	case NoError:
		return v, nil
	case InvalidEnum:
		return 0, c.plain(op, code)
	case InvalidOperation:
		return 0, c.boundBufferError(op, code, target, 0)
	default:
		return 0, c.unclassified(op, code)
	}
}

func (c *Context) bufferBool(target BufferBindingTarget, pname uint32) (bool, error) {
	v, err := c.bufferParameter(target, pname)
	if err != nil {
		return false, err
	}
	b, ok := glBool(v)
	if !ok {
		return false, c.fail(&Error{Op: "glGetBufferParameteri64v", Kind: KindInvalidParameterValue, Value: v})
	}
	return b, nil
}

// GetBufferAccess returns the access policy the buffer bound to target was
// mapped with.
func (c *Context) GetBufferAccess(target BufferBindingTarget) (BufferAccess, error) {
	v, err := c.bufferParameter(target, rawgl.BufferAccess)
	if err != nil {
		return 0, err
	}
	access, err := BufferAccessFromGL(uint32(v))
	if err != nil {
		return 0, c.withOp("glGetBufferParameteri64v", err)
	}
	return access, nil
}

// GetBufferAccessFlags returns the flags the buffer bound to target was
// mapped with.
func (c *Context) GetBufferAccessFlags(target BufferBindingTarget) (BufferMapFlags, error) {
	v, err := c.bufferParameter(target, rawgl.BufferAccessFlags)
	if err != nil {
		return 0, err
	}
	flags, ok := BufferMapFlagsFromBits(uint32(v))
	if !ok {
		return 0, c.fail(&Error{Op: "glGetBufferParameteri64v", Kind: KindInvalidParameterValue, Value: v})
	}
	return flags, nil
}

// GetBufferStorageFlags returns the flags the storage of the buffer bound to
// target was created with.
func (c *Context) GetBufferStorageFlags(target BufferBindingTarget) (BufferStorageFlags, error) {
	v, err := c.bufferParameter(target, rawgl.BufferStorageFlags)
	if err != nil {
		return 0, err
	}
	flags, ok := BufferStorageFlagsFromBits(uint32(v))
	if !ok {
		return 0, c.fail(&Error{Op: "glGetBufferParameteri64v", Kind: KindInvalidParameterValue, Value: v})
	}
	return flags, nil
}

// GetBufferSize returns the size in bytes of the buffer bound to target.
func (c *Context) GetBufferSize(target BufferBindingTarget) (int64, error) {
	v, err := c.bufferParameter(target, rawgl.BufferSize)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, c.fail(&Error{Op: "glGetBufferParameteri64v", Kind: KindInvalidParameterValue, Value: v})
	}
	return v, nil
}

// GetBufferUsage returns the usage hint of the buffer bound to target.
func (c *Context) GetBufferUsage(target BufferBindingTarget) (BufferUsage, error) {
	v, err := c.bufferParameter(target, rawgl.BufferUsage)
	if err != nil {
		return BufferUsage{}, err
	}
	usage, err := BufferUsageFromGL(uint32(v))
	if err != nil {
		return BufferUsage{}, c.withOp("glGetBufferParameteri64v", err)
	}
	return usage, nil
}

// GetBufferMapLength returns the length of the current mapping.
func (c *Context) GetBufferMapLength(target BufferBindingTarget) (int64, error) {
	return c.bufferParameter(target, rawgl.BufferMapLength)
}

// GetBufferMapOffset returns the offset of the current mapping.
func (c *Context) GetBufferMapOffset(target BufferBindingTarget) (int64, error) {
	return c.bufferParameter(target, rawgl.BufferMapOffset)
}

// GetBufferMapPointer returns the address of the current mapping, or nil.
func (c *Context) GetBufferMapPointer(target BufferBindingTarget) (unsafe.Pointer, error) {
	const op = "glGetBufferPointerv"
	var ptr unsafe.Pointer
	c.fns.GetBufferPointerv(target.GLenum(), rawgl.BufferMapPointer, &ptr)
	switch code := c.poll(); code {
	case NoError:
		return ptr, nil
	case InvalidEnum:
		return nil, c.plain(op, code)
	case InvalidOperation:
		return nil, c.boundBufferError(op, code, target, 0)
	default:
		return nil, c.unclassified(op, code)
	}
}

// IsBufferImmutableStorage reports whether the buffer bound to target was
// given storage with BufferStorage.
func (c *Context) IsBufferImmutableStorage(target BufferBindingTarget) (bool, error) {
	return c.bufferBool(target, rawgl.BufferImmutableStorage)
}

// IsBufferMapped reports whether the buffer bound to target is mapped.
func (c *Context) IsBufferMapped(target BufferBindingTarget) (bool, error) {
	return c.bufferBool(target, rawgl.BufferMapped)
}
