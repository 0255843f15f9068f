package gl

import (
	"strings"
	"testing"
	"unsafe"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// fakeGL is a small in-process model of an OpenGL 4.5 core context. It
// implements enough of the state machine to raise the same errors a driver
// would for the calls the tests make.
type fakeGL struct {
	err  uint32
	next uint32

	buffers        map[uint32]*fakeBuffer
	bufferBindings map[uint32]uint32
	indexed        map[[2]uint32]uint32

	arrays     map[uint32]*fakeVertexArray
	boundArray uint32

	textures   map[uint32]*fakeTexture
	activeUnit uint32
	units      map[[2]uint32]uint32

	shaders        map[uint32]*fakeShader
	programs       map[uint32]*fakeProgram
	currentProgram uint32
	feedback       bool

	framebuffers  map[uint32]*fakeFramebuffer
	drawFB        uint32
	readFB        uint32
	renderbuffers map[uint32]*fakeRenderbuffer
	boundRB       uint32

	enabled map[uint32]bool
	pack    int32
	unpack  int32

	calls []string
}

type fakeBuffer struct {
	data      []byte
	usage     uint32
	immutable bool
	flags     uint32
	mapped    bool
	access    uint32
	mapOffset int
	mapLength int
}

type fakeVertexArray struct {
	enabled map[uint32]bool
}

type fakeTexture struct {
	target uint32
}

type fakeShader struct {
	typ      uint32
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached  []uint32
	linked    bool
	validated bool
	log       string
	uniforms  map[string]fakeUniform
	attribs   map[string]int32
}

type fakeUniform struct {
	location int32
	typ      string
}

type fakeFramebuffer struct {
	object      bool
	attachments map[uint32]uint32
}

type fakeRenderbuffer struct {
	object bool
}

const (
	fakeMaxVertexAttribs  = 16
	fakeMaxBindings       = 8
	fakeMaxTextureUnits   = 32
	fakeMaxDrawBuffers    = 8
	fakeMaxAttribBindings = 16
)

var fakeVersion = []byte("4.5 (Core Profile) Mesa 23.1.2\x00")

func newFakeGL() *fakeGL {
	return &fakeGL{
		buffers:        map[uint32]*fakeBuffer{},
		bufferBindings: map[uint32]uint32{},
		indexed:        map[[2]uint32]uint32{},
		arrays:         map[uint32]*fakeVertexArray{},
		textures:       map[uint32]*fakeTexture{},
		units:          map[[2]uint32]uint32{},
		shaders:        map[uint32]*fakeShader{},
		programs:       map[uint32]*fakeProgram{},
		framebuffers:   map[uint32]*fakeFramebuffer{},
		renderbuffers:  map[uint32]*fakeRenderbuffer{},
		enabled:        map[uint32]bool{},
		pack:           4,
		unpack:         4,
	}
}

// newTestContext returns a Context backed by a fresh fakeGL.
func newTestContext(t testing.TB) (*Context, *fakeGL) {
	t.Helper()
	f := newFakeGL()
	return newContext(f.functions(), nil), f
}

func (f *fakeGL) raise(code uint32) {
	if f.err == rawgl.NoError {
		f.err = code
	}
}

func (f *fakeGL) name() uint32 {
	f.next++
	return f.next
}

func fakeNames(n int32, p *uint32) []uint32 {
	if n <= 0 || p == nil {
		return nil
	}
	return unsafe.Slice(p, n)
}

func fakeBytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

var fakeBufferTargets = map[uint32]bool{
	rawgl.ArrayBuffer: true, rawgl.AtomicCounterBuffer: true, rawgl.CopyReadBuffer: true,
	rawgl.CopyWriteBuffer: true, rawgl.DispatchIndirectBuffer: true, rawgl.DrawIndirectBuffer: true,
	rawgl.ElementArrayBuffer: true, rawgl.PixelPackBuffer: true, rawgl.PixelUnpackBuffer: true,
	rawgl.QueryBuffer: true, rawgl.ShaderStorageBuffer: true, rawgl.TextureBuffer: true,
	rawgl.TransformFeedbackBuffer: true, rawgl.UniformBuffer: true,
}

var fakeBindingQueries = map[uint32]uint32{
	rawgl.ArrayBufferBinding:             rawgl.ArrayBuffer,
	rawgl.ElementArrayBufferBinding:      rawgl.ElementArrayBuffer,
	rawgl.UniformBufferBinding:           rawgl.UniformBuffer,
	rawgl.ShaderStorageBufferBinding:     rawgl.ShaderStorageBuffer,
	rawgl.PixelPackBufferBinding:         rawgl.PixelPackBuffer,
	rawgl.PixelUnpackBufferBinding:       rawgl.PixelUnpackBuffer,
	rawgl.CopyReadBufferBinding:          rawgl.CopyReadBuffer,
	rawgl.CopyWriteBufferBinding:         rawgl.CopyWriteBuffer,
	rawgl.TransformFeedbackBufferBinding: rawgl.TransformFeedbackBuffer,
	rawgl.AtomicCounterBufferBinding:     rawgl.AtomicCounterBuffer,
	rawgl.DrawIndirectBufferBinding:      rawgl.DrawIndirectBuffer,
	rawgl.DispatchIndirectBufferBinding:  rawgl.DispatchIndirectBuffer,
	rawgl.QueryBufferBinding:             rawgl.QueryBuffer,
	rawgl.TextureBufferBinding:           rawgl.TextureBuffer,
}

// bound returns the buffer bound to target, raising the error OpenGL
// raises when there is none.
func (f *fakeGL) bound(target uint32) *fakeBuffer {
	if !fakeBufferTargets[target] {
		f.raise(rawgl.InvalidEnum)
		return nil
	}
	name := f.bufferBindings[target]
	if name == 0 {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	return f.buffers[name]
}

// object returns the buffer object called name for the Named* calls.
func (f *fakeGL) object(name uint32) *fakeBuffer {
	b := f.buffers[name]
	if b == nil {
		f.raise(rawgl.InvalidOperation)
	}
	return b
}

func (f *fakeGL) bufferData(b *fakeBuffer, size int, data unsafe.Pointer, usage uint32) {
	if size < 0 {
		f.raise(rawgl.InvalidValue)
		return
	}
	if _, err := BufferUsageFromGL(usage); err != nil {
		f.raise(rawgl.InvalidEnum)
		return
	}
	if b.immutable {
		f.raise(rawgl.InvalidOperation)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, fakeBytes(data, size))
	b.usage = usage
	b.mapped = false
}

func (f *fakeGL) bufferStorage(b *fakeBuffer, size int, data unsafe.Pointer, flags uint32) {
	const access = rawgl.MapReadBit | rawgl.MapWriteBit
	switch {
	case size <= 0,
		flags&^uint32(rawgl.DynamicStorageBit|rawgl.MapReadBit|rawgl.MapWriteBit|rawgl.MapPersistentBit|rawgl.MapCoherentBit|rawgl.ClientStorageBit) != 0,
		flags&rawgl.MapPersistentBit != 0 && flags&access == 0,
		flags&rawgl.MapCoherentBit != 0 && flags&rawgl.MapPersistentBit == 0:
		f.raise(rawgl.InvalidValue)
		return
	}
	if b.immutable {
		f.raise(rawgl.InvalidOperation)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, fakeBytes(data, size))
	b.immutable = true
	b.flags = flags
	b.usage = rawgl.DynamicDraw
}

func (f *fakeGL) bufferSubData(b *fakeBuffer, offset, size int, data unsafe.Pointer) {
	if offset < 0 || size < 0 || offset+size > len(b.data) {
		f.raise(rawgl.InvalidValue)
		return
	}
	if b.mapped && b.access&rawgl.MapPersistentBit == 0 {
		f.raise(rawgl.InvalidOperation)
		return
	}
	if b.immutable && b.flags&rawgl.DynamicStorageBit == 0 {
		f.raise(rawgl.InvalidOperation)
		return
	}
	copy(b.data[offset:], fakeBytes(data, size))
}

func (f *fakeGL) mapRange(b *fakeBuffer, offset, length int, access uint32) unsafe.Pointer {
	if offset < 0 || length <= 0 || offset+length > len(b.data) {
		f.raise(rawgl.InvalidValue)
		return nil
	}
	if b.mapped || access&(rawgl.MapReadBit|rawgl.MapWriteBit) == 0 {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	if b.immutable && access&^b.flags&(rawgl.MapReadBit|rawgl.MapWriteBit|rawgl.MapPersistentBit|rawgl.MapCoherentBit) != 0 {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	b.mapped = true
	b.access = access
	b.mapOffset = offset
	b.mapLength = length
	return unsafe.Pointer(&b.data[offset])
}

func (f *fakeGL) mapWhole(b *fakeBuffer, access uint32) unsafe.Pointer {
	bits := map[uint32]uint32{
		rawgl.ReadOnly:  rawgl.MapReadBit,
		rawgl.WriteOnly: rawgl.MapWriteBit,
		rawgl.ReadWrite: rawgl.MapReadBit | rawgl.MapWriteBit,
	}[access]
	if bits == 0 {
		f.raise(rawgl.InvalidEnum)
		return nil
	}
	if b.mapped {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	if len(b.data) == 0 {
		b.mapped = true
		return nil
	}
	return f.mapRange(b, 0, len(b.data), bits)
}

func (f *fakeGL) unmap(b *fakeBuffer) bool {
	if !b.mapped {
		f.raise(rawgl.InvalidOperation)
		return false
	}
	b.mapped = false
	b.access = 0
	b.mapOffset = 0
	b.mapLength = 0
	return true
}

func (f *fakeGL) bufferParameter(b *fakeBuffer, pname uint32) (int64, bool) {
	switch pname {
	case rawgl.BufferSize:
		return int64(len(b.data)), true
	case rawgl.BufferUsage:
		return int64(b.usage), true
	case rawgl.BufferAccess:
		switch {
		case b.access&rawgl.MapReadBit != 0 && b.access&rawgl.MapWriteBit != 0:
			return rawgl.ReadWrite, true
		case b.access&rawgl.MapWriteBit != 0:
			return rawgl.WriteOnly, true
		}
		return rawgl.ReadOnly, true
	case rawgl.BufferAccessFlags:
		return int64(b.access), true
	case rawgl.BufferMapped:
		if b.mapped {
			return rawgl.True, true
		}
		return rawgl.False, true
	case rawgl.BufferMapLength:
		return int64(b.mapLength), true
	case rawgl.BufferMapOffset:
		return int64(b.mapOffset), true
	case rawgl.BufferImmutableStorage:
		if b.immutable {
			return rawgl.True, true
		}
		return rawgl.False, true
	case rawgl.BufferStorageFlags:
		return int64(b.flags), true
	}
	f.raise(rawgl.InvalidEnum)
	return 0, false
}

func (f *fakeGL) integer(pname uint32) int32 {
	if target, ok := fakeBindingQueries[pname]; ok {
		return int32(f.bufferBindings[target])
	}
	switch pname {
	case rawgl.MaxVertexAttribs:
		return fakeMaxVertexAttribs
	case rawgl.MaxVertexAttribBindings:
		return fakeMaxAttribBindings
	case rawgl.MaxUniformBufferBindings, rawgl.MaxShaderStorageBufferBindings,
		rawgl.MaxAtomicCounterBufferBindings, rawgl.MaxTransformFeedbackSeparateAttribs:
		return fakeMaxBindings
	case rawgl.MaxCombinedTextureImageUnits:
		return fakeMaxTextureUnits
	case rawgl.MaxDrawBuffers:
		return fakeMaxDrawBuffers
	case rawgl.VertexArrayBinding:
		return int32(f.boundArray)
	case rawgl.CurrentProgram:
		return int32(f.currentProgram)
	case rawgl.TransformFeedbackActive:
		if f.feedback {
			return rawgl.True
		}
		return rawgl.False
	case rawgl.TransformFeedbackPaused:
		return rawgl.False
	case rawgl.DrawFramebufferBinding:
		return int32(f.drawFB)
	case rawgl.ReadFramebufferBinding:
		return int32(f.readFB)
	case rawgl.RenderbufferBinding:
		return int32(f.boundRB)
	case rawgl.ActiveTexture:
		return int32(rawgl.Texture0 + f.activeUnit)
	case rawgl.PackAlignment:
		return f.pack
	case rawgl.UnpackAlignment:
		return f.unpack
	}
	f.raise(rawgl.InvalidEnum)
	return 0
}

func (f *fakeGL) attribIndex(index uint32) bool {
	if index >= fakeMaxVertexAttribs {
		f.raise(rawgl.InvalidValue)
		return false
	}
	return true
}

func (f *fakeGL) attribPointer(index uint32, size int32, stride int32, offset uintptr, bgraOK bool) {
	if !f.attribIndex(index) {
		return
	}
	if (size < 1 || size > 4) && !(bgraOK && size == rawgl.BGRA) || stride < 0 {
		f.raise(rawgl.InvalidValue)
		return
	}
	if f.boundArray == 0 {
		f.raise(rawgl.InvalidOperation)
		return
	}
	if offset != 0 && f.bufferBindings[rawgl.ArrayBuffer] == 0 {
		f.raise(rawgl.InvalidOperation)
	}
}

func (f *fakeGL) shaderObject(name uint32) *fakeShader {
	if s, ok := f.shaders[name]; ok {
		return s
	}
	if _, ok := f.programs[name]; ok {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	f.raise(rawgl.InvalidValue)
	return nil
}

func (f *fakeGL) programObject(name uint32) *fakeProgram {
	if p, ok := f.programs[name]; ok {
		return p
	}
	if _, ok := f.shaders[name]; ok {
		f.raise(rawgl.InvalidOperation)
		return nil
	}
	f.raise(rawgl.InvalidValue)
	return nil
}

func (f *fakeGL) link(p *fakeProgram) {
	p.linked = false
	p.uniforms = map[string]fakeUniform{}
	p.attribs = map[string]int32{}
	hasVertex := false
	for _, name := range p.attached {
		s := f.shaders[name]
		if s.typ == rawgl.VertexShader && s.compiled {
			hasVertex = true
		}
		for _, line := range strings.Split(s.source, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) != 3 {
				continue
			}
			switch {
			case fields[0] == "uniform":
				if _, ok := p.uniforms[fields[2]]; !ok {
					p.uniforms[fields[2]] = fakeUniform{location: int32(len(p.uniforms)), typ: fields[1]}
				}
			case fields[0] == "in" && s.typ == rawgl.VertexShader:
				p.attribs[fields[2]] = int32(len(p.attribs))
			}
		}
	}
	if !hasVertex {
		p.log = "error: linking with uncompiled/unspecialized shader"
		return
	}
	p.linked = true
	p.log = ""
}

func (f *fakeGL) uniform(location, count int32, types ...string) {
	if f.currentProgram == 0 {
		f.raise(rawgl.InvalidOperation)
		return
	}
	if count < 0 {
		f.raise(rawgl.InvalidValue)
		return
	}
	if location == -1 {
		return
	}
	for _, u := range f.programs[f.currentProgram].uniforms {
		if u.location != location {
			continue
		}
		for _, typ := range types {
			if u.typ == typ || typ == "int" && strings.HasPrefix(u.typ, "sampler") {
				if count > 1 {
					f.raise(rawgl.InvalidOperation)
				}
				return
			}
		}
	}
	f.raise(rawgl.InvalidOperation)
}

var fakeTextureTargets = map[uint32]bool{
	rawgl.Texture1D: true, rawgl.Texture2D: true, rawgl.Texture3D: true,
	rawgl.Texture1DArray: true, rawgl.Texture2DArray: true, rawgl.TextureRectangle: true,
	rawgl.TextureCubeMap: true, rawgl.TextureCubeMapArray: true, rawgl.TextureBuffer: true,
	rawgl.Texture2DMultisample: true, rawgl.Texture2DMultisampleArray: true,
}

func (f *fakeGL) framebufferTarget(target uint32) (*uint32, bool) {
	switch target {
	case rawgl.DrawFramebuffer, rawgl.Framebuffer:
		return &f.drawFB, true
	case rawgl.ReadFramebuffer:
		return &f.readFB, true
	}
	f.raise(rawgl.InvalidEnum)
	return nil, false
}

func (f *fakeGL) attach(target, attachment, name uint32, valid bool) {
	bound, ok := f.framebufferTarget(target)
	if !ok {
		return
	}
	if *bound == 0 || !valid {
		f.raise(rawgl.InvalidOperation)
		return
	}
	if _, err := FramebufferAttachmentFromGL(attachment); err != nil {
		f.raise(rawgl.InvalidEnum)
		return
	}
	fb := f.framebuffers[*bound]
	if name == 0 {
		delete(fb.attachments, attachment)
		return
	}
	fb.attachments[attachment] = name
}

func (f *fakeGL) draw(mode uint32, count int32, indexed bool) {
	if _, err := DrawModeFromGL(mode); err != nil {
		f.raise(rawgl.InvalidEnum)
		return
	}
	if count < 0 {
		f.raise(rawgl.InvalidValue)
		return
	}
	if f.boundArray == 0 || indexed && f.bufferBindings[rawgl.ElementArrayBuffer] == 0 {
		f.raise(rawgl.InvalidOperation)
	}
}

func (f *fakeGL) capability(c uint32) bool {
	if _, err := CapabilityFromGL(c); err != nil {
		f.raise(rawgl.InvalidEnum)
		return false
	}
	return true
}

func (f *fakeGL) enum(ok bool) {
	if !ok {
		f.raise(rawgl.InvalidEnum)
	}
}

func (f *fakeGL) functions() *rawgl.Functions {
	fns := &rawgl.Functions{}
	f.bufferFunctions(fns)
	f.vertexArrayFunctions(fns)
	f.textureFunctions(fns)
	f.shaderFunctions(fns)
	f.uniformFunctions(fns)
	f.framebufferFunctions(fns)
	f.stateFunctions(fns)
	return fns
}

func (f *fakeGL) bufferFunctions(fns *rawgl.Functions) {
	fns.GetError = func() uint32 {
		code := f.err
		f.err = rawgl.NoError
		return code
	}
	fns.GetString = func(name uint32) *byte {
		switch name {
		case rawgl.Version:
			return &fakeVersion[0]
		case rawgl.Vendor, rawgl.Renderer, rawgl.ShadingLanguageVersion:
			return &fakeVersion[len(fakeVersion)-1]
		}
		f.raise(rawgl.InvalidEnum)
		return nil
	}
	fns.GetIntegerv = func(pname uint32, data *int32) {
		*data = f.integer(pname)
	}

	fns.GenBuffers = func(n int32, p *uint32) {
		if n < 0 {
			f.raise(rawgl.InvalidValue)
			return
		}
		names := fakeNames(n, p)
		for i := range names {
			names[i] = f.name()
			f.buffers[names[i]] = nil
		}
	}
	fns.CreateBuffers = func(n int32, p *uint32) {
		fns.GenBuffers(n, p)
		for _, name := range fakeNames(n, p) {
			f.buffers[name] = &fakeBuffer{usage: rawgl.StaticDraw}
		}
	}
	fns.DeleteBuffers = func(n int32, p *uint32) {
		if n < 0 {
			f.raise(rawgl.InvalidValue)
			return
		}
		for _, name := range fakeNames(n, p) {
			if name == 0 {
				continue
			}
			delete(f.buffers, name)
			for target, bound := range f.bufferBindings {
				if bound == name {
					f.bufferBindings[target] = 0
				}
			}
		}
	}
	fns.IsBuffer = func(name uint32) bool { return f.buffers[name] != nil }
	fns.BindBuffer = func(target, name uint32) {
		if !fakeBufferTargets[target] {
			f.raise(rawgl.InvalidEnum)
			return
		}
		if name != 0 {
			b, ok := f.buffers[name]
			if !ok {
				f.raise(rawgl.InvalidValue)
				return
			}
			if b == nil {
				f.buffers[name] = &fakeBuffer{usage: rawgl.StaticDraw}
			}
		}
		f.bufferBindings[target] = name
	}
	bindIndexed := func(target, index, name uint32) {
		if _, err := BufferBindingRangeTargetFromGL(target); err != nil {
			f.raise(rawgl.InvalidEnum)
			return
		}
		if index >= fakeMaxBindings {
			f.raise(rawgl.InvalidValue)
			return
		}
		if name != 0 && f.buffers[name] == nil {
			f.raise(rawgl.InvalidValue)
			return
		}
		f.indexed[[2]uint32{target, index}] = name
		f.bufferBindings[target] = name
	}
	fns.BindBufferBase = bindIndexed
	fns.BindBufferRange = func(target, index, name uint32, offset, size int) {
		if name != 0 && (offset < 0 || size <= 0) {
			f.raise(rawgl.InvalidValue)
			return
		}
		bindIndexed(target, index, name)
	}
	fns.BufferData = func(target uint32, size int, data unsafe.Pointer, usage uint32) {
		if b := f.bound(target); b != nil {
			f.bufferData(b, size, data, usage)
		}
	}
	fns.NamedBufferData = func(name uint32, size int, data unsafe.Pointer, usage uint32) {
		if b := f.object(name); b != nil {
			f.bufferData(b, size, data, usage)
		}
	}
	fns.BufferStorage = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
		if b := f.bound(target); b != nil {
			f.bufferStorage(b, size, data, flags)
		}
	}
	fns.NamedBufferStorage = func(name uint32, size int, data unsafe.Pointer, flags uint32) {
		if b := f.object(name); b != nil {
			f.bufferStorage(b, size, data, flags)
		}
	}
	fns.BufferSubData = func(target uint32, offset, size int, data unsafe.Pointer) {
		if b := f.bound(target); b != nil {
			f.bufferSubData(b, offset, size, data)
		}
	}
	fns.NamedBufferSubData = func(name uint32, offset, size int, data unsafe.Pointer) {
		if b := f.object(name); b != nil {
			f.bufferSubData(b, offset, size, data)
		}
	}
	fns.MapBuffer = func(target, access uint32) unsafe.Pointer {
		if b := f.bound(target); b != nil {
			return f.mapWhole(b, access)
		}
		return nil
	}
	fns.MapNamedBuffer = func(name, access uint32) unsafe.Pointer {
		if b := f.object(name); b != nil {
			return f.mapWhole(b, access)
		}
		return nil
	}
	fns.MapBufferRange = func(target uint32, offset, length int, access uint32) unsafe.Pointer {
		if b := f.bound(target); b != nil {
			return f.mapRange(b, offset, length, access)
		}
		return nil
	}
	fns.MapNamedBufferRange = func(name uint32, offset, length int, access uint32) unsafe.Pointer {
		if b := f.object(name); b != nil {
			return f.mapRange(b, offset, length, access)
		}
		return nil
	}
	fns.FlushMappedBufferRange = func(target uint32, offset, length int) {
		b := f.bound(target)
		if b == nil {
			return
		}
		if !b.mapped || b.access&rawgl.MapFlushExplicitBit == 0 {
			f.raise(rawgl.InvalidOperation)
			return
		}
		if offset < 0 || length < 0 || offset+length > b.mapLength {
			f.raise(rawgl.InvalidValue)
		}
	}
	fns.UnmapBuffer = func(target uint32) bool {
		if b := f.bound(target); b != nil {
			return f.unmap(b)
		}
		return false
	}
	fns.UnmapNamedBuffer = func(name uint32) bool {
		if b := f.object(name); b != nil {
			return f.unmap(b)
		}
		return false
	}
	getSubData := func(b *fakeBuffer, offset, size int, data unsafe.Pointer) {
		if offset < 0 || size < 0 || offset+size > len(b.data) {
			f.raise(rawgl.InvalidValue)
			return
		}
		if b.mapped && b.access&rawgl.MapPersistentBit == 0 {
			f.raise(rawgl.InvalidOperation)
			return
		}
		copy(fakeBytes(data, size), b.data[offset:])
	}
	fns.GetBufferSubData = func(target uint32, offset, size int, data unsafe.Pointer) {
		if b := f.bound(target); b != nil {
			getSubData(b, offset, size, data)
		}
	}
	fns.GetNamedBufferSubData = func(name uint32, offset, size int, data unsafe.Pointer) {
		if b := f.object(name); b != nil {
			getSubData(b, offset, size, data)
		}
	}
	fns.GetBufferParameteriv = func(target, pname uint32, params *int32) {
		if b := f.bound(target); b != nil {
			v, _ := f.bufferParameter(b, pname)
			*params = int32(v)
		}
	}
	fns.GetBufferParameteri64v = func(target, pname uint32, params *int64) {
		if b := f.bound(target); b != nil {
			*params, _ = f.bufferParameter(b, pname)
		}
	}
	fns.GetNamedBufferParameteriv = func(name, pname uint32, params *int32) {
		if b := f.object(name); b != nil {
			v, _ := f.bufferParameter(b, pname)
			*params = int32(v)
		}
	}
	fns.GetNamedBufferParameteri64v = func(name, pname uint32, params *int64) {
		if b := f.object(name); b != nil {
			*params, _ = f.bufferParameter(b, pname)
		}
	}
	fns.GetBufferPointerv = func(target, pname uint32, params *unsafe.Pointer) {
		b := f.bound(target)
		if b == nil {
			return
		}
		if pname != rawgl.BufferMapPointer {
			f.raise(rawgl.InvalidEnum)
			return
		}
		*params = nil
		if b.mapped && len(b.data) > 0 {
			*params = unsafe.Pointer(&b.data[b.mapOffset])
		}
	}
}

func (f *fakeGL) vertexArrayFunctions(fns *rawgl.Functions) {
	fns.GenVertexArrays = func(n int32, p *uint32) {
		if n < 0 {
			f.raise(rawgl.InvalidValue)
			return
		}
		names := fakeNames(n, p)
		for i := range names {
			names[i] = f.name()
			f.arrays[names[i]] = nil
		}
	}
	fns.CreateVertexArrays = func(n int32, p *uint32) {
		fns.GenVertexArrays(n, p)
		for _, name := range fakeNames(n, p) {
			f.arrays[name] = &fakeVertexArray{enabled: map[uint32]bool{}}
		}
	}
	fns.DeleteVertexArrays = func(n int32, p *uint32) {
		for _, name := range fakeNames(n, p) {
			delete(f.arrays, name)
			if f.boundArray == name {
				f.boundArray = 0
			}
		}
	}
	fns.IsVertexArray = func(name uint32) bool { return f.arrays[name] != nil }
	fns.BindVertexArray = func(name uint32) {
		if name != 0 {
			a, ok := f.arrays[name]
			if !ok {
				f.raise(rawgl.InvalidOperation)
				return
			}
			if a == nil {
				f.arrays[name] = &fakeVertexArray{enabled: map[uint32]bool{}}
			}
		}
		f.boundArray = name
	}
	setEnabled := func(index uint32, on bool) {
		if !f.attribIndex(index) {
			return
		}
		if f.boundArray == 0 {
			f.raise(rawgl.InvalidOperation)
			return
		}
		f.arrays[f.boundArray].enabled[index] = on
	}
	fns.EnableVertexAttribArray = func(index uint32) { setEnabled(index, true) }
	fns.DisableVertexAttribArray = func(index uint32) { setEnabled(index, false) }
	fns.VertexAttribPointer = func(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
		if _, err := VertexAttributeFloatTypeFromGL(xtype); err != nil &&
			xtype != rawgl.Int2101010Rev && xtype != rawgl.UnsignedInt2101010Rev && xtype != rawgl.UnsignedInt10f11f11fRev {
			f.raise(rawgl.InvalidEnum)
			return
		}
		f.attribPointer(index, size, stride, offset, true)
	}
	fns.VertexAttribIPointer = func(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
		if _, err := VertexAttributeIntegerTypeFromGL(xtype); err != nil {
			f.raise(rawgl.InvalidEnum)
			return
		}
		f.attribPointer(index, size, stride, offset, false)
	}
	fns.VertexAttribLPointer = func(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
		if xtype != rawgl.Double {
			f.raise(rawgl.InvalidEnum)
			return
		}
		f.attribPointer(index, size, stride, offset, false)
	}
	fns.VertexAttribDivisor = func(index, divisor uint32) {
		if f.attribIndex(index) && f.boundArray == 0 {
			f.raise(rawgl.InvalidOperation)
		}
	}
	dsa := func(name, index uint32) *fakeVertexArray {
		a := f.arrays[name]
		if a == nil {
			f.raise(rawgl.InvalidOperation)
			return nil
		}
		if !f.attribIndex(index) {
			return nil
		}
		return a
	}
	fns.EnableVertexArrayAttrib = func(name, index uint32) {
		if a := dsa(name, index); a != nil {
			a.enabled[index] = true
		}
	}
	fns.DisableVertexArrayAttrib = func(name, index uint32) {
		if a := dsa(name, index); a != nil {
			a.enabled[index] = false
		}
	}
	fns.VertexArrayElementBuffer = func(name, buffer uint32) {
		if f.arrays[name] == nil || buffer != 0 && f.buffers[buffer] == nil {
			f.raise(rawgl.InvalidOperation)
		}
	}
	fns.VertexArrayVertexBuffer = func(name, binding, buffer uint32, offset int, stride int32) {
		switch {
		case f.arrays[name] == nil, buffer != 0 && f.buffers[buffer] == nil:
			f.raise(rawgl.InvalidOperation)
		case binding >= fakeMaxAttribBindings, offset < 0, stride < 0:
			f.raise(rawgl.InvalidValue)
		}
	}
	fns.VertexArrayAttribFormat = func(name, index uint32, size int32, xtype uint32, normalized bool, relativeOffset uint32) {
		dsa(name, index)
	}
	fns.VertexArrayAttribIFormat = func(name, index uint32, size int32, xtype uint32, relativeOffset uint32) {
		dsa(name, index)
	}
	fns.VertexArrayAttribBinding = func(name, index, binding uint32) {
		if dsa(name, index) != nil && binding >= fakeMaxAttribBindings {
			f.raise(rawgl.InvalidValue)
		}
	}
}

func (f *fakeGL) textureFunctions(fns *rawgl.Functions) {
	fns.GenTextures = func(n int32, p *uint32) {
		if n < 0 {
			f.raise(rawgl.InvalidValue)
			return
		}
		names := fakeNames(n, p)
		for i := range names {
			names[i] = f.name()
			f.textures[names[i]] = nil
		}
	}
	fns.CreateTextures = func(target uint32, n int32, p *uint32) {
		if !fakeTextureTargets[target] {
			f.raise(rawgl.InvalidEnum)
			return
		}
		fns.GenTextures(n, p)
		for _, name := range fakeNames(n, p) {
			f.textures[name] = &fakeTexture{target: target}
		}
	}
	fns.DeleteTextures = func(n int32, p *uint32) {
		for _, name := range fakeNames(n, p) {
			delete(f.textures, name)
		}
	}
	fns.IsTexture = func(name uint32) bool { return f.textures[name] != nil }
	fns.ActiveTexture = func(unit uint32) {
		if unit < rawgl.Texture0 || unit >= rawgl.Texture0+fakeMaxTextureUnits {
			f.raise(rawgl.InvalidEnum)
			return
		}
		f.activeUnit = unit - rawgl.Texture0
	}
	fns.BindTexture = func(target, name uint32) {
		if !fakeTextureTargets[target] {
			f.raise(rawgl.InvalidEnum)
			return
		}
		if name != 0 {
			t, ok := f.textures[name]
			switch {
			case !ok:
				f.raise(rawgl.InvalidValue)
				return
			case t == nil:
				f.textures[name] = &fakeTexture{target: target}
			case t.target != target:
				f.raise(rawgl.InvalidOperation)
				return
			}
		}
		f.units[[2]uint32{f.activeUnit, target}] = name
	}
	image := func(width, height, depth, border int32, format, xtype uint32) {
		switch {
		case width < 0, height < 0, depth < 0, border != 0:
			f.raise(rawgl.InvalidValue)
		default:
			_, ferr := TextureFormatFromGL(format)
			_, terr := TexturePixelTypeFromGL(xtype)
			f.enum(ferr == nil && terr == nil)
		}
	}
	fns.TexImage1D = func(target uint32, level, internalFormat, width, border int32, format, xtype uint32, pixels unsafe.Pointer) {
		_, err := Texture1DTargetFromGL(target)
		f.enum(err == nil)
		image(width, 1, 1, border, format, xtype)
	}
	fns.TexImage2D = func(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
		_, err := Texture2DTargetFromGL(target)
		f.enum(err == nil)
		image(width, height, 1, border, format, xtype)
	}
	fns.TexImage3D = func(target uint32, level, internalFormat, width, height, depth, border int32, format, xtype uint32, pixels unsafe.Pointer) {
		_, err := Texture3DTargetFromGL(target)
		f.enum(err == nil)
		image(width, height, depth, border, format, xtype)
	}
	fns.TexSubImage2D = func(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
		_, err := Texture2DTargetFromGL(target)
		f.enum(err == nil)
		image(width, height, 1, 0, format, xtype)
	}
	fns.GenerateMipmap = func(target uint32) { f.enum(fakeTextureTargets[target]) }
	fns.GenerateTextureMipmap = func(name uint32) {
		if f.textures[name] == nil {
			f.raise(rawgl.InvalidOperation)
		}
	}
	parameter := func(pname uint32, param int32) {
		var err error
		switch pname {
		case rawgl.TextureWrapS, rawgl.TextureWrapT, rawgl.TextureWrapR:
			_, err = TextureWrapModeFromGL(uint32(param))
		case rawgl.TextureMinFilter:
			_, err = TextureMinFilterFromGL(uint32(param))
		case rawgl.TextureMagFilter:
			_, err = TextureMagFilterFromGL(uint32(param))
		case rawgl.DepthStencilTextureMode:
			_, err = TextureDepthStencilModeFromGL(uint32(param))
		default:
			f.raise(rawgl.InvalidEnum)
			return
		}
		f.enum(err == nil)
		f.calls = append(f.calls, "parameter")
	}
	fns.TexParameteri = func(target, pname uint32, param int32) {
		if !fakeTextureTargets[target] {
			f.raise(rawgl.InvalidEnum)
			return
		}
		parameter(pname, param)
	}
	fns.TextureParameteri = func(name, pname uint32, param int32) {
		if f.textures[name] == nil {
			f.raise(rawgl.InvalidOperation)
			return
		}
		parameter(pname, param)
	}
	fns.TexParameterfv = func(target, pname uint32, params *float32) {
		f.enum(fakeTextureTargets[target] && pname == rawgl.TextureBorderColor)
	}
	fns.TextureParameterfv = func(name, pname uint32, params *float32) {
		if f.textures[name] == nil {
			f.raise(rawgl.InvalidOperation)
			return
		}
		f.enum(pname == rawgl.TextureBorderColor)
	}
}

func (f *fakeGL) shaderFunctions(fns *rawgl.Functions) {
	fns.CreateShader = func(typ uint32) uint32 {
		if _, err := ShaderTypeFromGL(typ); err != nil {
			f.raise(rawgl.InvalidEnum)
			return 0
		}
		name := f.name()
		f.shaders[name] = &fakeShader{typ: typ}
		return name
	}
	fns.DeleteShader = func(name uint32) {
		if name == 0 {
			return
		}
		if s := f.shaderObject(name); s != nil {
			s.deleted = true
		}
	}
	fns.IsShader = func(name uint32) bool { return f.shaders[name] != nil }
	fns.ShaderSource = func(name uint32, count int32, strs **byte, lengths *int32) {
		s := f.shaderObject(name)
		if s == nil {
			return
		}
		if count < 0 {
			f.raise(rawgl.InvalidValue)
			return
		}
		var src strings.Builder
		ptrs := unsafe.Slice(strs, count)
		lens := unsafe.Slice(lengths, count)
		for i := range ptrs {
			src.Write(fakeBytes(unsafe.Pointer(ptrs[i]), int(lens[i])))
		}
		s.source = src.String()
	}
	fns.CompileShader = func(name uint32) {
		s := f.shaderObject(name)
		if s == nil {
			return
		}
		s.compiled = strings.HasPrefix(s.source, "#version")
		s.log = ""
		if !s.compiled {
			s.log = "0:1(1): error: syntax error, unexpected IDENTIFIER"
		}
	}
	fns.GetShaderiv = func(name, pname uint32, params *int32) {
		s := f.shaderObject(name)
		if s == nil {
			return
		}
		switch pname {
		case rawgl.ShaderType:
			*params = int32(s.typ)
		case rawgl.DeleteStatus:
			*params = fakeBool(s.deleted)
		case rawgl.CompileStatus:
			*params = fakeBool(s.compiled)
		case rawgl.InfoLogLength:
			*params = fakeLength(s.log)
		case rawgl.ShaderSourceLength:
			*params = fakeLength(s.source)
		default:
			f.raise(rawgl.InvalidEnum)
		}
	}
	fns.GetShaderInfoLog = func(name uint32, bufSize int32, length *int32, infoLog *byte) {
		if s := f.shaderObject(name); s != nil {
			*length = fakeCopyLog(s.log, bufSize, infoLog)
		}
	}

	fns.CreateProgram = func() uint32 {
		name := f.name()
		f.programs[name] = &fakeProgram{}
		return name
	}
	fns.DeleteProgram = func(name uint32) {
		if name == 0 {
			return
		}
		if f.programObject(name) != nil && f.currentProgram != name {
			delete(f.programs, name)
		}
	}
	fns.IsProgram = func(name uint32) bool { return f.programs[name] != nil }
	pair := func(program, shader uint32) (*fakeProgram, int) {
		_, isShader := f.shaders[shader]
		_, shaderIsProgram := f.programs[shader]
		_, isProgram := f.programs[program]
		_, programIsShader := f.shaders[program]
		switch {
		case !isShader && !shaderIsProgram, !isProgram && !programIsShader:
			f.raise(rawgl.InvalidValue)
			return nil, 0
		case !isShader, !isProgram:
			f.raise(rawgl.InvalidOperation)
			return nil, 0
		}
		p := f.programs[program]
		for i, s := range p.attached {
			if s == shader {
				return p, i
			}
		}
		return p, -1
	}
	fns.AttachShader = func(program, shader uint32) {
		p, i := pair(program, shader)
		switch {
		case p == nil:
		case i >= 0:
			f.raise(rawgl.InvalidOperation)
		default:
			p.attached = append(p.attached, shader)
		}
	}
	fns.DetachShader = func(program, shader uint32) {
		p, i := pair(program, shader)
		switch {
		case p == nil:
		case i < 0:
			f.raise(rawgl.InvalidOperation)
		default:
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
		}
	}
	fns.LinkProgram = func(name uint32) {
		p := f.programObject(name)
		if p == nil {
			return
		}
		if f.feedback && f.currentProgram == name {
			f.raise(rawgl.InvalidOperation)
			return
		}
		f.link(p)
	}
	fns.ValidateProgram = func(name uint32) {
		if p := f.programObject(name); p != nil {
			p.validated = p.linked
		}
	}
	fns.UseProgram = func(name uint32) {
		if name == 0 {
			f.currentProgram = 0
			return
		}
		p := f.programObject(name)
		switch {
		case p == nil:
		case !p.linked, f.feedback:
			f.raise(rawgl.InvalidOperation)
		default:
			f.currentProgram = name
		}
	}
	fns.GetProgramiv = func(name, pname uint32, params *int32) {
		p := f.programObject(name)
		if p == nil {
			return
		}
		switch pname {
		case rawgl.LinkStatus:
			*params = fakeBool(p.linked)
		case rawgl.DeleteStatus:
			*params = rawgl.False
		case rawgl.ValidateStatus:
			*params = fakeBool(p.validated)
		case rawgl.InfoLogLength:
			*params = fakeLength(p.log)
		case rawgl.AttachedShaders:
			*params = int32(len(p.attached))
		case rawgl.ActiveUniforms:
			*params = int32(len(p.uniforms))
		case rawgl.ActiveAttributes:
			*params = int32(len(p.attribs))
		case rawgl.TransformFeedbackBufferMode:
			*params = rawgl.InterleavedAttribs
		case rawgl.ActiveAtomicCounterBuffers, rawgl.ActiveAttributeMaxLength, rawgl.ActiveUniformMaxLength,
			rawgl.ActiveUniformBlocks, rawgl.ActiveUniformBlockMaxNameLength, rawgl.ProgramBinaryLength,
			rawgl.TransformFeedbackVaryings, rawgl.TransformFeedbackVaryingMaxLength:
			*params = 0
		case rawgl.ComputeWorkGroupSize, rawgl.GeometryVerticesOut, rawgl.GeometryInputType, rawgl.GeometryOutputType:
			f.raise(rawgl.InvalidOperation)
		default:
			f.raise(rawgl.InvalidEnum)
		}
	}
	fns.GetProgramInfoLog = func(name uint32, bufSize int32, length *int32, infoLog *byte) {
		if p := f.programObject(name); p != nil {
			*length = fakeCopyLog(p.log, bufSize, infoLog)
		}
	}
	location := func(name uint32, str *byte, lookup func(p *fakeProgram, s string) int32) int32 {
		p := f.programObject(name)
		if p == nil {
			return -1
		}
		if !p.linked {
			f.raise(rawgl.InvalidOperation)
			return -1
		}
		s := rawgl.GoString(str)
		if strings.HasPrefix(s, "gl_") {
			return -1
		}
		return lookup(p, s)
	}
	fns.GetUniformLocation = func(name uint32, str *byte) int32 {
		return location(name, str, func(p *fakeProgram, s string) int32 {
			if u, ok := p.uniforms[s]; ok {
				return u.location
			}
			return -1
		})
	}
	fns.GetAttribLocation = func(name uint32, str *byte) int32 {
		return location(name, str, func(p *fakeProgram, s string) int32 {
			if l, ok := p.attribs[s]; ok {
				return l
			}
			return -1
		})
	}
}

func (f *fakeGL) uniformFunctions(fns *rawgl.Functions) {
	fns.Uniform1f = func(l int32, _ float32) { f.uniform(l, 1, "float") }
	fns.Uniform2f = func(l int32, _, _ float32) { f.uniform(l, 1, "vec2") }
	fns.Uniform3f = func(l int32, _, _, _ float32) { f.uniform(l, 1, "vec3") }
	fns.Uniform4f = func(l int32, _, _, _, _ float32) { f.uniform(l, 1, "vec4") }
	fns.Uniform1i = func(l int32, _ int32) { f.uniform(l, 1, "int", "bool") }
	fns.Uniform2i = func(l int32, _, _ int32) { f.uniform(l, 1, "ivec2") }
	fns.Uniform3i = func(l int32, _, _, _ int32) { f.uniform(l, 1, "ivec3") }
	fns.Uniform4i = func(l int32, _, _, _, _ int32) { f.uniform(l, 1, "ivec4") }
	fns.Uniform1ui = func(l int32, _ uint32) { f.uniform(l, 1, "uint") }
	fns.Uniform2ui = func(l int32, _, _ uint32) { f.uniform(l, 1, "uvec2") }
	fns.Uniform3ui = func(l int32, _, _, _ uint32) { f.uniform(l, 1, "uvec3") }
	fns.Uniform4ui = func(l int32, _, _, _, _ uint32) { f.uniform(l, 1, "uvec4") }
	fns.Uniform1fv = func(l, n int32, _ *float32) { f.uniform(l, n, "float") }
	fns.Uniform2fv = func(l, n int32, _ *float32) { f.uniform(l, n, "vec2") }
	fns.Uniform3fv = func(l, n int32, _ *float32) { f.uniform(l, n, "vec3") }
	fns.Uniform4fv = func(l, n int32, _ *float32) { f.uniform(l, n, "vec4") }
	fns.Uniform1iv = func(l, n int32, _ *int32) { f.uniform(l, n, "int", "bool") }
	fns.Uniform2iv = func(l, n int32, _ *int32) { f.uniform(l, n, "ivec2") }
	fns.Uniform3iv = func(l, n int32, _ *int32) { f.uniform(l, n, "ivec3") }
	fns.Uniform4iv = func(l, n int32, _ *int32) { f.uniform(l, n, "ivec4") }
	fns.Uniform1uiv = func(l, n int32, _ *uint32) { f.uniform(l, n, "uint") }
	fns.Uniform2uiv = func(l, n int32, _ *uint32) { f.uniform(l, n, "uvec2") }
	fns.Uniform3uiv = func(l, n int32, _ *uint32) { f.uniform(l, n, "uvec3") }
	fns.Uniform4uiv = func(l, n int32, _ *uint32) { f.uniform(l, n, "uvec4") }
	fns.UniformMatrix2fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat2") }
	fns.UniformMatrix3fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat3") }
	fns.UniformMatrix4fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat4") }
	fns.UniformMatrix2x3fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat2x3") }
	fns.UniformMatrix3x2fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat3x2") }
	fns.UniformMatrix2x4fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat2x4") }
	fns.UniformMatrix4x2fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat4x2") }
	fns.UniformMatrix3x4fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat3x4") }
	fns.UniformMatrix4x3fv = func(l, n int32, _ bool, _ *float32) { f.uniform(l, n, "mat4x3") }
}

func (f *fakeGL) framebufferFunctions(fns *rawgl.Functions) {
	fns.GenFramebuffers = func(n int32, p *uint32) {
		names := fakeNames(n, p)
		for i := range names {
			names[i] = f.name()
			f.framebuffers[names[i]] = &fakeFramebuffer{attachments: map[uint32]uint32{}}
		}
	}
	fns.DeleteFramebuffers = func(n int32, p *uint32) {
		for _, name := range fakeNames(n, p) {
			delete(f.framebuffers, name)
			if f.drawFB == name {
				f.drawFB = 0
			}
			if f.readFB == name {
				f.readFB = 0
			}
		}
	}
	fns.IsFramebuffer = func(name uint32) bool {
		fb := f.framebuffers[name]
		return fb != nil && fb.object
	}
	fns.BindFramebuffer = func(target, name uint32) {
		if target != rawgl.DrawFramebuffer && target != rawgl.ReadFramebuffer && target != rawgl.Framebuffer {
			f.raise(rawgl.InvalidEnum)
			return
		}
		if name != 0 {
			fb, ok := f.framebuffers[name]
			if !ok {
				f.raise(rawgl.InvalidOperation)
				return
			}
			fb.object = true
		}
		if target != rawgl.ReadFramebuffer {
			f.drawFB = name
		}
		if target != rawgl.DrawFramebuffer {
			f.readFB = name
		}
	}
	fns.CheckFramebufferStatus = func(target uint32) uint32 {
		bound, ok := f.framebufferTarget(target)
		switch {
		case !ok:
			return 0
		case *bound == 0:
			return rawgl.FramebufferComplete
		case len(f.framebuffers[*bound].attachments) == 0:
			return rawgl.IncompleteMissingAttachment
		}
		return rawgl.FramebufferComplete
	}
	fns.FramebufferRenderbuffer = func(target, attachment, rbTarget, name uint32) {
		if rbTarget != rawgl.Renderbuffer {
			f.raise(rawgl.InvalidEnum)
			return
		}
		rb := f.renderbuffers[name]
		f.attach(target, attachment, name, name == 0 || rb != nil && rb.object)
	}
	fns.FramebufferTexture2D = func(target, attachment, texTarget, name uint32, level int32) {
		t := f.textures[name]
		f.attach(target, attachment, name, name == 0 || t != nil)
	}
	fns.GenRenderbuffers = func(n int32, p *uint32) {
		names := fakeNames(n, p)
		for i := range names {
			names[i] = f.name()
			f.renderbuffers[names[i]] = &fakeRenderbuffer{}
		}
	}
	fns.DeleteRenderbuffers = func(n int32, p *uint32) {
		for _, name := range fakeNames(n, p) {
			delete(f.renderbuffers, name)
			if f.boundRB == name {
				f.boundRB = 0
			}
		}
	}
	fns.IsRenderbuffer = func(name uint32) bool {
		rb := f.renderbuffers[name]
		return rb != nil && rb.object
	}
	fns.BindRenderbuffer = func(target, name uint32) {
		if target != rawgl.Renderbuffer {
			f.raise(rawgl.InvalidEnum)
			return
		}
		if name != 0 {
			rb, ok := f.renderbuffers[name]
			if !ok {
				f.raise(rawgl.InvalidOperation)
				return
			}
			rb.object = true
		}
		f.boundRB = name
	}
	fns.RenderbufferStorage = func(target, internalFormat uint32, width, height int32) {
		switch {
		case target != rawgl.Renderbuffer:
			f.raise(rawgl.InvalidEnum)
		case f.boundRB == 0:
			f.raise(rawgl.InvalidOperation)
		case width < 0, height < 0:
			f.raise(rawgl.InvalidValue)
		}
	}
}

func (f *fakeGL) stateFunctions(fns *rawgl.Functions) {
	fns.DrawArrays = func(mode uint32, first, count int32) { f.draw(mode, count, false) }
	fns.DrawArraysInstanced = func(mode uint32, first, count, instances int32) { f.draw(mode, count, false) }
	fns.DrawElements = func(mode uint32, count int32, xtype uint32, offset uintptr) {
		_, err := IndicesTypeFromGL(xtype)
		f.enum(err == nil)
		f.draw(mode, count, true)
	}
	fns.DrawElementsInstanced = func(mode uint32, count int32, xtype uint32, offset uintptr, instances int32) {
		_, err := IndicesTypeFromGL(xtype)
		f.enum(err == nil)
		f.draw(mode, count, true)
	}

	fns.Enable = func(c uint32) {
		if f.capability(c) {
			f.enabled[c] = true
		}
	}
	fns.Disable = func(c uint32) {
		if f.capability(c) {
			f.enabled[c] = false
		}
	}
	fns.IsEnabled = func(c uint32) bool { return f.capability(c) && f.enabled[c] }
	fns.Clear = func(mask uint32) {
		if _, ok := ClearMaskFromBits(mask); !ok {
			f.raise(rawgl.InvalidValue)
		}
	}
	fns.ClearColor = func(r, g, b, a float32) { f.calls = append(f.calls, "ClearColor") }
	fns.ClearDepth = func(float64) {}
	fns.ClearStencil = func(int32) {}
	fns.Viewport = func(x, y, width, height int32) {
		if width < 0 || height < 0 {
			f.raise(rawgl.InvalidValue)
		}
	}
	compare := func(fn uint32) bool {
		_, err := CompareFuncFromGL(fn)
		return err == nil
	}
	face := func(v uint32) bool {
		_, err := StencilFaceFromGL(v)
		return err == nil
	}
	op := func(v ...uint32) bool {
		for _, o := range v {
			if _, err := StencilOpFromGL(o); err != nil {
				return false
			}
		}
		return true
	}
	blend := func(v ...uint32) bool {
		for _, b := range v {
			if _, err := BlendFactorFromGL(b); err != nil {
				return false
			}
		}
		return true
	}
	fns.DepthFunc = func(fn uint32) { f.enum(compare(fn)) }
	fns.DepthMask = func(bool) {}
	fns.StencilFunc = func(fn uint32, ref int32, mask uint32) { f.enum(compare(fn)) }
	fns.StencilFuncSeparate = func(fc, fn uint32, ref int32, mask uint32) { f.enum(face(fc) && compare(fn)) }
	fns.StencilMask = func(uint32) {}
	fns.StencilMaskSeparate = func(fc, mask uint32) { f.enum(face(fc)) }
	fns.StencilOp = func(a, b, c uint32) { f.enum(op(a, b, c)) }
	fns.StencilOpSeparate = func(fc, a, b, c uint32) { f.enum(face(fc) && op(a, b, c)) }
	fns.BlendFunc = func(s, d uint32) { f.enum(blend(s, d)) }
	fns.BlendFunci = func(buf, s, d uint32) {
		if buf >= fakeMaxDrawBuffers {
			f.raise(rawgl.InvalidValue)
			return
		}
		f.enum(blend(s, d))
	}
	fns.PixelStorei = func(pname uint32, param int32) {
		if param != 1 && param != 2 && param != 4 && param != 8 {
			f.raise(rawgl.InvalidValue)
			return
		}
		switch pname {
		case rawgl.PackAlignment:
			f.pack = param
		case rawgl.UnpackAlignment:
			f.unpack = param
		default:
			f.raise(rawgl.InvalidEnum)
		}
	}
	fns.ReadPixels = func(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
		if width < 0 || height < 0 {
			f.raise(rawgl.InvalidValue)
		}
	}
}

func fakeBool(b bool) int32 {
	if b {
		return rawgl.True
	}
	return rawgl.False
}

func fakeLength(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}

func fakeCopyLog(log string, bufSize int32, dst *byte) int32 {
	if bufSize <= 0 || dst == nil {
		return 0
	}
	buf := unsafe.Slice(dst, bufSize)
	n := copy(buf[:bufSize-1], log)
	buf[n] = 0
	return int32(n)
}

// withoutDSA removes the OpenGL 4.x entry points, as on a 3.3 driver.
func withoutDSA(fns *rawgl.Functions) {
	fns.BufferStorage = nil
	fns.CreateBuffers = nil
	fns.NamedBufferData = nil
	fns.NamedBufferSubData = nil
	fns.NamedBufferStorage = nil
	fns.MapNamedBuffer = nil
	fns.MapNamedBufferRange = nil
	fns.UnmapNamedBuffer = nil
	fns.GetNamedBufferSubData = nil
	fns.GetNamedBufferParameteriv = nil
	fns.GetNamedBufferParameteri64v = nil
	fns.VertexAttribLPointer = nil
	fns.CreateVertexArrays = nil
	fns.EnableVertexArrayAttrib = nil
	fns.DisableVertexArrayAttrib = nil
	fns.VertexArrayElementBuffer = nil
	fns.VertexArrayVertexBuffer = nil
	fns.VertexArrayAttribFormat = nil
	fns.VertexArrayAttribIFormat = nil
	fns.VertexArrayAttribBinding = nil
	fns.CreateTextures = nil
	fns.GenerateTextureMipmap = nil
	fns.TextureParameteri = nil
	fns.TextureParameterfv = nil
	fns.BlendFunci = nil
}
