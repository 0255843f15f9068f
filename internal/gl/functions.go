package gl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ProcAddressFunc resolves an entry point name such as "glGenBuffers" to its
// address in the current context. It returns 0 for unknown symbols.
type ProcAddressFunc func(name string) uintptr

// Functions holds one field per OpenGL entry point. Fields for entry points
// newer than 3.3 are nil when the driver does not export them.
type Functions struct {
	GetError    func() uint32
	GetString   func(name uint32) *byte
	GetIntegerv func(pname uint32, data *int32)

	// Buffers.
	GenBuffers                  func(n int32, buffers *uint32)
	DeleteBuffers               func(n int32, buffers *uint32)
	IsBuffer                    func(buffer uint32) bool
	BindBuffer                  func(target, buffer uint32)
	BindBufferBase              func(target, index, buffer uint32)
	BindBufferRange             func(target, index, buffer uint32, offset, size int)
	BufferData                  func(target uint32, size int, data unsafe.Pointer, usage uint32)
	BufferSubData               func(target uint32, offset, size int, data unsafe.Pointer)
	BufferStorage               func(target uint32, size int, data unsafe.Pointer, flags uint32)
	MapBuffer                   func(target, access uint32) unsafe.Pointer
	MapBufferRange              func(target uint32, offset, length int, access uint32) unsafe.Pointer
	FlushMappedBufferRange      func(target uint32, offset, length int)
	UnmapBuffer                 func(target uint32) bool
	GetBufferSubData            func(target uint32, offset, size int, data unsafe.Pointer)
	GetBufferParameteriv        func(target, pname uint32, params *int32)
	GetBufferParameteri64v      func(target, pname uint32, params *int64)
	GetBufferPointerv           func(target, pname uint32, params *unsafe.Pointer)
	CreateBuffers               func(n int32, buffers *uint32)
	NamedBufferData             func(buffer uint32, size int, data unsafe.Pointer, usage uint32)
	NamedBufferSubData          func(buffer uint32, offset, size int, data unsafe.Pointer)
	NamedBufferStorage          func(buffer uint32, size int, data unsafe.Pointer, flags uint32)
	MapNamedBuffer              func(buffer, access uint32) unsafe.Pointer
	MapNamedBufferRange         func(buffer uint32, offset, length int, access uint32) unsafe.Pointer
	UnmapNamedBuffer            func(buffer uint32) bool
	GetNamedBufferSubData       func(buffer uint32, offset, size int, data unsafe.Pointer)
	GetNamedBufferParameteriv   func(buffer, pname uint32, params *int32)
	GetNamedBufferParameteri64v func(buffer, pname uint32, params *int64)

	// Vertex arrays.
	GenVertexArrays          func(n int32, arrays *uint32)
	DeleteVertexArrays       func(n int32, arrays *uint32)
	IsVertexArray            func(array uint32) bool
	BindVertexArray          func(array uint32)
	EnableVertexAttribArray  func(index uint32)
	DisableVertexAttribArray func(index uint32)
	VertexAttribPointer      func(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer     func(index uint32, size int32, xtype uint32, stride int32, offset uintptr)
	VertexAttribLPointer     func(index uint32, size int32, xtype uint32, stride int32, offset uintptr)
	VertexAttribDivisor      func(index, divisor uint32)
	CreateVertexArrays       func(n int32, arrays *uint32)
	EnableVertexArrayAttrib  func(vaobj, index uint32)
	DisableVertexArrayAttrib func(vaobj, index uint32)
	VertexArrayElementBuffer func(vaobj, buffer uint32)
	VertexArrayVertexBuffer  func(vaobj, bindingIndex, buffer uint32, offset int, stride int32)
	VertexArrayAttribFormat  func(vaobj, attribIndex uint32, size int32, xtype uint32, normalized bool, relativeOffset uint32)
	VertexArrayAttribIFormat func(vaobj, attribIndex uint32, size int32, xtype uint32, relativeOffset uint32)
	VertexArrayAttribBinding func(vaobj, attribIndex, bindingIndex uint32)

	// Textures.
	GenTextures           func(n int32, textures *uint32)
	DeleteTextures        func(n int32, textures *uint32)
	IsTexture             func(texture uint32) bool
	ActiveTexture         func(texture uint32)
	BindTexture           func(target, texture uint32)
	TexImage1D            func(target uint32, level, internalFormat, width, border int32, format, xtype uint32, pixels unsafe.Pointer)
	TexImage2D            func(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	TexImage3D            func(target uint32, level, internalFormat, width, height, depth, border int32, format, xtype uint32, pixels unsafe.Pointer)
	TexSubImage2D         func(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	GenerateMipmap        func(target uint32)
	TexParameteri         func(target, pname uint32, param int32)
	TexParameterfv        func(target, pname uint32, params *float32)
	CreateTextures        func(target uint32, n int32, textures *uint32)
	GenerateTextureMipmap func(texture uint32)
	TextureParameteri     func(texture, pname uint32, param int32)
	TextureParameterfv    func(texture, pname uint32, params *float32)

	// Shaders and programs.
	CreateShader       func(xtype uint32) uint32
	DeleteShader       func(shader uint32)
	IsShader           func(shader uint32) bool
	ShaderSource       func(shader uint32, count int32, strings **byte, lengths *int32)
	CompileShader      func(shader uint32)
	GetShaderiv        func(shader, pname uint32, params *int32)
	GetShaderInfoLog   func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	CreateProgram      func() uint32
	DeleteProgram      func(program uint32)
	IsProgram          func(program uint32) bool
	AttachShader       func(program, shader uint32)
	DetachShader       func(program, shader uint32)
	LinkProgram        func(program uint32)
	ValidateProgram    func(program uint32)
	UseProgram         func(program uint32)
	GetProgramiv       func(program, pname uint32, params *int32)
	GetProgramInfoLog  func(program uint32, bufSize int32, length *int32, infoLog *byte)
	GetUniformLocation func(program uint32, name *byte) int32
	GetAttribLocation  func(program uint32, name *byte) int32

	// Uniforms.
	Uniform1f          func(location int32, v0 float32)
	Uniform2f          func(location int32, v0, v1 float32)
	Uniform3f          func(location int32, v0, v1, v2 float32)
	Uniform4f          func(location int32, v0, v1, v2, v3 float32)
	Uniform1i          func(location int32, v0 int32)
	Uniform2i          func(location int32, v0, v1 int32)
	Uniform3i          func(location int32, v0, v1, v2 int32)
	Uniform4i          func(location int32, v0, v1, v2, v3 int32)
	Uniform1ui         func(location int32, v0 uint32)
	Uniform2ui         func(location int32, v0, v1 uint32)
	Uniform3ui         func(location int32, v0, v1, v2 uint32)
	Uniform4ui         func(location int32, v0, v1, v2, v3 uint32)
	Uniform1fv         func(location, count int32, value *float32)
	Uniform2fv         func(location, count int32, value *float32)
	Uniform3fv         func(location, count int32, value *float32)
	Uniform4fv         func(location, count int32, value *float32)
	Uniform1iv         func(location, count int32, value *int32)
	Uniform2iv         func(location, count int32, value *int32)
	Uniform3iv         func(location, count int32, value *int32)
	Uniform4iv         func(location, count int32, value *int32)
	Uniform1uiv        func(location, count int32, value *uint32)
	Uniform2uiv        func(location, count int32, value *uint32)
	Uniform3uiv        func(location, count int32, value *uint32)
	Uniform4uiv        func(location, count int32, value *uint32)
	UniformMatrix2fv   func(location, count int32, transpose bool, value *float32)
	UniformMatrix3fv   func(location, count int32, transpose bool, value *float32)
	UniformMatrix4fv   func(location, count int32, transpose bool, value *float32)
	UniformMatrix2x3fv func(location, count int32, transpose bool, value *float32)
	UniformMatrix3x2fv func(location, count int32, transpose bool, value *float32)
	UniformMatrix2x4fv func(location, count int32, transpose bool, value *float32)
	UniformMatrix4x2fv func(location, count int32, transpose bool, value *float32)
	UniformMatrix3x4fv func(location, count int32, transpose bool, value *float32)
	UniformMatrix4x3fv func(location, count int32, transpose bool, value *float32)

	// Framebuffers and renderbuffers.
	GenFramebuffers         func(n int32, framebuffers *uint32)
	DeleteFramebuffers      func(n int32, framebuffers *uint32)
	IsFramebuffer           func(framebuffer uint32) bool
	BindFramebuffer         func(target, framebuffer uint32)
	CheckFramebufferStatus  func(target uint32) uint32
	FramebufferRenderbuffer func(target, attachment, renderbufferTarget, renderbuffer uint32)
	FramebufferTexture2D    func(target, attachment, texTarget, texture uint32, level int32)
	GenRenderbuffers        func(n int32, renderbuffers *uint32)
	DeleteRenderbuffers     func(n int32, renderbuffers *uint32)
	IsRenderbuffer          func(renderbuffer uint32) bool
	BindRenderbuffer        func(target, renderbuffer uint32)
	RenderbufferStorage     func(target, internalFormat uint32, width, height int32)

	// Drawing.
	DrawArrays            func(mode uint32, first, count int32)
	DrawArraysInstanced   func(mode uint32, first, count, instanceCount int32)
	DrawElements          func(mode uint32, count int32, xtype uint32, offset uintptr)
	DrawElementsInstanced func(mode uint32, count int32, xtype uint32, offset uintptr, instanceCount int32)

	// Global state.
	Enable              func(cap uint32)
	Disable             func(cap uint32)
	IsEnabled           func(cap uint32) bool
	Clear               func(mask uint32)
	ClearColor          func(r, g, b, a float32)
	ClearDepth          func(depth float64)
	ClearStencil        func(s int32)
	Viewport            func(x, y, width, height int32)
	DepthFunc           func(fn uint32)
	DepthMask           func(flag bool)
	StencilFunc         func(fn uint32, ref int32, mask uint32)
	StencilFuncSeparate func(face, fn uint32, ref int32, mask uint32)
	StencilMask         func(mask uint32)
	StencilMaskSeparate func(face, mask uint32)
	StencilOp           func(sfail, dpfail, dppass uint32)
	StencilOpSeparate   func(face, sfail, dpfail, dppass uint32)
	BlendFunc           func(sfactor, dfactor uint32)
	BlendFunci          func(buf, sfactor, dfactor uint32)
	PixelStorei         func(pname uint32, param int32)
	ReadPixels          func(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)

	missing []string
}

// Missing lists the optional entry points the loader could not resolve.
func (f *Functions) Missing() []string {
	return f.missing
}

// Load resolves every entry point through loader. It fails if any OpenGL 3.3
// core entry point is missing; later entry points are left nil and reported
// by Missing.
func Load(loader ProcAddressFunc) (*Functions, error) {
	if loader == nil {
		return nil, fmt.Errorf("load opengl: nil proc address loader")
	}

	var required []string
	gl := &Functions{}
	register := func(dst interface{}, name string) {
		addr := loader(name)
		if addr == 0 {
			required = append(required, name)
			return
		}
		purego.RegisterFunc(dst, addr)
	}
	optional := func(dst interface{}, name string) {
		addr := loader(name)
		if addr == 0 {
			gl.missing = append(gl.missing, name)
			return
		}
		purego.RegisterFunc(dst, addr)
	}

	register(&gl.GetError, "glGetError")
	register(&gl.GetString, "glGetString")
	register(&gl.GetIntegerv, "glGetIntegerv")

	register(&gl.GenBuffers, "glGenBuffers")
	register(&gl.DeleteBuffers, "glDeleteBuffers")
	register(&gl.IsBuffer, "glIsBuffer")
	register(&gl.BindBuffer, "glBindBuffer")
	register(&gl.BindBufferBase, "glBindBufferBase")
	register(&gl.BindBufferRange, "glBindBufferRange")
	register(&gl.BufferData, "glBufferData")
	register(&gl.BufferSubData, "glBufferSubData")
	register(&gl.MapBuffer, "glMapBuffer")
	register(&gl.MapBufferRange, "glMapBufferRange")
	register(&gl.FlushMappedBufferRange, "glFlushMappedBufferRange")
	register(&gl.UnmapBuffer, "glUnmapBuffer")
	register(&gl.GetBufferSubData, "glGetBufferSubData")
	register(&gl.GetBufferParameteriv, "glGetBufferParameteriv")
	register(&gl.GetBufferParameteri64v, "glGetBufferParameteri64v")
	register(&gl.GetBufferPointerv, "glGetBufferPointerv")
	// GL 4.4
	optional(&gl.BufferStorage, "glBufferStorage")
	// GL 4.5
	optional(&gl.CreateBuffers, "glCreateBuffers")
	optional(&gl.NamedBufferData, "glNamedBufferData")
	optional(&gl.NamedBufferSubData, "glNamedBufferSubData")
	optional(&gl.NamedBufferStorage, "glNamedBufferStorage")
	optional(&gl.MapNamedBuffer, "glMapNamedBuffer")
	optional(&gl.MapNamedBufferRange, "glMapNamedBufferRange")
	optional(&gl.UnmapNamedBuffer, "glUnmapNamedBuffer")
	optional(&gl.GetNamedBufferSubData, "glGetNamedBufferSubData")
	optional(&gl.GetNamedBufferParameteriv, "glGetNamedBufferParameteriv")
	optional(&gl.GetNamedBufferParameteri64v, "glGetNamedBufferParameteri64v")

	register(&gl.GenVertexArrays, "glGenVertexArrays")
	register(&gl.DeleteVertexArrays, "glDeleteVertexArrays")
	register(&gl.IsVertexArray, "glIsVertexArray")
	register(&gl.BindVertexArray, "glBindVertexArray")
	register(&gl.EnableVertexAttribArray, "glEnableVertexAttribArray")
	register(&gl.DisableVertexAttribArray, "glDisableVertexAttribArray")
	register(&gl.VertexAttribPointer, "glVertexAttribPointer")
	register(&gl.VertexAttribIPointer, "glVertexAttribIPointer")
	register(&gl.VertexAttribDivisor, "glVertexAttribDivisor")
	// GL 4.1
	optional(&gl.VertexAttribLPointer, "glVertexAttribLPointer")
	// GL 4.5
	optional(&gl.CreateVertexArrays, "glCreateVertexArrays")
	optional(&gl.EnableVertexArrayAttrib, "glEnableVertexArrayAttrib")
	optional(&gl.DisableVertexArrayAttrib, "glDisableVertexArrayAttrib")
	optional(&gl.VertexArrayElementBuffer, "glVertexArrayElementBuffer")
	optional(&gl.VertexArrayVertexBuffer, "glVertexArrayVertexBuffer")
	optional(&gl.VertexArrayAttribFormat, "glVertexArrayAttribFormat")
	optional(&gl.VertexArrayAttribIFormat, "glVertexArrayAttribIFormat")
	optional(&gl.VertexArrayAttribBinding, "glVertexArrayAttribBinding")

	register(&gl.GenTextures, "glGenTextures")
	register(&gl.DeleteTextures, "glDeleteTextures")
	register(&gl.IsTexture, "glIsTexture")
	register(&gl.ActiveTexture, "glActiveTexture")
	register(&gl.BindTexture, "glBindTexture")
	register(&gl.TexImage1D, "glTexImage1D")
	register(&gl.TexImage2D, "glTexImage2D")
	register(&gl.TexImage3D, "glTexImage3D")
	register(&gl.TexSubImage2D, "glTexSubImage2D")
	register(&gl.GenerateMipmap, "glGenerateMipmap")
	register(&gl.TexParameteri, "glTexParameteri")
	register(&gl.TexParameterfv, "glTexParameterfv")
	// GL 4.5
	optional(&gl.CreateTextures, "glCreateTextures")
	optional(&gl.GenerateTextureMipmap, "glGenerateTextureMipmap")
	optional(&gl.TextureParameteri, "glTextureParameteri")
	optional(&gl.TextureParameterfv, "glTextureParameterfv")

	register(&gl.CreateShader, "glCreateShader")
	register(&gl.DeleteShader, "glDeleteShader")
	register(&gl.IsShader, "glIsShader")
	register(&gl.ShaderSource, "glShaderSource")
	register(&gl.CompileShader, "glCompileShader")
	register(&gl.GetShaderiv, "glGetShaderiv")
	register(&gl.GetShaderInfoLog, "glGetShaderInfoLog")
	register(&gl.CreateProgram, "glCreateProgram")
	register(&gl.DeleteProgram, "glDeleteProgram")
	register(&gl.IsProgram, "glIsProgram")
	register(&gl.AttachShader, "glAttachShader")
	register(&gl.DetachShader, "glDetachShader")
	register(&gl.LinkProgram, "glLinkProgram")
	register(&gl.ValidateProgram, "glValidateProgram")
	register(&gl.UseProgram, "glUseProgram")
	register(&gl.GetProgramiv, "glGetProgramiv")
	register(&gl.GetProgramInfoLog, "glGetProgramInfoLog")
	register(&gl.GetUniformLocation, "glGetUniformLocation")
	register(&gl.GetAttribLocation, "glGetAttribLocation")

	register(&gl.Uniform1f, "glUniform1f")
	register(&gl.Uniform2f, "glUniform2f")
	register(&gl.Uniform3f, "glUniform3f")
	register(&gl.Uniform4f, "glUniform4f")
	register(&gl.Uniform1i, "glUniform1i")
	register(&gl.Uniform2i, "glUniform2i")
	register(&gl.Uniform3i, "glUniform3i")
	register(&gl.Uniform4i, "glUniform4i")
	register(&gl.Uniform1ui, "glUniform1ui")
	register(&gl.Uniform2ui, "glUniform2ui")
	register(&gl.Uniform3ui, "glUniform3ui")
	register(&gl.Uniform4ui, "glUniform4ui")
	register(&gl.Uniform1fv, "glUniform1fv")
	register(&gl.Uniform2fv, "glUniform2fv")
	register(&gl.Uniform3fv, "glUniform3fv")
	register(&gl.Uniform4fv, "glUniform4fv")
	register(&gl.Uniform1iv, "glUniform1iv")
	register(&gl.Uniform2iv, "glUniform2iv")
	register(&gl.Uniform3iv, "glUniform3iv")
	register(&gl.Uniform4iv, "glUniform4iv")
	register(&gl.Uniform1uiv, "glUniform1uiv")
	register(&gl.Uniform2uiv, "glUniform2uiv")
	register(&gl.Uniform3uiv, "glUniform3uiv")
	register(&gl.Uniform4uiv, "glUniform4uiv")
	register(&gl.UniformMatrix2fv, "glUniformMatrix2fv")
	register(&gl.UniformMatrix3fv, "glUniformMatrix3fv")
	register(&gl.UniformMatrix4fv, "glUniformMatrix4fv")
	register(&gl.UniformMatrix2x3fv, "glUniformMatrix2x3fv")
	register(&gl.UniformMatrix3x2fv, "glUniformMatrix3x2fv")
	register(&gl.UniformMatrix2x4fv, "glUniformMatrix2x4fv")
	register(&gl.UniformMatrix4x2fv, "glUniformMatrix4x2fv")
	register(&gl.UniformMatrix3x4fv, "glUniformMatrix3x4fv")
	register(&gl.UniformMatrix4x3fv, "glUniformMatrix4x3fv")

	register(&gl.GenFramebuffers, "glGenFramebuffers")
	register(&gl.DeleteFramebuffers, "glDeleteFramebuffers")
	register(&gl.IsFramebuffer, "glIsFramebuffer")
	register(&gl.BindFramebuffer, "glBindFramebuffer")
	register(&gl.CheckFramebufferStatus, "glCheckFramebufferStatus")
	register(&gl.FramebufferRenderbuffer, "glFramebufferRenderbuffer")
	register(&gl.FramebufferTexture2D, "glFramebufferTexture2D")
	register(&gl.GenRenderbuffers, "glGenRenderbuffers")
	register(&gl.DeleteRenderbuffers, "glDeleteRenderbuffers")
	register(&gl.IsRenderbuffer, "glIsRenderbuffer")
	register(&gl.BindRenderbuffer, "glBindRenderbuffer")
	register(&gl.RenderbufferStorage, "glRenderbufferStorage")

	register(&gl.DrawArrays, "glDrawArrays")
	register(&gl.DrawArraysInstanced, "glDrawArraysInstanced")
	register(&gl.DrawElements, "glDrawElements")
	register(&gl.DrawElementsInstanced, "glDrawElementsInstanced")

	register(&gl.Enable, "glEnable")
	register(&gl.Disable, "glDisable")
	register(&gl.IsEnabled, "glIsEnabled")
	register(&gl.Clear, "glClear")
	register(&gl.ClearColor, "glClearColor")
	register(&gl.ClearDepth, "glClearDepth")
	register(&gl.ClearStencil, "glClearStencil")
	register(&gl.Viewport, "glViewport")
	register(&gl.DepthFunc, "glDepthFunc")
	register(&gl.DepthMask, "glDepthMask")
	register(&gl.StencilFunc, "glStencilFunc")
	register(&gl.StencilFuncSeparate, "glStencilFuncSeparate")
	register(&gl.StencilMask, "glStencilMask")
	register(&gl.StencilMaskSeparate, "glStencilMaskSeparate")
	register(&gl.StencilOp, "glStencilOp")
	register(&gl.StencilOpSeparate, "glStencilOpSeparate")
	register(&gl.BlendFunc, "glBlendFunc")
	register(&gl.PixelStorei, "glPixelStorei")
	register(&gl.ReadPixels, "glReadPixels")
	// GL 4.0
	optional(&gl.BlendFunci, "glBlendFunci")

	if len(required) > 0 {
		return nil, fmt.Errorf("load opengl: missing core entry points: %s", strings.Join(required, ", "))
	}
	return gl, nil
}
