package gl

import "fmt"

// Buffer names a buffer object. The zero Buffer is "no buffer".
type Buffer struct{ v uint32 }

// Framebuffer names a framebuffer object. The zero Framebuffer is the default
// framebuffer.
type Framebuffer struct{ v uint32 }

// Renderbuffer names a renderbuffer object.
type Renderbuffer struct{ v uint32 }

// Texture names a texture object. The zero Texture is the default texture of
// a target.
type Texture struct{ v uint32 }

// VertexArray names a vertex array object.
type VertexArray struct{ v uint32 }

// Shader names a shader object.
type Shader struct{ v uint32 }

// Program names a program object. The zero Program means no program in use.
type Program struct{ v uint32 }

// UniformLocation is a uniform's location in a linked program. Negative
// locations name nothing and are ignored by the Uniform* calls.
type UniformLocation struct{ v int32 }

// NoUniformLocation is the location OpenGL reports for unknown names.
var NoUniformLocation = UniformLocation{-1}

// The FromRaw constructors adopt names that came from outside this package.
// Nothing checks that the name refers to a live object of the right kind.

func BufferFromRaw(v uint32) Buffer                  { return Buffer{v} }
func FramebufferFromRaw(v uint32) Framebuffer        { return Framebuffer{v} }
func RenderbufferFromRaw(v uint32) Renderbuffer      { return Renderbuffer{v} }
func TextureFromRaw(v uint32) Texture                { return Texture{v} }
func VertexArrayFromRaw(v uint32) VertexArray        { return VertexArray{v} }
func ShaderFromRaw(v uint32) Shader                  { return Shader{v} }
func ProgramFromRaw(v uint32) Program                { return Program{v} }
func UniformLocationFromRaw(v int32) UniformLocation { return UniformLocation{v} }

func (b Buffer) Raw() uint32         { return b.v }
func (f Framebuffer) Raw() uint32    { return f.v }
func (r Renderbuffer) Raw() uint32   { return r.v }
func (t Texture) Raw() uint32        { return t.v }
func (a VertexArray) Raw() uint32    { return a.v }
func (s Shader) Raw() uint32         { return s.v }
func (p Program) Raw() uint32        { return p.v }
func (l UniformLocation) Raw() int32 { return l.v }

func (b Buffer) IsZero() bool       { return b.v == 0 }
func (f Framebuffer) IsZero() bool  { return f.v == 0 }
func (r Renderbuffer) IsZero() bool { return r.v == 0 }
func (t Texture) IsZero() bool      { return t.v == 0 }
func (a VertexArray) IsZero() bool  { return a.v == 0 }
func (s Shader) IsZero() bool       { return s.v == 0 }
func (p Program) IsZero() bool      { return p.v == 0 }

// Valid reports whether l names a uniform.
func (l UniformLocation) Valid() bool { return l.v >= 0 }

func (b Buffer) String() string          { return fmt.Sprintf("Buffer(%d)", b.v) }
func (f Framebuffer) String() string     { return fmt.Sprintf("Framebuffer(%d)", f.v) }
func (r Renderbuffer) String() string    { return fmt.Sprintf("Renderbuffer(%d)", r.v) }
func (t Texture) String() string         { return fmt.Sprintf("Texture(%d)", t.v) }
func (a VertexArray) String() string     { return fmt.Sprintf("VertexArray(%d)", a.v) }
func (s Shader) String() string          { return fmt.Sprintf("Shader(%d)", s.v) }
func (p Program) String() string         { return fmt.Sprintf("Program(%d)", p.v) }
func (l UniformLocation) String() string { return fmt.Sprintf("UniformLocation(%d)", l.v) }
