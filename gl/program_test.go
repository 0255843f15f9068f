package gl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVertexSource = `#version 330 core
in vec3 position;
uniform mat4 transform;
uniform float scale;
uniform sampler2D image;
void main() {}
`
	testFragmentSource = `#version 330 core
out vec4 colour;
uniform vec4 tint;
void main() {}
`
)

func compiledShader(t *testing.T, c *Context, typ ShaderType, source string) Shader {
	t.Helper()
	s, err := c.CreateShader(typ)
	require.NoError(t, err)
	require.NoError(t, c.ShaderSourceString(s, source))
	require.NoError(t, c.CompileShader(s))
	ok, err := c.GetShaderCompileStatus(s)
	require.NoError(t, err)
	require.True(t, ok)
	return s
}

func linkedProgram(t *testing.T, c *Context) Program {
	t.Helper()
	p, err := c.CreateProgram()
	require.NoError(t, err)
	require.NoError(t, c.AttachShader(p, compiledShader(t, c, VertexShader, testVertexSource)))
	require.NoError(t, c.AttachShader(p, compiledShader(t, c, FragmentShader, testFragmentSource)))
	require.NoError(t, c.LinkProgram(p))
	ok, err := c.GetProgramLinkStatus(p)
	require.NoError(t, err)
	require.True(t, ok)
	return p
}

func TestShaderCompileFailure(t *testing.T) {
	c, _ := newTestContext(t)

	s, err := c.CreateShader(VertexShader)
	require.NoError(t, err)
	assert.True(t, c.IsShader(s))
	require.NoError(t, c.ShaderSource(s, []byte("bogus")))
	require.NoError(t, c.CompileShader(s))

	ok, err := c.GetShaderCompileStatus(s)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.GetShaderInfoLogLength(s)
	require.NoError(t, err)
	assert.NotZero(t, n)

	buf := make([]byte, n)
	written, err := c.GetShaderInfoLog(s, buf)
	require.NoError(t, err)
	assert.Equal(t, int(n)-1, written)
	assert.Contains(t, string(buf[:written]), "syntax error")

	typ, err := c.GetShaderType(s)
	require.NoError(t, err)
	assert.Equal(t, VertexShader, typ)

	srcLen, err := c.GetShaderSourceLength(s)
	require.NoError(t, err)
	assert.EqualValues(t, len("bogus")+1, srcLen)

	require.NoError(t, c.DeleteShader(s))
	deleted, err := c.GetShaderDeleteStatus(s)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestProgramLinkFailure(t *testing.T) {
	c, _ := newTestContext(t)

	fs := compiledShader(t, c, FragmentShader, testFragmentSource)
	p, err := c.CreateProgram()
	require.NoError(t, err)
	assert.True(t, c.IsProgram(p))
	require.NoError(t, c.AttachShader(p, fs))
	require.NoError(t, c.LinkProgram(p))

	ok, err := c.GetProgramLinkStatus(p)
	require.NoError(t, err)
	assert.False(t, ok)

	attached, err := c.GetProgramAttachedShaders(p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, attached)

	n, err := c.GetProgramInfoLogLength(p)
	require.NoError(t, err)
	require.NotZero(t, n)
	buf := make([]byte, n)
	written, err := c.GetProgramInfoLog(p, buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:written]), "linking")
}

func TestUniformWithoutProgram(t *testing.T) {
	requireChecks(t)
	c, _ := newTestContext(t)

	err := c.Uniform1f32(UniformLocationFromRaw(0), 1)
	require.Error(t, err)
	assert.Equal(t, KindNoProgramInUse, KindOf(err))
	assert.True(t, errors.Is(err, InvalidOperation))

	err = c.UniformMatrix4f32v(NoUniformLocation, ColumnMajor, nil)
	assert.Equal(t, KindNoProgramInUse, KindOf(err))
}

func TestProgramUniforms(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkedProgram(t, c)
	require.NoError(t, c.UseProgram(p))

	transform, err := c.GetUniformLocation(p, "transform")
	require.NoError(t, err)
	assert.True(t, transform.Valid())
	scale, err := c.GetUniformLocation(p, "scale\x00")
	require.NoError(t, err)
	image, err := c.GetUniformLocation(p, "image")
	require.NoError(t, err)
	tint, err := c.GetUniformLocation(p, "tint")
	require.NoError(t, err)

	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	require.NoError(t, c.UniformMatrix4f32v(transform, ColumnMajor, [][16]float32{identity}))
	require.NoError(t, c.UniformMatrix4f32v(transform, RowMajor, [][16]float32{identity}))
	require.NoError(t, c.Uniform1f32(scale, 2))
	require.NoError(t, c.Uniform1f32v(scale, []float32{2}))
	require.NoError(t, c.Uniform1i32(image, 0))
	require.NoError(t, c.Uniform4f32(tint, 1, 0.5, 0.25, 1))
	require.NoError(t, c.Uniform4f32v(tint, [][4]float32{{1, 1, 1, 1}}))

	// Writes to location -1 are ignored.
	require.NoError(t, c.Uniform3f32(NoUniformLocation, 0, 0, 0))

	attrib, err := c.GetAttribLocation(p, "position")
	require.NoError(t, err)
	assert.EqualValues(t, 0, attrib)

	uniforms, err := c.GetProgramActiveUniforms(p)
	require.NoError(t, err)
	assert.EqualValues(t, 4, uniforms)
	attributes, err := c.GetProgramActiveAttributes(p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, attributes)

	mode, err := c.GetProgramTransformFeedbackBufferMode(p)
	require.NoError(t, err)
	assert.Equal(t, InterleavedAttribs, mode)

	require.NoError(t, c.ValidateProgram(p))
	valid, err := c.GetProgramValidateStatus(p)
	require.NoError(t, err)
	assert.True(t, valid)

	if !errorChecks {
		return
	}
	err = c.Uniform1i32(scale, 1)
	assert.Equal(t, KindUniformMismatch, KindOf(err))
	err = c.Uniform1f32v(scale, []float32{1, 2})
	assert.Equal(t, KindUniformMismatch, KindOf(err))
	err = c.Uniform3u32(tint, 1, 2, 3)
	assert.Equal(t, KindUniformMismatch, KindOf(err))
}

func TestUnknownNames(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkedProgram(t, c)

	for _, name := range []string{"gl_Position", "gl_FragCoord\x00", "missing"} {
		loc, err := c.GetUniformLocation(p, name)
		assert.Equal(t, NoUniformLocation, loc)
		assert.Equal(t, KindUnknownUniformName, KindOf(err), name)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.NotContains(t, e.Name, "\x00")
		assert.Equal(t, p, e.Program)
	}

	_, err := c.GetAttribLocation(p, "normal")
	assert.Equal(t, KindUnknownAttributeName, KindOf(err))
}

func TestLocationOfUnlinkedProgram(t *testing.T) {
	requireChecks(t)
	c, _ := newTestContext(t)
	p, err := c.CreateProgram()
	require.NoError(t, err)

	_, err = c.GetUniformLocation(p, "scale")
	assert.Equal(t, KindUnlinkedProgram, KindOf(err))
	_, err = c.GetAttribLocation(p, "position")
	assert.Equal(t, KindUnlinkedProgram, KindOf(err))

	_, err = c.GetUniformLocation(ProgramFromRaw(999), "scale")
	assert.Equal(t, KindNonOpenGLProgram, KindOf(err))
}

func TestAttachShader(t *testing.T) {
	requireChecks(t)
	c, _ := newTestContext(t)

	vs := compiledShader(t, c, VertexShader, testVertexSource)
	fs := compiledShader(t, c, FragmentShader, testFragmentSource)
	p, err := c.CreateProgram()
	require.NoError(t, err)

	require.NoError(t, c.AttachShader(p, vs))
	err = c.AttachShader(p, vs)
	assert.Equal(t, KindShaderAlreadyAttachedToProgram, KindOf(err))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, p, e.Program)
	assert.Equal(t, vs, e.Shader)

	err = c.DetachShader(p, fs)
	assert.Equal(t, KindShaderNotAttachedToProgram, KindOf(err))
	require.NoError(t, c.DetachShader(p, vs))

	tests := []struct {
		name    string
		program Program
		shader  Shader
		want    ErrorKind
	}{
		{"unknown shader", p, ShaderFromRaw(999), KindNonOpenGLShader},
		{"unknown program", ProgramFromRaw(999), vs, KindNonOpenGLProgram},
		{"program as shader", p, ShaderFromRaw(p.Raw()), KindNotAShader},
		{"shader as program", ProgramFromRaw(fs.Raw()), vs, KindNotAProgram},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(c.AttachShader(tt.program, tt.shader)))
		})
	}
}

func TestShaderObjectErrors(t *testing.T) {
	requireChecks(t)
	c, _ := newTestContext(t)
	p, err := c.CreateProgram()
	require.NoError(t, err)

	err = c.ShaderSourceString(ShaderFromRaw(999), "#version 330 core")
	assert.Equal(t, KindNonOpenGLShader, KindOf(err))

	err = c.CompileShader(ShaderFromRaw(p.Raw()))
	assert.Equal(t, KindNotAShader, KindOf(err))

	_, err = c.GetShaderCompileStatus(ShaderFromRaw(999))
	assert.Equal(t, KindNonOpenGLShader, KindOf(err))

	_, err = c.CreateShader(ShaderType(0x1234))
	assert.Equal(t, KindOpenGL, KindOf(err))
	assert.True(t, errors.Is(err, InvalidEnum))

	require.NoError(t, c.DeleteShader(Shader{}))
	assert.Equal(t, KindNonOpenGLShader, KindOf(c.DeleteShader(ShaderFromRaw(999))))
}

func TestShaderSourceForms(t *testing.T) {
	c, f := newTestContext(t)
	s, err := c.CreateShader(FragmentShader)
	require.NoError(t, err)

	src := []byte(testFragmentSource)
	require.NoError(t, c.ShaderSource(s, src))
	assert.Equal(t, testFragmentSource, f.shaders[s.Raw()].source)

	built := strings.Repeat("// padding\n", 64) + testFragmentSource
	require.NoError(t, c.ShaderSourceString(s, built))
	assert.Equal(t, built, f.shaders[s.Raw()].source)

	require.NoError(t, c.ShaderSourceString(s, ""))
	require.NoError(t, c.ShaderSource(s, nil))
	n, err := c.GetShaderSourceLength(s)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUseProgram(t *testing.T) {
	requireChecks(t)
	c, f := newTestContext(t)

	unlinked, err := c.CreateProgram()
	require.NoError(t, err)
	err = c.UseProgram(unlinked)
	assert.Equal(t, KindProgramCannotBeUsed, KindOf(err))
	assert.True(t, errors.Is(err, InvalidOperation))

	assert.Equal(t, KindNonOpenGLProgram, KindOf(c.UseProgram(ProgramFromRaw(999))))

	vs := compiledShader(t, c, VertexShader, testVertexSource)
	assert.Equal(t, KindNotAProgram, KindOf(c.UseProgram(ProgramFromRaw(vs.Raw()))))

	p := linkedProgram(t, c)
	f.feedback = true
	assert.Equal(t, KindTransformFeedbackModeActive, KindOf(c.UseProgram(p)))
	f.feedback = false

	require.NoError(t, c.UseProgram(p))
	require.NoError(t, c.UseProgram(Program{}))
	require.NoError(t, c.DeleteProgram(p))
	assert.False(t, c.IsProgram(p))
}

func TestProgramStageQueries(t *testing.T) {
	requireChecks(t)
	c, _ := newTestContext(t)
	p := linkedProgram(t, c)

	_, err := c.GetProgramComputeWorkGroupSize(p)
	assert.Equal(t, KindMissingComputeShader, KindOf(err))

	_, err = c.GetProgramGeometryVerticesOut(p)
	assert.Equal(t, KindMissingGeometryShader, KindOf(err))
	_, err = c.GetProgramGeometryInputType(p)
	assert.Equal(t, KindMissingGeometryShader, KindOf(err))
	_, err = c.GetProgramGeometryOutputType(p)
	assert.Equal(t, KindMissingGeometryShader, KindOf(err))

	_, err = c.GetProgramLinkStatus(ProgramFromRaw(999))
	assert.Equal(t, KindNonOpenGLProgram, KindOf(err))

	vs := compiledShader(t, c, VertexShader, testVertexSource)
	_, err = c.GetProgramLinkStatus(ProgramFromRaw(vs.Raw()))
	assert.Equal(t, KindNotAProgram, KindOf(err))

	for _, get := range []func(Program) (uint32, error){
		c.GetProgramActiveAtomicCounterBuffers,
		c.GetProgramActiveAttributeMaxLength,
		c.GetProgramActiveUniformMaxLength,
		c.GetProgramActiveUniformBlocks,
		c.GetProgramActiveUniformBlockMaxNameLength,
		c.GetProgramBinaryLength,
		c.GetProgramTransformFeedbackVaryings,
		c.GetProgramTransformFeedbackVaryingMaxLength,
	} {
		v, err := get(p)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}
