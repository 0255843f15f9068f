package gl

import (
	"runtime"
	"unsafe"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// CreateShader creates an empty shader object of type typ.
func (c *Context) CreateShader(typ ShaderType) (Shader, error) {
	const op = "glCreateShader"
	s := Shader{c.fns.CreateShader(typ.GLenum())}
	switch code := c.poll(); code {
	case NoError:
		return s, nil
	case InvalidEnum:
		return Shader{}, c.plain(op, code)
	default:
		return Shader{}, c.unclassified(op, code)
	}
}

// shaderResult classifies errors of calls taking a single shader.
func (c *Context) shaderResult(op string, shader Shader) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLShader, Code: code, Shader: shader})
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNotAShader, Code: code, Shader: shader})
	default:
		return c.unclassified(op, code)
	}
}

// DeleteShader flags shader for deletion. It is deleted once detached from
// every program. The zero Shader is ignored.
func (c *Context) DeleteShader(shader Shader) error {
	const op = "glDeleteShader"
	c.fns.DeleteShader(shader.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLShader, Code: code, Shader: shader})
	default:
		return c.unclassified(op, code)
	}
}

// IsShader reports whether s names a shader object.
func (c *Context) IsShader(s Shader) bool {
	return c.fns.IsShader(s.v)
}

// ShaderSource replaces the source code of shader. source need not be
// NUL-terminated.
func (c *Context) ShaderSource(shader Shader, source []byte) error {
	return c.shaderSource(shader, first(source), len(source))
}

// ShaderSourceString is ShaderSource with a string.
func (c *Context) ShaderSourceString(shader Shader, source string) error {
	return c.shaderSource(shader, unsafe.StringData(source), len(source))
}

// shaderSource hands OpenGL an array holding the one pointer data, so data
// is pinned for the duration of the call.
func (c *Context) shaderSource(shader Shader, data *byte, n int) error {
	const op = "glShaderSource"
	length, e := sizei(op, "length", n)
	if e != nil {
		return c.fail(e)
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()
	if data != nil {
		pinner.Pin(data)
	}
	c.fns.ShaderSource(shader.v, 1, &data, &length)
	return c.shaderResult(op, shader)
}

// CompileShader compiles shader. Compilation failures are not errors: check
// GetShaderCompileStatus and GetShaderInfoLog.
func (c *Context) CompileShader(shader Shader) error {
	c.fns.CompileShader(shader.v)
	return c.shaderResult("glCompileShader", shader)
}

func (c *Context) shaderParameter(shader Shader, pname uint32) (int32, error) {
	const op = "glGetShaderiv"
	var v int32
	c.fns.GetShaderiv(shader.v, pname, &v)
	if err := c.shaderResult(op, shader); err != nil {
		return 0, err
	}
	return v, nil
}

func (c *Context) shaderBool(shader Shader, pname uint32) (bool, error) {
	v, err := c.shaderParameter(shader, pname)
	if err != nil {
		return false, err
	}
	b, ok := glBool(int64(v))
	if !ok {
		return false, c.fail(&Error{Op: "glGetShaderiv", Kind: KindInvalidParameterValue, Shader: shader, Value: int64(v)})
	}
	return b, nil
}

func (c *Context) shaderLength(shader Shader, pname uint32) (uint32, error) {
	v, err := c.shaderParameter(shader, pname)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, c.fail(&Error{Op: "glGetShaderiv", Kind: KindInvalidParameterValue, Shader: shader, Value: int64(v)})
	}
	return uint32(v), nil
}

// GetShaderCompileStatus reports whether the last compilation of shader
// succeeded.
func (c *Context) GetShaderCompileStatus(shader Shader) (bool, error) {
	return c.shaderBool(shader, rawgl.CompileStatus)
}

// GetShaderDeleteStatus reports whether shader is flagged for deletion.
func (c *Context) GetShaderDeleteStatus(shader Shader) (bool, error) {
	return c.shaderBool(shader, rawgl.DeleteStatus)
}

// GetShaderType returns the stage shader was created for.
func (c *Context) GetShaderType(shader Shader) (ShaderType, error) {
	v, err := c.shaderParameter(shader, rawgl.ShaderType)
	if err != nil {
		return 0, err
	}
	typ, err := ShaderTypeFromGL(uint32(v))
	if err != nil {
		return 0, c.withOp("glGetShaderiv", err)
	}
	return typ, nil
}

// GetShaderInfoLogLength returns the size of the info log of shader
// including its NUL terminator, or zero if it is empty.
func (c *Context) GetShaderInfoLogLength(shader Shader) (uint32, error) {
	return c.shaderLength(shader, rawgl.InfoLogLength)
}

// GetShaderSourceLength returns the size of the source of shader including
// its NUL terminator, or zero if it has none.
func (c *Context) GetShaderSourceLength(shader Shader) (uint32, error) {
	return c.shaderLength(shader, rawgl.ShaderSourceLength)
}

// GetShaderInfoLog copies the info log of shader into buf and returns the
// number of bytes written, excluding the NUL terminator.
func (c *Context) GetShaderInfoLog(shader Shader, buf []byte) (int, error) {
	var written int32
	c.fns.GetShaderInfoLog(shader.v, bufSize(buf), &written, first(buf))
	if err := c.shaderResult("glGetShaderInfoLog", shader); err != nil {
		return 0, err
	}
	return int(written), nil
}
