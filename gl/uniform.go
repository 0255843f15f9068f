package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// The Uniform* setters write to the program currently in use. location must
// come from GetUniformLocation on that program.

func (c *Context) uniformResult(op string, location UniformLocation) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		if c.getInteger(rawgl.CurrentProgram) == 0 {
			return c.fail(&Error{Op: op, Kind: KindNoProgramInUse, Code: code, Value: int64(location.v)})
		}
		return c.fail(&Error{Op: op, Kind: KindUniformMismatch, Code: code, Value: int64(location.v)})
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) Uniform1f32(location UniformLocation, v0 float32) error {
	c.fns.Uniform1f(location.v, v0)
	return c.uniformResult("glUniform1f", location)
}

func (c *Context) Uniform2f32(location UniformLocation, v0, v1 float32) error {
	c.fns.Uniform2f(location.v, v0, v1)
	return c.uniformResult("glUniform2f", location)
}

func (c *Context) Uniform3f32(location UniformLocation, v0, v1, v2 float32) error {
	c.fns.Uniform3f(location.v, v0, v1, v2)
	return c.uniformResult("glUniform3f", location)
}

func (c *Context) Uniform4f32(location UniformLocation, v0, v1, v2, v3 float32) error {
	c.fns.Uniform4f(location.v, v0, v1, v2, v3)
	return c.uniformResult("glUniform4f", location)
}

func (c *Context) Uniform1i32(location UniformLocation, v0 int32) error {
	c.fns.Uniform1i(location.v, v0)
	return c.uniformResult("glUniform1i", location)
}

func (c *Context) Uniform2i32(location UniformLocation, v0, v1 int32) error {
	c.fns.Uniform2i(location.v, v0, v1)
	return c.uniformResult("glUniform2i", location)
}

func (c *Context) Uniform3i32(location UniformLocation, v0, v1, v2 int32) error {
	c.fns.Uniform3i(location.v, v0, v1, v2)
	return c.uniformResult("glUniform3i", location)
}

func (c *Context) Uniform4i32(location UniformLocation, v0, v1, v2, v3 int32) error {
	c.fns.Uniform4i(location.v, v0, v1, v2, v3)
	return c.uniformResult("glUniform4i", location)
}

func (c *Context) Uniform1u32(location UniformLocation, v0 uint32) error {
	c.fns.Uniform1ui(location.v, v0)
	return c.uniformResult("glUniform1ui", location)
}

func (c *Context) Uniform2u32(location UniformLocation, v0, v1 uint32) error {
	c.fns.Uniform2ui(location.v, v0, v1)
	return c.uniformResult("glUniform2ui", location)
}

func (c *Context) Uniform3u32(location UniformLocation, v0, v1, v2 uint32) error {
	c.fns.Uniform3ui(location.v, v0, v1, v2)
	return c.uniformResult("glUniform3ui", location)
}

func (c *Context) Uniform4u32(location UniformLocation, v0, v1, v2, v3 uint32) error {
	c.fns.Uniform4ui(location.v, v0, v1, v2, v3)
	return c.uniformResult("glUniform4ui", location)
}

// The v forms set count consecutive elements of a uniform array starting at
// location.

func (c *Context) Uniform1f32v(location UniformLocation, v []float32) error {
	n, e := sizei("glUniform1fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform1fv(location.v, n, first(v))
	return c.uniformResult("glUniform1fv", location)
}

func (c *Context) Uniform2f32v(location UniformLocation, v [][2]float32) error {
	n, e := sizei("glUniform2fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform2fv(location.v, n, (*float32)(pointer(v)))
	return c.uniformResult("glUniform2fv", location)
}

func (c *Context) Uniform3f32v(location UniformLocation, v [][3]float32) error {
	n, e := sizei("glUniform3fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform3fv(location.v, n, (*float32)(pointer(v)))
	return c.uniformResult("glUniform3fv", location)
}

func (c *Context) Uniform4f32v(location UniformLocation, v [][4]float32) error {
	n, e := sizei("glUniform4fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform4fv(location.v, n, (*float32)(pointer(v)))
	return c.uniformResult("glUniform4fv", location)
}

func (c *Context) Uniform1i32v(location UniformLocation, v []int32) error {
	n, e := sizei("glUniform1iv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform1iv(location.v, n, first(v))
	return c.uniformResult("glUniform1iv", location)
}

func (c *Context) Uniform2i32v(location UniformLocation, v [][2]int32) error {
	n, e := sizei("glUniform2iv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform2iv(location.v, n, (*int32)(pointer(v)))
	return c.uniformResult("glUniform2iv", location)
}

func (c *Context) Uniform3i32v(location UniformLocation, v [][3]int32) error {
	n, e := sizei("glUniform3iv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform3iv(location.v, n, (*int32)(pointer(v)))
	return c.uniformResult("glUniform3iv", location)
}

func (c *Context) Uniform4i32v(location UniformLocation, v [][4]int32) error {
	n, e := sizei("glUniform4iv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform4iv(location.v, n, (*int32)(pointer(v)))
	return c.uniformResult("glUniform4iv", location)
}

func (c *Context) Uniform1u32v(location UniformLocation, v []uint32) error {
	n, e := sizei("glUniform1uiv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform1uiv(location.v, n, first(v))
	return c.uniformResult("glUniform1uiv", location)
}

func (c *Context) Uniform2u32v(location UniformLocation, v [][2]uint32) error {
	n, e := sizei("glUniform2uiv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform2uiv(location.v, n, (*uint32)(pointer(v)))
	return c.uniformResult("glUniform2uiv", location)
}

func (c *Context) Uniform3u32v(location UniformLocation, v [][3]uint32) error {
	n, e := sizei("glUniform3uiv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform3uiv(location.v, n, (*uint32)(pointer(v)))
	return c.uniformResult("glUniform3uiv", location)
}

func (c *Context) Uniform4u32v(location UniformLocation, v [][4]uint32) error {
	n, e := sizei("glUniform4uiv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.Uniform4uiv(location.v, n, (*uint32)(pointer(v)))
	return c.uniformResult("glUniform4uiv", location)
}

// The matrix setters take each matrix as a flat array in the given order.

func (c *Context) UniformMatrix2f32v(location UniformLocation, order MatrixOrderMajor, v [][4]float32) error {
	n, e := sizei("glUniformMatrix2fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix2fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix2fv", location)
}

func (c *Context) UniformMatrix3f32v(location UniformLocation, order MatrixOrderMajor, v [][9]float32) error {
	n, e := sizei("glUniformMatrix3fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix3fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix3fv", location)
}

func (c *Context) UniformMatrix4f32v(location UniformLocation, order MatrixOrderMajor, v [][16]float32) error {
	n, e := sizei("glUniformMatrix4fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix4fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix4fv", location)
}

func (c *Context) UniformMatrix2x3f32v(location UniformLocation, order MatrixOrderMajor, v [][6]float32) error {
	n, e := sizei("glUniformMatrix2x3fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix2x3fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix2x3fv", location)
}

func (c *Context) UniformMatrix3x2f32v(location UniformLocation, order MatrixOrderMajor, v [][6]float32) error {
	n, e := sizei("glUniformMatrix3x2fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix3x2fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix3x2fv", location)
}

func (c *Context) UniformMatrix2x4f32v(location UniformLocation, order MatrixOrderMajor, v [][8]float32) error {
	n, e := sizei("glUniformMatrix2x4fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix2x4fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix2x4fv", location)
}

func (c *Context) UniformMatrix4x2f32v(location UniformLocation, order MatrixOrderMajor, v [][8]float32) error {
	n, e := sizei("glUniformMatrix4x2fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix4x2fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix4x2fv", location)
}

func (c *Context) UniformMatrix3x4f32v(location UniformLocation, order MatrixOrderMajor, v [][12]float32) error {
	n, e := sizei("glUniformMatrix3x4fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix3x4fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix3x4fv", location)
}

func (c *Context) UniformMatrix4x3f32v(location UniformLocation, order MatrixOrderMajor, v [][12]float32) error {
	n, e := sizei("glUniformMatrix4x3fv", "count", len(v))
	if e != nil {
		return c.fail(e)
	}
	c.fns.UniformMatrix4x3fv(location.v, n, order.Transpose(), (*float32)(pointer(v)))
	return c.uniformResult("glUniformMatrix4x3fv", location)
}
