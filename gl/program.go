package gl

import (
	"strings"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// CreateProgram creates an empty program object.
func (c *Context) CreateProgram() (Program, error) {
	const op = "glCreateProgram"
	p := Program{c.fns.CreateProgram()}
	if code := c.poll(); code != NoError {
		return Program{}, c.unclassified(op, code)
	}
	if p.IsZero() {
		return Program{}, c.fail(&Error{Op: op, Kind: KindInvalidParameterValue})
	}
	return p, nil
}

// DeleteProgram flags program for deletion. It is deleted once it is no
// longer in use. The zero Program is ignored.
func (c *Context) DeleteProgram(program Program) error {
	const op = "glDeleteProgram"
	c.fns.DeleteProgram(program.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	default:
		return c.unclassified(op, code)
	}
}

// IsProgram reports whether p names a program object.
func (c *Context) IsProgram(p Program) bool {
	return c.fns.IsProgram(p.v)
}

// attachmentError refines errors raised by glAttachShader and
// glDetachShader. other is the kind reported when both names are valid.
func (c *Context) attachmentError(op string, code ErrorCode, program Program, shader Shader, other ErrorKind) error {
	switch code {
	case InvalidValue:
		if !c.fns.IsShader(shader.v) && !c.fns.IsProgram(shader.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLShader, Code: code, Shader: shader, Program: program})
		}
		if !c.fns.IsProgram(program.v) && !c.fns.IsShader(program.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Shader: shader, Program: program})
		}
		return c.unclassified(op, code)
	case InvalidOperation:
		if !c.fns.IsShader(shader.v) {
			return c.fail(&Error{Op: op, Kind: KindNotAShader, Code: code, Shader: shader, Program: program})
		}
		if !c.fns.IsProgram(program.v) {
			return c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Shader: shader, Program: program})
		}
		return c.fail(&Error{Op: op, Kind: other, Code: code, Shader: shader, Program: program})
	}
	return c.unclassified(op, code)
}

// AttachShader attaches shader to program.
func (c *Context) AttachShader(program Program, shader Shader) error {
	const op = "glAttachShader"
	c.fns.AttachShader(program.v, shader.v)
	if code := c.poll(); code != NoError {
		return c.attachmentError(op, code, program, shader, KindShaderAlreadyAttachedToProgram)
	}
	return nil
}

// DetachShader detaches shader from program.
func (c *Context) DetachShader(program Program, shader Shader) error {
	const op = "glDetachShader"
	c.fns.DetachShader(program.v, shader.v)
	if code := c.poll(); code != NoError {
		return c.attachmentError(op, code, program, shader, KindShaderNotAttachedToProgram)
	}
	return nil
}

// transformFeedbackActive reports whether transform feedback is active and
// not paused.
func (c *Context) transformFeedbackActive() bool {
	return c.getInteger(rawgl.TransformFeedbackActive) != rawgl.False &&
		c.getInteger(rawgl.TransformFeedbackPaused) == rawgl.False
}

// programError refines InvalidOperation raised by calls that change the
// executable of program. other is the kind reported when no specific cause
// is found.
func (c *Context) programError(op string, code ErrorCode, program Program, other ErrorKind) error {
	switch code {
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		if !c.fns.IsProgram(program.v) {
			return c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Program: program})
		}
		if c.transformFeedbackActive() {
			return c.fail(&Error{Op: op, Kind: KindTransformFeedbackModeActive, Code: code, Program: program})
		}
		if other == KindOpenGL {
			return c.plain(op, code)
		}
		return c.fail(&Error{Op: op, Kind: other, Code: code, Program: program})
	}
	return c.unclassified(op, code)
}

// LinkProgram links the shaders attached to program. Link failures are not
// errors: check GetProgramLinkStatus and GetProgramInfoLog.
func (c *Context) LinkProgram(program Program) error {
	c.fns.LinkProgram(program.v)
	if code := c.poll(); code != NoError {
		return c.programError("glLinkProgram", code, program, KindOpenGL)
	}
	return nil
}

// ValidateProgram checks whether program can execute in the current state.
// The outcome is read with GetProgramValidateStatus.
func (c *Context) ValidateProgram(program Program) error {
	const op = "glValidateProgram"
	c.fns.ValidateProgram(program.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Program: program})
	default:
		return c.unclassified(op, code)
	}
}

// UseProgram installs program as part of the current rendering state. The
// zero Program uninstalls the current one.
func (c *Context) UseProgram(program Program) error {
	c.fns.UseProgram(program.v)
	if code := c.poll(); code != NoError {
		return c.programError("glUseProgram", code, program, KindProgramCannotBeUsed)
	}
	return nil
}

func (c *Context) programParameter(program Program, pname uint32) (int32, error) {
	const op = "glGetProgramiv"
	var v int32
	c.fns.GetProgramiv(program.v, pname, &v)
	switch code := c.poll(); code {
	case NoError:
		return v, nil
	case InvalidEnum:
		return 0, c.plain(op, code)
	case InvalidValue:
		return 0, c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		kind := KindUnlinkedProgram
		switch {
		case !c.fns.IsProgram(program.v):
			kind = KindNotAProgram
		case pname == rawgl.ComputeWorkGroupSize:
			kind = KindMissingComputeShader
		case pname == rawgl.GeometryVerticesOut, pname == rawgl.GeometryInputType, pname == rawgl.GeometryOutputType:
			kind = KindMissingGeometryShader
		}
		return 0, c.fail(&Error{Op: op, Kind: kind, Code: code, Program: program})
	default:
		return 0, c.unclassified(op, code)
	}
}

func (c *Context) programBool(program Program, pname uint32) (bool, error) {
	v, err := c.programParameter(program, pname)
	if err != nil {
		return false, err
	}
	b, ok := glBool(int64(v))
	if !ok {
		return false, c.fail(&Error{Op: "glGetProgramiv", Kind: KindInvalidParameterValue, Program: program, Value: int64(v)})
	}
	return b, nil
}

func (c *Context) programCount(program Program, pname uint32) (uint32, error) {
	v, err := c.programParameter(program, pname)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, c.fail(&Error{Op: "glGetProgramiv", Kind: KindInvalidParameterValue, Program: program, Value: int64(v)})
	}
	return uint32(v), nil
}

func (c *Context) programPrimitive(program Program, pname uint32) (DrawMode, error) {
	v, err := c.programParameter(program, pname)
	if err != nil {
		return 0, err
	}
	mode, err := DrawModeFromGL(uint32(v))
	if err != nil {
		return 0, c.withOp("glGetProgramiv", err)
	}
	return mode, nil
}

// GetProgramLinkStatus reports whether the last link of program succeeded.
func (c *Context) GetProgramLinkStatus(program Program) (bool, error) {
	return c.programBool(program, rawgl.LinkStatus)
}

// GetProgramDeleteStatus reports whether program is flagged for deletion.
func (c *Context) GetProgramDeleteStatus(program Program) (bool, error) {
	return c.programBool(program, rawgl.DeleteStatus)
}

// GetProgramValidateStatus reports the outcome of the last ValidateProgram.
func (c *Context) GetProgramValidateStatus(program Program) (bool, error) {
	return c.programBool(program, rawgl.ValidateStatus)
}

func (c *Context) GetProgramInfoLogLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.InfoLogLength)
}

func (c *Context) GetProgramAttachedShaders(program Program) (uint32, error) {
	return c.programCount(program, rawgl.AttachedShaders)
}

func (c *Context) GetProgramActiveAtomicCounterBuffers(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveAtomicCounterBuffers)
}

func (c *Context) GetProgramActiveAttributes(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveAttributes)
}

func (c *Context) GetProgramActiveAttributeMaxLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveAttributeMaxLength)
}

func (c *Context) GetProgramActiveUniforms(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveUniforms)
}

func (c *Context) GetProgramActiveUniformMaxLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveUniformMaxLength)
}

func (c *Context) GetProgramActiveUniformBlocks(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveUniformBlocks)
}

func (c *Context) GetProgramActiveUniformBlockMaxNameLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ActiveUniformBlockMaxNameLength)
}

func (c *Context) GetProgramBinaryLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.ProgramBinaryLength)
}

// GetProgramComputeWorkGroupSize returns the local work group size of the
// compute shader of program.
func (c *Context) GetProgramComputeWorkGroupSize(program Program) ([3]uint32, error) {
	const op = "glGetProgramiv"
	var v [3]int32
	c.fns.GetProgramiv(program.v, rawgl.ComputeWorkGroupSize, &v[0])
	switch code := c.poll(); code {
	case NoError:
		return [3]uint32{uint32(v[0]), uint32(v[1]), uint32(v[2])}, nil
	case InvalidValue:
		return [3]uint32{}, c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		if !c.fns.IsProgram(program.v) {
			return [3]uint32{}, c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Program: program})
		}
		return [3]uint32{}, c.fail(&Error{Op: op, Kind: KindMissingComputeShader, Code: code, Program: program})
	default:
		return [3]uint32{}, c.unclassified(op, code)
	}
}

// GetProgramTransformFeedbackBufferMode returns how program records
// transform feedback varyings.
func (c *Context) GetProgramTransformFeedbackBufferMode(program Program) (TransformFeedbackBufferMode, error) {
	v, err := c.programParameter(program, rawgl.TransformFeedbackBufferMode)
	if err != nil {
		return 0, err
	}
	mode, err := TransformFeedbackBufferModeFromGL(uint32(v))
	if err != nil {
		return 0, c.withOp("glGetProgramiv", err)
	}
	return mode, nil
}

func (c *Context) GetProgramTransformFeedbackVaryings(program Program) (uint32, error) {
	return c.programCount(program, rawgl.TransformFeedbackVaryings)
}

func (c *Context) GetProgramTransformFeedbackVaryingMaxLength(program Program) (uint32, error) {
	return c.programCount(program, rawgl.TransformFeedbackVaryingMaxLength)
}

// GetProgramGeometryVerticesOut returns the maximum number of vertices the
// geometry shader of program emits.
func (c *Context) GetProgramGeometryVerticesOut(program Program) (uint32, error) {
	return c.programCount(program, rawgl.GeometryVerticesOut)
}

// GetProgramGeometryInputType returns the primitive the geometry shader of
// program accepts.
func (c *Context) GetProgramGeometryInputType(program Program) (RenderPrimitive, error) {
	return c.programPrimitive(program, rawgl.GeometryInputType)
}

// GetProgramGeometryOutputType returns the primitive the geometry shader of
// program emits.
func (c *Context) GetProgramGeometryOutputType(program Program) (RenderPrimitive, error) {
	return c.programPrimitive(program, rawgl.GeometryOutputType)
}

// GetProgramInfoLog copies the info log of program into buf and returns the
// number of bytes written, excluding the NUL terminator.
func (c *Context) GetProgramInfoLog(program Program, buf []byte) (int, error) {
	const op = "glGetProgramInfoLog"
	var written int32
	c.fns.GetProgramInfoLog(program.v, bufSize(buf), &written, first(buf))
	switch code := c.poll(); code {
	case NoError:
		return int(written), nil
	case InvalidValue:
		return 0, c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		return 0, c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Program: program})
	default:
		return 0, c.unclassified(op, code)
	}
}

// locationError refines errors of the location queries.
func (c *Context) locationError(op string, code ErrorCode, program Program) error {
	switch code {
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLProgram, Code: code, Program: program})
	case InvalidOperation:
		if !c.fns.IsProgram(program.v) {
			return c.fail(&Error{Op: op, Kind: KindNotAProgram, Code: code, Program: program})
		}
		return c.fail(&Error{Op: op, Kind: KindUnlinkedProgram, Code: code, Program: program})
	}
	return c.unclassified(op, code)
}

// GetUniformLocation returns the location of the active uniform name in
// program. name may carry a trailing NUL. Names starting with "gl_" and
// names of inactive uniforms fail with KindUnknownUniformName.
func (c *Context) GetUniformLocation(program Program, name string) (UniformLocation, error) {
	const op = "glGetUniformLocation"
	loc := c.fns.GetUniformLocation(program.v, first(cstring(name)))
	if code := c.poll(); code != NoError {
		return NoUniformLocation, c.locationError(op, code, program)
	}
	if loc < 0 {
		return NoUniformLocation, c.fail(&Error{Op: op, Kind: KindUnknownUniformName, Program: program, Name: strings.TrimSuffix(name, "\x00")})
	}
	return UniformLocation{loc}, nil
}

// GetAttribLocation returns the location of the active attribute name in
// program.
func (c *Context) GetAttribLocation(program Program, name string) (uint32, error) {
	const op = "glGetAttribLocation"
	loc := c.fns.GetAttribLocation(program.v, first(cstring(name)))
	if code := c.poll(); code != NoError {
		return 0, c.locationError(op, code, program)
	}
	if loc < 0 {
		return 0, c.fail(&Error{Op: op, Kind: KindUnknownAttributeName, Program: program, Name: strings.TrimSuffix(name, "\x00")})
	}
	return uint32(loc), nil
}
