package gl

import (
	"errors"
	"fmt"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// ErrorCode is a value of the OpenGL error flag as returned by glGetError.
// Values outside the known set are kept as-is.
type ErrorCode uint32

const (
	NoError                     ErrorCode = rawgl.NoError
	InvalidEnum                 ErrorCode = rawgl.InvalidEnum
	InvalidValue                ErrorCode = rawgl.InvalidValue
	InvalidOperation            ErrorCode = rawgl.InvalidOperation
	StackOverflow               ErrorCode = rawgl.StackOverflow
	StackUnderflow              ErrorCode = rawgl.StackUnderflow
	OutOfMemory                 ErrorCode = rawgl.OutOfMemory
	InvalidFramebufferOperation ErrorCode = rawgl.InvalidFramebufferOperation
)

// Known reports whether c is one of the error codes defined by OpenGL.
func (c ErrorCode) Known() bool {
	switch c {
	case NoError, InvalidEnum, InvalidValue, InvalidOperation, StackOverflow,
		StackUnderflow, OutOfMemory, InvalidFramebufferOperation:
		return true
	}
	return false
}

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("unknown OpenGL error %#x", uint32(c))
}

func (c ErrorCode) Error() string {
	return c.String()
}

// ErrorKind classifies a failed call.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	// KindOpenGL is an error code the wrapper did not refine further.
	KindOpenGL

	KindNonOpenGLBuffer
	KindNotABuffer
	KindNonOpenGLFramebuffer
	KindNonOpenGLRenderbuffer
	KindNonOpenGLTexture
	KindNotATexture
	KindNonOpenGLVertexArray
	KindNonOpenGLShader
	KindNotAShader
	KindNonOpenGLProgram
	KindNotAProgram

	KindNoVertexArrayBound
	KindOutOfBoundsVertexAttributeIndex
	KindOutOfBoundsBindingIndex
	KindOutOfBoundsTextureUnit
	KindOutOfBoundsDrawBuffer
	KindUnknownUniformName
	KindUnknownAttributeName
	KindUnlinkedProgram
	KindTextureAttemptedTargetChange
	KindShaderAlreadyAttachedToProgram
	KindShaderNotAttachedToProgram
	KindProgramCannotBeUsed
	KindTransformFeedbackModeActive
	KindMissingComputeShader
	KindMissingGeometryShader
	KindNoProgramInUse
	KindUniformMismatch
	KindImmutableBufferTarget
	KindImmutableBuffer
	KindUnboundTarget
	KindBufferMapped
	KindBufferNotMapped
	KindNoFramebufferBound
	KindNoRenderbufferBound
	KindLengthOverflow
	KindPixelDataTooShort

	KindInvalidParameterValue
	KindConversionFailure
	KindMissingEntryPoint
	// KindUnreachable is an error code the call is documented never to raise.
	KindUnreachable
)

var kindNames = [...]string{
	KindNone:                            "None",
	KindOpenGL:                          "OpenGL",
	KindNonOpenGLBuffer:                 "NonOpenGLBuffer",
	KindNotABuffer:                      "NotABuffer",
	KindNonOpenGLFramebuffer:            "NonOpenGLFramebuffer",
	KindNonOpenGLRenderbuffer:           "NonOpenGLRenderbuffer",
	KindNonOpenGLTexture:                "NonOpenGLTexture",
	KindNotATexture:                     "NotATexture",
	KindNonOpenGLVertexArray:            "NonOpenGLVertexArray",
	KindNonOpenGLShader:                 "NonOpenGLShader",
	KindNotAShader:                      "NotAShader",
	KindNonOpenGLProgram:                "NonOpenGLProgram",
	KindNotAProgram:                     "NotAProgram",
	KindNoVertexArrayBound:              "NoVertexArrayBound",
	KindOutOfBoundsVertexAttributeIndex: "OutOfBoundsVertexAttributeIndex",
	KindOutOfBoundsBindingIndex:         "OutOfBoundsBindingIndex",
	KindOutOfBoundsTextureUnit:          "OutOfBoundsTextureUnit",
	KindOutOfBoundsDrawBuffer:           "OutOfBoundsDrawBuffer",
	KindUnknownUniformName:              "UnknownUniformName",
	KindUnknownAttributeName:            "UnknownAttributeName",
	KindUnlinkedProgram:                 "UnlinkedProgram",
	KindTextureAttemptedTargetChange:    "TextureAttemptedTargetChange",
	KindShaderAlreadyAttachedToProgram:  "ShaderAlreadyAttachedToProgram",
	KindShaderNotAttachedToProgram:      "ShaderNotAttachedToProgram",
	KindProgramCannotBeUsed:             "ProgramCannotBeUsed",
	KindTransformFeedbackModeActive:     "TransformFeedbackModeActive",
	KindMissingComputeShader:            "MissingComputeShader",
	KindMissingGeometryShader:           "MissingGeometryShader",
	KindNoProgramInUse:                  "NoProgramInUse",
	KindUniformMismatch:                 "UniformMismatch",
	KindImmutableBufferTarget:           "ImmutableBufferTarget",
	KindImmutableBuffer:                 "ImmutableBuffer",
	KindUnboundTarget:                   "UnboundTarget",
	KindBufferMapped:                    "BufferMapped",
	KindBufferNotMapped:                 "BufferNotMapped",
	KindNoFramebufferBound:              "NoFramebufferBound",
	KindNoRenderbufferBound:             "NoRenderbufferBound",
	KindLengthOverflow:                  "LengthOverflow",
	KindPixelDataTooShort:               "PixelDataTooShort",
	KindInvalidParameterValue:           "InvalidParameterValue",
	KindConversionFailure:               "ConversionFailure",
	KindMissingEntryPoint:               "MissingEntryPoint",
	KindUnreachable:                     "Unreachable",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is the error returned by every wrapper. Only the fields relevant to
// Kind are set.
type Error struct {
	// Op is the OpenGL entry point that failed, e.g. "glBindBuffer".
	Op   string
	Kind ErrorKind
	// Code is the error flag read after the call. Arguments rejected before
	// the call carry the code OpenGL would have raised for them; other
	// errors detected without calling into OpenGL carry NoError.
	Code ErrorCode

	Buffer       Buffer
	Framebuffer  Framebuffer
	Renderbuffer Renderbuffer
	Texture      Texture
	VertexArray  VertexArray
	Shader       Shader
	Program      Program

	BufferTarget      BufferBindingTarget
	TextureTarget     TextureBindingTarget
	FramebufferTarget FramebufferBindingTarget

	Index uint32
	Value int64
	Name  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "gl: " + e.describe()
	}
	return "gl: " + e.Op + ": " + e.describe()
}

func (e *Error) describe() string {
	switch e.Kind {
	case KindOpenGL:
		return e.Code.String()
	case KindNonOpenGLBuffer:
		return fmt.Sprintf("%v is not a buffer name generated by OpenGL", e.Buffer)
	case KindNotABuffer:
		return fmt.Sprintf("%v is not a buffer object", e.Buffer)
	case KindNonOpenGLFramebuffer:
		return fmt.Sprintf("%v is not a framebuffer name generated by OpenGL", e.Framebuffer)
	case KindNonOpenGLRenderbuffer:
		return fmt.Sprintf("%v is not a renderbuffer name generated by OpenGL", e.Renderbuffer)
	case KindNonOpenGLTexture:
		return fmt.Sprintf("%v is not a texture name generated by OpenGL", e.Texture)
	case KindNotATexture:
		return fmt.Sprintf("%v is not a texture object", e.Texture)
	case KindNonOpenGLVertexArray:
		return fmt.Sprintf("%v is not a vertex array name generated by OpenGL", e.VertexArray)
	case KindNonOpenGLShader:
		return fmt.Sprintf("%v is not a shader or program name generated by OpenGL", e.Shader)
	case KindNotAShader:
		return fmt.Sprintf("%v is not a shader object", e.Shader)
	case KindNonOpenGLProgram:
		return fmt.Sprintf("%v is not a shader or program name generated by OpenGL", e.Program)
	case KindNotAProgram:
		return fmt.Sprintf("%v is not a program object", e.Program)
	case KindNoVertexArrayBound:
		return "no vertex array object is bound"
	case KindOutOfBoundsVertexAttributeIndex:
		return fmt.Sprintf("vertex attribute index %d is not below GL_MAX_VERTEX_ATTRIBS", e.Index)
	case KindOutOfBoundsBindingIndex:
		return fmt.Sprintf("binding index %d is out of range", e.Index)
	case KindOutOfBoundsTextureUnit:
		return fmt.Sprintf("texture unit %d is not below GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS", e.Index)
	case KindOutOfBoundsDrawBuffer:
		return fmt.Sprintf("draw buffer %d is not below GL_MAX_DRAW_BUFFERS", e.Index)
	case KindUnknownUniformName:
		return fmt.Sprintf("no active uniform named %q", e.Name)
	case KindUnknownAttributeName:
		return fmt.Sprintf("no active attribute named %q", e.Name)
	case KindUnlinkedProgram:
		return fmt.Sprintf("%v has not been linked", e.Program)
	case KindTextureAttemptedTargetChange:
		return fmt.Sprintf("%v was created with a different target than %v", e.Texture, e.TextureTarget)
	case KindShaderAlreadyAttachedToProgram:
		return fmt.Sprintf("%v is already attached to %v", e.Shader, e.Program)
	case KindShaderNotAttachedToProgram:
		return fmt.Sprintf("%v is not attached to %v", e.Shader, e.Program)
	case KindProgramCannotBeUsed:
		return fmt.Sprintf("%v cannot be made part of the current state", e.Program)
	case KindTransformFeedbackModeActive:
		return "transform feedback is active"
	case KindMissingComputeShader:
		return fmt.Sprintf("%v has no compute shader", e.Program)
	case KindMissingGeometryShader:
		return fmt.Sprintf("%v has no geometry shader", e.Program)
	case KindNoProgramInUse:
		return "no program is in use"
	case KindUniformMismatch:
		return fmt.Sprintf("uniform at location %d does not accept this type or count", e.Value)
	case KindImmutableBufferTarget:
		return fmt.Sprintf("buffer bound to the %v target has immutable storage", e.BufferTarget)
	case KindImmutableBuffer:
		return fmt.Sprintf("%v has immutable storage", e.Buffer)
	case KindUnboundTarget:
		return fmt.Sprintf("no buffer is bound to the %v target", e.BufferTarget)
	case KindBufferMapped:
		return "buffer is mapped"
	case KindBufferNotMapped:
		return "buffer is not mapped"
	case KindNoFramebufferBound:
		return fmt.Sprintf("no framebuffer object is bound to %v", e.FramebufferTarget)
	case KindNoRenderbufferBound:
		return "no renderbuffer object is bound"
	case KindLengthOverflow:
		return fmt.Sprintf("%s %d does not fit in a GLsizei", e.Name, e.Value)
	case KindPixelDataTooShort:
		return fmt.Sprintf("pixel data is shorter than the %d bytes the image covers", e.Value)
	case KindInvalidParameterValue:
		return fmt.Sprintf("query returned unexpected value %d", e.Value)
	case KindConversionFailure:
		return fmt.Sprintf("%#x is not a valid %s", e.Value, e.Name)
	case KindMissingEntryPoint:
		return fmt.Sprintf("%s is not available in this context", e.Name)
	case KindUnreachable:
		return fmt.Sprintf("%v is not documented for this call", e.Code)
	}
	return e.Kind.String()
}

// Unwrap returns the error code, so errors.Is(err, gl.InvalidOperation)
// matches the underlying class of any wrapper error.
func (e *Error) Unwrap() error {
	if e.Code == NoError {
		return nil
	}
	return e.Code
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindNone.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
