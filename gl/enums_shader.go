package gl

import (
	"fmt"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// ShaderType is the pipeline stage a shader object belongs to.
type ShaderType uint32

const (
	ComputeShader        ShaderType = rawgl.ComputeShader
	VertexShader         ShaderType = rawgl.VertexShader
	TessControlShader    ShaderType = rawgl.TessControlShader
	TessEvaluationShader ShaderType = rawgl.TessEvaluationShader
	GeometryShader       ShaderType = rawgl.GeometryShader
	FragmentShader       ShaderType = rawgl.FragmentShader
)

var shaderTypes = newEnum("ShaderType",
	variant[ShaderType]{ComputeShader, "Compute"},
	variant[ShaderType]{VertexShader, "Vertex"},
	variant[ShaderType]{TessControlShader, "TessControl"},
	variant[ShaderType]{TessEvaluationShader, "TessEvaluation"},
	variant[ShaderType]{GeometryShader, "Geometry"},
	variant[ShaderType]{FragmentShader, "Fragment"},
)

func (t ShaderType) GLenum() uint32 { return uint32(t) }
func (t ShaderType) String() string { return shaderTypes.name(t) }

func ShaderTypeFromGL(v uint32) (ShaderType, error) { return shaderTypes.fromGL(v) }
func ShaderTypeValues() []ShaderType                { return shaderTypes.all() }

// TransformFeedbackBufferMode is how transform feedback varyings are
// captured.
type TransformFeedbackBufferMode uint32

const (
	InterleavedAttribs TransformFeedbackBufferMode = rawgl.InterleavedAttribs
	SeparateAttribs    TransformFeedbackBufferMode = rawgl.SeparateAttribs
)

var transformFeedbackBufferModes = newEnum("TransformFeedbackBufferMode",
	variant[TransformFeedbackBufferMode]{InterleavedAttribs, "Interleaved"},
	variant[TransformFeedbackBufferMode]{SeparateAttribs, "Separate"},
)

func (m TransformFeedbackBufferMode) GLenum() uint32 { return uint32(m) }
func (m TransformFeedbackBufferMode) String() string { return transformFeedbackBufferModes.name(m) }

func TransformFeedbackBufferModeFromGL(v uint32) (TransformFeedbackBufferMode, error) {
	return transformFeedbackBufferModes.fromGL(v)
}

func TransformFeedbackBufferModeValues() []TransformFeedbackBufferMode {
	return transformFeedbackBufferModes.all()
}

// MatrixOrderMajor is the memory layout of matrices passed to the
// UniformMatrix calls.
type MatrixOrderMajor uint8

const (
	ColumnMajor MatrixOrderMajor = iota
	RowMajor
)

// Transpose is the GLboolean transpose argument for m.
func (m MatrixOrderMajor) Transpose() bool { return m == RowMajor }

func (m MatrixOrderMajor) String() string {
	switch m {
	case ColumnMajor:
		return "ColumnMajor"
	case RowMajor:
		return "RowMajor"
	}
	return fmt.Sprintf("MatrixOrderMajor(%d)", uint8(m))
}

// MatrixOrderMajorFromTranspose is the inverse of Transpose.
func MatrixOrderMajorFromTranspose(transpose bool) MatrixOrderMajor {
	if transpose {
		return RowMajor
	}
	return ColumnMajor
}
