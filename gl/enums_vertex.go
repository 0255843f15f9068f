package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// VertexAttributeSize is the number of components of a vertex attribute.
type VertexAttributeSize uint32

const (
	SizeSingle VertexAttributeSize = 1
	SizeDuple  VertexAttributeSize = 2
	SizeTriple VertexAttributeSize = 3
	SizeQuad   VertexAttributeSize = 4
)

var vertexAttributeSizes = newEnum("VertexAttributeSize",
	variant[VertexAttributeSize]{SizeSingle, "Single"},
	variant[VertexAttributeSize]{SizeDuple, "Duple"},
	variant[VertexAttributeSize]{SizeTriple, "Triple"},
	variant[VertexAttributeSize]{SizeQuad, "Quad"},
)

// GLint is the size argument of the glVertexAttrib*Pointer calls.
func (s VertexAttributeSize) GLint() int32   { return int32(s) }
func (s VertexAttributeSize) String() string { return vertexAttributeSizes.name(s) }

func VertexAttributeSizeFromGL(v uint32) (VertexAttributeSize, error) {
	return vertexAttributeSizes.fromGL(v)
}

func VertexAttributeSizeValues() []VertexAttributeSize { return vertexAttributeSizes.all() }

// VertexAttributeIntegerType is the component type of an integer vertex
// attribute.
type VertexAttributeIntegerType uint32

const (
	IntegerI8  VertexAttributeIntegerType = rawgl.Byte
	IntegerU8  VertexAttributeIntegerType = rawgl.UnsignedByte
	IntegerI16 VertexAttributeIntegerType = rawgl.Short
	IntegerU16 VertexAttributeIntegerType = rawgl.UnsignedShort
	IntegerI32 VertexAttributeIntegerType = rawgl.Int
	IntegerU32 VertexAttributeIntegerType = rawgl.UnsignedInt
)

var vertexAttributeIntegerTypes = newEnum("VertexAttributeIntegerType",
	variant[VertexAttributeIntegerType]{IntegerI8, "I8"},
	variant[VertexAttributeIntegerType]{IntegerU8, "U8"},
	variant[VertexAttributeIntegerType]{IntegerI16, "I16"},
	variant[VertexAttributeIntegerType]{IntegerU16, "U16"},
	variant[VertexAttributeIntegerType]{IntegerI32, "I32"},
	variant[VertexAttributeIntegerType]{IntegerU32, "U32"},
)

func (t VertexAttributeIntegerType) GLenum() uint32 { return uint32(t) }
func (t VertexAttributeIntegerType) String() string { return vertexAttributeIntegerTypes.name(t) }

// AsFloat is t as a component type converted to floating point.
func (t VertexAttributeIntegerType) AsFloat() VertexAttributeFloatType {
	return VertexAttributeFloatType(t)
}

func VertexAttributeIntegerTypeFromGL(v uint32) (VertexAttributeIntegerType, error) {
	return vertexAttributeIntegerTypes.fromGL(v)
}

func VertexAttributeIntegerTypeValues() []VertexAttributeIntegerType {
	return vertexAttributeIntegerTypes.all()
}

// VertexAttributeFloatType is the component type of a vertex attribute
// read as floating point: any integer type plus the float formats.
type VertexAttributeFloatType uint32

const (
	FloatI8    VertexAttributeFloatType = rawgl.Byte
	FloatU8    VertexAttributeFloatType = rawgl.UnsignedByte
	FloatI16   VertexAttributeFloatType = rawgl.Short
	FloatU16   VertexAttributeFloatType = rawgl.UnsignedShort
	FloatI32   VertexAttributeFloatType = rawgl.Int
	FloatU32   VertexAttributeFloatType = rawgl.UnsignedInt
	FloatF16   VertexAttributeFloatType = rawgl.HalfFloat
	FloatF32   VertexAttributeFloatType = rawgl.Float
	FloatFixed VertexAttributeFloatType = rawgl.Fixed
)

var vertexAttributeFloatTypes = newEnum("VertexAttributeFloatType",
	variant[VertexAttributeFloatType]{FloatI8, "I8"},
	variant[VertexAttributeFloatType]{FloatU8, "U8"},
	variant[VertexAttributeFloatType]{FloatI16, "I16"},
	variant[VertexAttributeFloatType]{FloatU16, "U16"},
	variant[VertexAttributeFloatType]{FloatI32, "I32"},
	variant[VertexAttributeFloatType]{FloatU32, "U32"},
	variant[VertexAttributeFloatType]{FloatF16, "F16"},
	variant[VertexAttributeFloatType]{FloatF32, "F32"},
	variant[VertexAttributeFloatType]{FloatFixed, "Fixed"},
)

func (t VertexAttributeFloatType) GLenum() uint32 { return uint32(t) }
func (t VertexAttributeFloatType) String() string { return vertexAttributeFloatTypes.name(t) }

// Integer projects t back onto the integer types.
func (t VertexAttributeFloatType) Integer() (VertexAttributeIntegerType, bool) {
	i := VertexAttributeIntegerType(t)
	_, ok := vertexAttributeIntegerTypes.names[i]
	return i, ok
}

func VertexAttributeFloatTypeFromGL(v uint32) (VertexAttributeFloatType, error) {
	return vertexAttributeFloatTypes.fromGL(v)
}

func VertexAttributeFloatTypeValues() []VertexAttributeFloatType {
	return vertexAttributeFloatTypes.all()
}
