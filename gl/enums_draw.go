package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// DrawMode is the primitive topology of a draw call, also reported as the
// geometry shader input and output type.
type DrawMode uint32

// RenderPrimitive is DrawMode under the name used by program queries.
type RenderPrimitive = DrawMode

const (
	Points                 DrawMode = rawgl.Points
	Lines                  DrawMode = rawgl.Lines
	LineLoop               DrawMode = rawgl.LineLoop
	LineStrip              DrawMode = rawgl.LineStrip
	Triangles              DrawMode = rawgl.Triangles
	TriangleStrip          DrawMode = rawgl.TriangleStrip
	TriangleFan            DrawMode = rawgl.TriangleFan
	LinesAdjacency         DrawMode = rawgl.LinesAdjacency
	LineStripAdjacency     DrawMode = rawgl.LineStripAdjacency
	TrianglesAdjacency     DrawMode = rawgl.TrianglesAdjacency
	TriangleStripAdjacency DrawMode = rawgl.TriangleStripAdjacency
	Patches                DrawMode = rawgl.Patches
)

var drawModes = newEnum("DrawMode",
	variant[DrawMode]{Points, "Points"},
	variant[DrawMode]{Lines, "Lines"},
	variant[DrawMode]{LineLoop, "LineLoop"},
	variant[DrawMode]{LineStrip, "LineStrip"},
	variant[DrawMode]{Triangles, "Triangles"},
	variant[DrawMode]{TriangleStrip, "TriangleStrip"},
	variant[DrawMode]{TriangleFan, "TriangleFan"},
	variant[DrawMode]{LinesAdjacency, "LinesAdjacency"},
	variant[DrawMode]{LineStripAdjacency, "LineStripAdjacency"},
	variant[DrawMode]{TrianglesAdjacency, "TrianglesAdjacency"},
	variant[DrawMode]{TriangleStripAdjacency, "TriangleStripAdjacency"},
	variant[DrawMode]{Patches, "Patches"},
)

func (m DrawMode) GLenum() uint32 { return uint32(m) }
func (m DrawMode) String() string { return drawModes.name(m) }

func DrawModeFromGL(v uint32) (DrawMode, error) { return drawModes.fromGL(v) }
func DrawModeValues() []DrawMode                { return drawModes.all() }

// IndicesType is the element type of an index buffer.
type IndicesType uint32

const (
	IndicesU8  IndicesType = rawgl.UnsignedByte
	IndicesU16 IndicesType = rawgl.UnsignedShort
	IndicesU32 IndicesType = rawgl.UnsignedInt
)

var indicesTypes = newEnum("IndicesType",
	variant[IndicesType]{IndicesU8, "U8"},
	variant[IndicesType]{IndicesU16, "U16"},
	variant[IndicesType]{IndicesU32, "U32"},
)

func (t IndicesType) GLenum() uint32 { return uint32(t) }
func (t IndicesType) String() string { return indicesTypes.name(t) }

// Size is the byte size of one index.
func (t IndicesType) Size() int {
	switch t {
	case IndicesU8:
		return 1
	case IndicesU16:
		return 2
	}
	return 4
}

func IndicesTypeFromGL(v uint32) (IndicesType, error) { return indicesTypes.fromGL(v) }
func IndicesTypeValues() []IndicesType                { return indicesTypes.all() }
