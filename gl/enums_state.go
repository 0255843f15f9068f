package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// Capability is a server-side switch toggled by Enable and Disable.
type Capability uint32

const (
	Blend                      Capability = rawgl.Blend
	ColourLogicOp              Capability = rawgl.ColorLogicOp
	CullFace                   Capability = rawgl.CullFace
	DebugOutput                Capability = rawgl.DebugOutput
	DebugOutputSynchronous     Capability = rawgl.DebugOutputSynchronous
	DepthClamp                 Capability = rawgl.DepthClamp
	DepthTest                  Capability = rawgl.DepthTest
	Dither                     Capability = rawgl.Dither
	FramebufferSRGB            Capability = rawgl.FramebufferSRGB
	LineSmooth                 Capability = rawgl.LineSmooth
	Multisample                Capability = rawgl.Multisample
	PolygonOffsetFill          Capability = rawgl.PolygonOffsetFill
	PolygonOffsetLine          Capability = rawgl.PolygonOffsetLine
	PolygonOffsetPoint         Capability = rawgl.PolygonOffsetPoint
	PolygonSmooth              Capability = rawgl.PolygonSmooth
	PrimitiveRestart           Capability = rawgl.PrimitiveRestart
	PrimitiveRestartFixedIndex Capability = rawgl.PrimitiveRestartFixedIndex
	ProgramPointSize           Capability = rawgl.ProgramPointSize
	RasterizerDiscard          Capability = rawgl.RasterizerDiscard
	SampleAlphaToCoverage      Capability = rawgl.SampleAlphaToCoverage
	SampleAlphaToOne           Capability = rawgl.SampleAlphaToOne
	SampleCoverage             Capability = rawgl.SampleCoverage
	SampleShading              Capability = rawgl.SampleShading
	SampleMask                 Capability = rawgl.SampleMask
	ScissorTest                Capability = rawgl.ScissorTest
	StencilTest                Capability = rawgl.StencilTest
	TextureCubeMapSeamless     Capability = rawgl.TextureCubeMapSeamless
)

var capabilities = newEnum("Capability",
	variant[Capability]{Blend, "Blend"},
	variant[Capability]{ColourLogicOp, "ColourLogicOp"},
	variant[Capability]{CullFace, "CullFace"},
	variant[Capability]{DebugOutput, "DebugOutput"},
	variant[Capability]{DebugOutputSynchronous, "DebugOutputSynchronous"},
	variant[Capability]{DepthClamp, "DepthClamp"},
	variant[Capability]{DepthTest, "DepthTest"},
	variant[Capability]{Dither, "Dither"},
	variant[Capability]{FramebufferSRGB, "FramebufferSRGB"},
	variant[Capability]{LineSmooth, "LineSmooth"},
	variant[Capability]{Multisample, "Multisample"},
	variant[Capability]{PolygonOffsetFill, "PolygonOffsetFill"},
	variant[Capability]{PolygonOffsetLine, "PolygonOffsetLine"},
	variant[Capability]{PolygonOffsetPoint, "PolygonOffsetPoint"},
	variant[Capability]{PolygonSmooth, "PolygonSmooth"},
	variant[Capability]{PrimitiveRestart, "PrimitiveRestart"},
	variant[Capability]{PrimitiveRestartFixedIndex, "PrimitiveRestartFixedIndex"},
	variant[Capability]{ProgramPointSize, "ProgramPointSize"},
	variant[Capability]{RasterizerDiscard, "RasterizerDiscard"},
	variant[Capability]{SampleAlphaToCoverage, "SampleAlphaToCoverage"},
	variant[Capability]{SampleAlphaToOne, "SampleAlphaToOne"},
	variant[Capability]{SampleCoverage, "SampleCoverage"},
	variant[Capability]{SampleShading, "SampleShading"},
	variant[Capability]{SampleMask, "SampleMask"},
	variant[Capability]{ScissorTest, "ScissorTest"},
	variant[Capability]{StencilTest, "StencilTest"},
	variant[Capability]{TextureCubeMapSeamless, "TextureCubeMapSeamless"},
)

func (c Capability) GLenum() uint32 { return uint32(c) }
func (c Capability) String() string { return capabilities.name(c) }

func CapabilityFromGL(v uint32) (Capability, error) { return capabilities.fromGL(v) }
func CapabilityValues() []Capability                { return capabilities.all() }

// CompareFunc is a depth or stencil comparison.
type CompareFunc uint32

const (
	Never          CompareFunc = rawgl.Never
	Less           CompareFunc = rawgl.Less
	Equal          CompareFunc = rawgl.Equal
	LessOrEqual    CompareFunc = rawgl.Lequal
	Greater        CompareFunc = rawgl.Greater
	NotEqual       CompareFunc = rawgl.Notequal
	GreaterOrEqual CompareFunc = rawgl.Gequal
	Always         CompareFunc = rawgl.Always
)

var compareFuncs = newEnum("CompareFunc",
	variant[CompareFunc]{Never, "Never"},
	variant[CompareFunc]{Less, "Less"},
	variant[CompareFunc]{Equal, "Equal"},
	variant[CompareFunc]{LessOrEqual, "LessOrEqual"},
	variant[CompareFunc]{Greater, "Greater"},
	variant[CompareFunc]{NotEqual, "NotEqual"},
	variant[CompareFunc]{GreaterOrEqual, "GreaterOrEqual"},
	variant[CompareFunc]{Always, "Always"},
)

func (f CompareFunc) GLenum() uint32 { return uint32(f) }
func (f CompareFunc) String() string { return compareFuncs.name(f) }

func CompareFuncFromGL(v uint32) (CompareFunc, error) { return compareFuncs.fromGL(v) }
func CompareFuncValues() []CompareFunc                { return compareFuncs.all() }

// StencilOp is the action taken on a stencil value.
type StencilOp uint32

const (
	StencilKeep           StencilOp = rawgl.Keep
	StencilZero           StencilOp = rawgl.Zero
	StencilReplace        StencilOp = rawgl.Replace
	StencilIncrementClamp StencilOp = rawgl.Incr
	StencilIncrementWrap  StencilOp = rawgl.IncrWrap
	StencilDecrementClamp StencilOp = rawgl.Decr
	StencilDecrementWrap  StencilOp = rawgl.DecrWrap
	StencilInvert         StencilOp = rawgl.Invert
)

var stencilOps = newEnum("StencilOp",
	variant[StencilOp]{StencilKeep, "Keep"},
	variant[StencilOp]{StencilZero, "Zero"},
	variant[StencilOp]{StencilReplace, "Replace"},
	variant[StencilOp]{StencilIncrementClamp, "IncrementClamp"},
	variant[StencilOp]{StencilIncrementWrap, "IncrementWrap"},
	variant[StencilOp]{StencilDecrementClamp, "DecrementClamp"},
	variant[StencilOp]{StencilDecrementWrap, "DecrementWrap"},
	variant[StencilOp]{StencilInvert, "Invert"},
)

func (o StencilOp) GLenum() uint32 { return uint32(o) }
func (o StencilOp) String() string { return stencilOps.name(o) }

func StencilOpFromGL(v uint32) (StencilOp, error) { return stencilOps.fromGL(v) }
func StencilOpValues() []StencilOp                { return stencilOps.all() }

// StencilFace selects which polygon faces a stencil setting applies to.
type StencilFace uint32

const (
	FaceFront        StencilFace = rawgl.Front
	FaceBack         StencilFace = rawgl.Back
	FaceFrontAndBack StencilFace = rawgl.FrontAndBack
)

var stencilFaces = newEnum("StencilFace",
	variant[StencilFace]{FaceFront, "Front"},
	variant[StencilFace]{FaceBack, "Back"},
	variant[StencilFace]{FaceFrontAndBack, "FrontAndBack"},
)

func (f StencilFace) GLenum() uint32 { return uint32(f) }
func (f StencilFace) String() string { return stencilFaces.name(f) }

func StencilFaceFromGL(v uint32) (StencilFace, error) { return stencilFaces.fromGL(v) }
func StencilFaceValues() []StencilFace                { return stencilFaces.all() }

// BlendFactor is a source or destination blending factor.
type BlendFactor uint32

const (
	BlendZero                   BlendFactor = rawgl.Zero
	BlendOne                    BlendFactor = rawgl.One
	BlendSrcColour              BlendFactor = rawgl.SrcColor
	BlendOneMinusSrcColour      BlendFactor = rawgl.OneMinusSrcColor
	BlendDstColour              BlendFactor = rawgl.DstColor
	BlendOneMinusDstColour      BlendFactor = rawgl.OneMinusDstColor
	BlendSrcAlpha               BlendFactor = rawgl.SrcAlpha
	BlendOneMinusSrcAlpha       BlendFactor = rawgl.OneMinusSrcAlpha
	BlendDstAlpha               BlendFactor = rawgl.DstAlpha
	BlendOneMinusDstAlpha       BlendFactor = rawgl.OneMinusDstAlpha
	BlendConstantColour         BlendFactor = rawgl.ConstantColor
	BlendOneMinusConstantColour BlendFactor = rawgl.OneMinusConstantColor
	BlendConstantAlpha          BlendFactor = rawgl.ConstantAlpha
	BlendOneMinusConstantAlpha  BlendFactor = rawgl.OneMinusConstantAlpha
	BlendSrcAlphaSaturate       BlendFactor = rawgl.SrcAlphaSaturate
	BlendSrc1Colour             BlendFactor = rawgl.Src1Color
	BlendOneMinusSrc1Colour     BlendFactor = rawgl.OneMinusSrc1Color
	BlendSrc1Alpha              BlendFactor = rawgl.Src1Alpha
	BlendOneMinusSrc1Alpha      BlendFactor = rawgl.OneMinusSrc1Alpha
)

var blendFactors = newEnum("BlendFactor",
	variant[BlendFactor]{BlendZero, "Zero"},
	variant[BlendFactor]{BlendOne, "One"},
	variant[BlendFactor]{BlendSrcColour, "SrcColour"},
	variant[BlendFactor]{BlendOneMinusSrcColour, "OneMinusSrcColour"},
	variant[BlendFactor]{BlendDstColour, "DstColour"},
	variant[BlendFactor]{BlendOneMinusDstColour, "OneMinusDstColour"},
	variant[BlendFactor]{BlendSrcAlpha, "SrcAlpha"},
	variant[BlendFactor]{BlendOneMinusSrcAlpha, "OneMinusSrcAlpha"},
	variant[BlendFactor]{BlendDstAlpha, "DstAlpha"},
	variant[BlendFactor]{BlendOneMinusDstAlpha, "OneMinusDstAlpha"},
	variant[BlendFactor]{BlendConstantColour, "ConstantColour"},
	variant[BlendFactor]{BlendOneMinusConstantColour, "OneMinusConstantColour"},
	variant[BlendFactor]{BlendConstantAlpha, "ConstantAlpha"},
	variant[BlendFactor]{BlendOneMinusConstantAlpha, "OneMinusConstantAlpha"},
	variant[BlendFactor]{BlendSrcAlphaSaturate, "SrcAlphaSaturate"},
	variant[BlendFactor]{BlendSrc1Colour, "Src1Colour"},
	variant[BlendFactor]{BlendOneMinusSrc1Colour, "OneMinusSrc1Colour"},
	variant[BlendFactor]{BlendSrc1Alpha, "Src1Alpha"},
	variant[BlendFactor]{BlendOneMinusSrc1Alpha, "OneMinusSrc1Alpha"},
)

func (f BlendFactor) GLenum() uint32 { return uint32(f) }
func (f BlendFactor) String() string { return blendFactors.name(f) }

func BlendFactorFromGL(v uint32) (BlendFactor, error) { return blendFactors.fromGL(v) }
func BlendFactorValues() []BlendFactor                { return blendFactors.all() }
