// Package gl is the raw OpenGL 3.3–4.5 Core dispatch table.
//
// Nothing here validates anything: every field of Functions is a direct call
// into the driver. The typed surface lives in the public gl package.
package gl

import "unsafe"

// Error codes returned by GetError.
const (
	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	StackOverflow               = 0x0503
	StackUnderflow              = 0x0504
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506
)

const (
	False = 0
	True  = 1
)

// Buffer binding targets and the GetIntegerv names that report their bindings.
const (
	ArrayBuffer             = 0x8892
	AtomicCounterBuffer     = 0x92C0
	CopyReadBuffer          = 0x8F36
	CopyWriteBuffer         = 0x8F37
	DispatchIndirectBuffer  = 0x90EE
	DrawIndirectBuffer      = 0x8F3F
	ElementArrayBuffer      = 0x8893
	PixelPackBuffer         = 0x88EB
	PixelUnpackBuffer       = 0x88EC
	QueryBuffer             = 0x9192
	ShaderStorageBuffer     = 0x90D2
	TextureBuffer           = 0x8C2A
	TransformFeedbackBuffer = 0x8C8E
	UniformBuffer           = 0x8A11

	ArrayBufferBinding             = 0x8894
	AtomicCounterBufferBinding     = 0x92C1
	CopyReadBufferBinding          = 0x8F36
	CopyWriteBufferBinding         = 0x8F37
	DispatchIndirectBufferBinding  = 0x90EF
	DrawIndirectBufferBinding      = 0x8F43
	ElementArrayBufferBinding      = 0x8895
	PixelPackBufferBinding         = 0x88ED
	PixelUnpackBufferBinding       = 0x88EF
	QueryBufferBinding             = 0x9193
	ShaderStorageBufferBinding     = 0x90D3
	TextureBufferBinding           = 0x8C2A
	TransformFeedbackBufferBinding = 0x8C8F
	UniformBufferBinding           = 0x8A28
)

// Buffer access, usage, and map/storage bits.
const (
	ReadOnly  = 0x88B8
	WriteOnly = 0x88B9
	ReadWrite = 0x88BA

	StreamDraw  = 0x88E0
	StreamRead  = 0x88E1
	StreamCopy  = 0x88E2
	StaticDraw  = 0x88E4
	StaticRead  = 0x88E5
	StaticCopy  = 0x88E6
	DynamicDraw = 0x88E8
	DynamicRead = 0x88E9
	DynamicCopy = 0x88EA

	MapReadBit             = 0x0001
	MapWriteBit            = 0x0002
	MapInvalidateRangeBit  = 0x0004
	MapInvalidateBufferBit = 0x0008
	MapFlushExplicitBit    = 0x0010
	MapUnsynchronizedBit   = 0x0020
	MapPersistentBit       = 0x0040
	MapCoherentBit         = 0x0080
	DynamicStorageBit      = 0x0100
	ClientStorageBit       = 0x0200
)

// Buffer parameter names.
const (
	BufferSize             = 0x8764
	BufferUsage            = 0x8765
	BufferAccess           = 0x88BB
	BufferMapped           = 0x88BC
	BufferMapPointer       = 0x88BD
	BufferAccessFlags      = 0x911F
	BufferMapLength        = 0x9120
	BufferMapOffset        = 0x9121
	BufferImmutableStorage = 0x821F
	BufferStorageFlags     = 0x8220
)

// Framebuffers and renderbuffers.
const (
	Framebuffer                 = 0x8D40
	ReadFramebuffer             = 0x8CA8
	DrawFramebuffer             = 0x8CA9
	ReadFramebufferBinding      = 0x8CAA
	DrawFramebufferBinding      = 0x8CA6
	Renderbuffer                = 0x8D41
	RenderbufferBinding         = 0x8CA7
	ColorAttachment0            = 0x8CE0
	MaxColorAttachments         = 0x8CDF
	DepthAttachment             = 0x8D00
	StencilAttachment           = 0x8D20
	DepthStencilAttachment      = 0x821A
	FramebufferComplete         = 0x8CD5
	FramebufferUndefined        = 0x8219
	IncompleteAttachment        = 0x8CD6
	IncompleteMissingAttachment = 0x8CD7
	IncompleteDrawBuffer        = 0x8CDB
	IncompleteReadBuffer        = 0x8CDC
	FramebufferUnsupported      = 0x8CDD
	IncompleteMultisample       = 0x8D56
	IncompleteLayerTargets      = 0x8DA8
)

// Shader stages, shader/program parameters and transform feedback.
const (
	ComputeShader        = 0x91B9
	VertexShader         = 0x8B31
	TessControlShader    = 0x8E88
	TessEvaluationShader = 0x8E87
	GeometryShader       = 0x8DD9
	FragmentShader       = 0x8B30

	ShaderType                        = 0x8B4F
	DeleteStatus                      = 0x8B80
	CompileStatus                     = 0x8B81
	LinkStatus                        = 0x8B82
	ValidateStatus                    = 0x8B83
	InfoLogLength                     = 0x8B84
	AttachedShaders                   = 0x8B85
	ActiveUniforms                    = 0x8B86
	ActiveUniformMaxLength            = 0x8B87
	ShaderSourceLength                = 0x8B88
	ActiveAttributes                  = 0x8B89
	ActiveAttributeMaxLength          = 0x8B8A
	ActiveAtomicCounterBuffers        = 0x92D9
	ProgramBinaryLength               = 0x8741
	ComputeWorkGroupSize              = 0x8267
	TransformFeedbackBufferMode       = 0x8C7F
	TransformFeedbackVaryings         = 0x8C83
	TransformFeedbackVaryingMaxLength = 0x8C76
	GeometryVerticesOut               = 0x8916
	GeometryInputType                 = 0x8917
	GeometryOutputType                = 0x8918
	ActiveUniformBlocks               = 0x8A36
	ActiveUniformBlockMaxNameLength   = 0x8A35
	CurrentProgram                    = 0x8B8D

	InterleavedAttribs      = 0x8C8C
	SeparateAttribs         = 0x8C8D
	TransformFeedbackActive = 0x8E24
	TransformFeedbackPaused = 0x8E23
)

// Primitive modes.
const (
	Points                 = 0x0000
	Lines                  = 0x0001
	LineLoop               = 0x0002
	LineStrip              = 0x0003
	Triangles              = 0x0004
	TriangleStrip          = 0x0005
	TriangleFan            = 0x0006
	LinesAdjacency         = 0x000A
	LineStripAdjacency     = 0x000B
	TrianglesAdjacency     = 0x000C
	TriangleStripAdjacency = 0x000D
	Patches                = 0x000E
)

// Data types.
const (
	Byte                     = 0x1400
	UnsignedByte             = 0x1401
	Short                    = 0x1402
	UnsignedShort            = 0x1403
	Int                      = 0x1404
	UnsignedInt              = 0x1405
	Float                    = 0x1406
	Double                   = 0x140A
	HalfFloat                = 0x140B
	Fixed                    = 0x140C
	Int2101010Rev            = 0x8D9F
	UnsignedInt2101010Rev    = 0x8368
	UnsignedInt10f11f11fRev  = 0x8C3B
	UnsignedByte332          = 0x8032
	UnsignedByte233Rev       = 0x8362
	UnsignedShort565         = 0x8363
	UnsignedShort565Rev      = 0x8364
	UnsignedShort4444        = 0x8033
	UnsignedShort4444Rev     = 0x8365
	UnsignedShort5551        = 0x8034
	UnsignedShort1555Rev     = 0x8366
	UnsignedInt8888          = 0x8035
	UnsignedInt8888Rev       = 0x8367
	UnsignedInt1010102       = 0x8036
	UnsignedInt248           = 0x84FA
	UnsignedInt5999Rev       = 0x8C3E
	Float32UnsignedInt248Rev = 0x8DAD
)

// Capabilities for Enable/Disable.
const (
	Blend                      = 0x0BE2
	ColorLogicOp               = 0x0BF2
	CullFace                   = 0x0B44
	DebugOutput                = 0x92E0
	DebugOutputSynchronous     = 0x8242
	DepthClamp                 = 0x864F
	DepthTest                  = 0x0B71
	Dither                     = 0x0BD0
	FramebufferSRGB            = 0x8DB9
	LineSmooth                 = 0x0B20
	Multisample                = 0x809D
	PolygonOffsetFill          = 0x8037
	PolygonOffsetLine          = 0x2A02
	PolygonOffsetPoint         = 0x2A01
	PolygonSmooth              = 0x0B41
	PrimitiveRestart           = 0x8F9D
	PrimitiveRestartFixedIndex = 0x8D69
	ProgramPointSize           = 0x8642
	RasterizerDiscard          = 0x8C89
	SampleAlphaToCoverage      = 0x809E
	SampleAlphaToOne           = 0x809F
	SampleCoverage             = 0x80A0
	SampleShading              = 0x8C36
	SampleMask                 = 0x8E51
	ScissorTest                = 0x0C11
	StencilTest                = 0x0B90
	TextureCubeMapSeamless     = 0x884F
)

// Buffer bits for Clear.
const (
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400
	ColorBufferBit   = 0x00004000
)

// Depth/stencil comparison, stencil operations and faces.
const (
	Never    = 0x0200
	Less     = 0x0201
	Equal    = 0x0202
	Lequal   = 0x0203
	Greater  = 0x0204
	Notequal = 0x0205
	Gequal   = 0x0206
	Always   = 0x0207

	Keep     = 0x1E00
	Zero     = 0x0000
	Replace  = 0x1E01
	Incr     = 0x1E02
	IncrWrap = 0x8507
	Decr     = 0x1E03
	DecrWrap = 0x8508
	Invert   = 0x150A

	Front        = 0x0404
	Back         = 0x0405
	FrontAndBack = 0x0408
)

// Blending factors.
const (
	One                   = 0x0001
	SrcColor              = 0x0300
	OneMinusSrcColor      = 0x0301
	SrcAlpha              = 0x0302
	OneMinusSrcAlpha      = 0x0303
	DstAlpha              = 0x0304
	OneMinusDstAlpha      = 0x0305
	DstColor              = 0x0306
	OneMinusDstColor      = 0x0307
	SrcAlphaSaturate      = 0x0308
	ConstantColor         = 0x8001
	OneMinusConstantColor = 0x8002
	ConstantAlpha         = 0x8003
	OneMinusConstantAlpha = 0x8004
	Src1Alpha             = 0x8589
	Src1Color             = 0x88F9
	OneMinusSrc1Color     = 0x88FA
	OneMinusSrc1Alpha     = 0x88FB
)

// Texture targets.
const (
	Texture1D                 = 0x0DE0
	Texture2D                 = 0x0DE1
	Texture3D                 = 0x806F
	Texture1DArray            = 0x8C18
	Texture2DArray            = 0x8C1A
	TextureRectangle          = 0x84F5
	TextureCubeMap            = 0x8513
	TextureCubeMapArray       = 0x9009
	Texture2DMultisample      = 0x9100
	Texture2DMultisampleArray = 0x9102

	ProxyTexture1D           = 0x8063
	ProxyTexture2D           = 0x8064
	ProxyTexture3D           = 0x8070
	ProxyTexture1DArray      = 0x8C19
	ProxyTexture2DArray      = 0x8C1B
	ProxyTextureRectangle    = 0x84F7
	ProxyTextureCubeMap      = 0x851B
	ProxyTextureCubeMapArray = 0x900B

	TextureCubeMapPositiveX = 0x8515
	TextureCubeMapNegativeX = 0x8516
	TextureCubeMapPositiveY = 0x8517
	TextureCubeMapNegativeY = 0x8518
	TextureCubeMapPositiveZ = 0x8519
	TextureCubeMapNegativeZ = 0x851A

	Texture0      = 0x84C0
	ActiveTexture = 0x84E0
)

// Texture parameters and their values.
const (
	// TextureMagFilter selects the texture magnification filter.
	TextureMagFilter = 0x2800
	// TextureMinFilter selects the texture minification filter.
	TextureMinFilter = 0x2801
	// TextureWrapS selects the wrapping function for texture coordinate S.
	TextureWrapS = 0x2802
	// TextureWrapT selects the wrapping function for texture coordinate T.
	TextureWrapT = 0x2803
	// TextureWrapR selects the wrapping function for texture coordinate R.
	TextureWrapR = 0x8072

	TextureBorderColor      = 0x1004
	DepthStencilTextureMode = 0x90EA

	// Nearest selects nearest-neighbor filtering.
	Nearest = 0x2600
	// Linear selects linear filtering.
	Linear               = 0x2601
	NearestMipmapNearest = 0x2700
	LinearMipmapNearest  = 0x2701
	NearestMipmapLinear  = 0x2702
	LinearMipmapLinear   = 0x2703

	// ClampToEdge clamps texture coordinates to the edge of the texture.
	ClampToEdge       = 0x812F
	ClampToBorder     = 0x812D
	Repeat            = 0x2901
	MirroredRepeat    = 0x8370
	MirrorClampToEdge = 0x8743
)

// Pixel formats.
const (
	StencilIndex   = 0x1901
	DepthComponent = 0x1902
	Red            = 0x1903
	RGB            = 0x1907
	// RGBA is a pixel format representing red/green/blue/alpha.
	RGBA         = 0x1908
	RG           = 0x8227
	BGR          = 0x80E0
	BGRA         = 0x80E1
	RedInteger   = 0x8D94
	RGInteger    = 0x8228
	RGBInteger   = 0x8D98
	BGRInteger   = 0x8D9A
	RGBAInteger  = 0x8D99
	BGRAInteger  = 0x8D9B
	DepthStencil = 0x84F9
)

// Sized and compressed internal formats.
const (
	R8                             = 0x8229
	R8SNorm                        = 0x8F94
	R16                            = 0x822A
	R16SNorm                       = 0x8F98
	RG8                            = 0x822B
	RG8SNorm                       = 0x8F95
	RG16                           = 0x822C
	RG16SNorm                      = 0x8F99
	R3G3B2                         = 0x2A10
	RGB4                           = 0x804F
	RGB5                           = 0x8050
	RGB8                           = 0x8051
	RGB8SNorm                      = 0x8F96
	RGB10                          = 0x8052
	RGB12                          = 0x8053
	RGB16                          = 0x8054
	RGB16SNorm                     = 0x8F9A
	RGBA2                          = 0x8055
	RGBA4                          = 0x8056
	RGB5A1                         = 0x8057
	RGBA8                          = 0x8058
	RGBA8SNorm                     = 0x8F97
	RGB10A2                        = 0x8059
	RGB10A2UI                      = 0x906F
	RGBA12                         = 0x805A
	RGBA16                         = 0x805B
	SRGB8                          = 0x8C41
	SRGB8Alpha8                    = 0x8C43
	R16F                           = 0x822D
	RG16F                          = 0x822F
	RGB16F                         = 0x881B
	RGBA16F                        = 0x881A
	R32F                           = 0x822E
	RG32F                          = 0x8230
	RGB32F                         = 0x8815
	RGBA32F                        = 0x8814
	R11FG11FB10F                   = 0x8C3A
	RGB9E5                         = 0x8C3D
	R8I                            = 0x8231
	R8UI                           = 0x8232
	R16I                           = 0x8233
	R16UI                          = 0x8234
	R32I                           = 0x8235
	R32UI                          = 0x8236
	RG8I                           = 0x8237
	RG8UI                          = 0x8238
	RG16I                          = 0x8239
	RG16UI                         = 0x823A
	RG32I                          = 0x823B
	RG32UI                         = 0x823C
	RGB8I                          = 0x8D8F
	RGB8UI                         = 0x8D7D
	RGB16I                         = 0x8D89
	RGB16UI                        = 0x8D77
	RGB32I                         = 0x8D83
	RGB32UI                        = 0x8D71
	RGBA8I                         = 0x8D8E
	RGBA8UI                        = 0x8D7C
	RGBA16I                        = 0x8D88
	RGBA16UI                       = 0x8D76
	RGBA32I                        = 0x8D82
	RGBA32UI                       = 0x8D70
	DepthComponent16               = 0x81A5
	DepthComponent24               = 0x81A6
	DepthComponent32               = 0x81A7
	DepthComponent32F              = 0x8CAC
	Depth24Stencil8                = 0x88F0
	Depth32FStencil8               = 0x8CAD
	StencilIndex8                  = 0x8D48
	CompressedRed                  = 0x8225
	CompressedRG                   = 0x8226
	CompressedRGB                  = 0x84ED
	CompressedRGBA                 = 0x84EE
	CompressedSRGB                 = 0x8C48
	CompressedSRGBAlpha            = 0x8C49
	CompressedRedRGTC1             = 0x8DBB
	CompressedSignedRedRGTC1       = 0x8DBC
	CompressedRGRGTC2              = 0x8DBD
	CompressedSignedRGRGTC2        = 0x8DBE
	CompressedRGBABPTCUnorm        = 0x8E8C
	CompressedSRGBAlphaBPTCUnorm   = 0x8E8D
	CompressedRGBBPTCSignedFloat   = 0x8E8E
	CompressedRGBBPTCUnsignedFloat = 0x8E8F
)

// Implementation limits and bindings read back through GetIntegerv.
const (
	MaxVertexAttribs                    = 0x8869
	MaxVertexAttribBindings             = 0x82DA
	MaxCombinedTextureImageUnits        = 0x8B4D
	MaxDrawBuffers                      = 0x8824
	MaxUniformBufferBindings            = 0x8A2F
	MaxShaderStorageBufferBindings      = 0x90DD
	MaxAtomicCounterBufferBindings      = 0x92DC
	MaxTransformFeedbackSeparateAttribs = 0x8C8B
	VertexArrayBinding                  = 0x85B5

	// UnpackAlignment specifies the alignment requirements for pixel data
	// when uploading textures (PixelStorei).
	UnpackAlignment = 0x0CF5
	PackAlignment   = 0x0D05
)

// GetString parameters.
const (
	// Vendor returns the company responsible for the GL implementation.
	Vendor   = 0x1F00
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C
)

// GoString copies a NUL-terminated C string into Go memory.
func GoString(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
