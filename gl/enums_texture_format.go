package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// TextureInternalFormat is the format OpenGL stores texels and renderbuffer
// samples in.
type TextureInternalFormat uint32

const (
	BaseRed                        TextureInternalFormat = rawgl.Red
	BaseRG                         TextureInternalFormat = rawgl.RG
	BaseRGB                        TextureInternalFormat = rawgl.RGB
	BaseRGBA                       TextureInternalFormat = rawgl.RGBA
	BaseDepthComponent             TextureInternalFormat = rawgl.DepthComponent
	BaseDepthStencil               TextureInternalFormat = rawgl.DepthStencil
	R8                             TextureInternalFormat = rawgl.R8
	R8SNorm                        TextureInternalFormat = rawgl.R8SNorm
	R16                            TextureInternalFormat = rawgl.R16
	R16SNorm                       TextureInternalFormat = rawgl.R16SNorm
	RG8                            TextureInternalFormat = rawgl.RG8
	RG8SNorm                       TextureInternalFormat = rawgl.RG8SNorm
	RG16                           TextureInternalFormat = rawgl.RG16
	RG16SNorm                      TextureInternalFormat = rawgl.RG16SNorm
	R3G3B2                         TextureInternalFormat = rawgl.R3G3B2
	RGB4                           TextureInternalFormat = rawgl.RGB4
	RGB5                           TextureInternalFormat = rawgl.RGB5
	RGB8                           TextureInternalFormat = rawgl.RGB8
	RGB8SNorm                      TextureInternalFormat = rawgl.RGB8SNorm
	RGB10                          TextureInternalFormat = rawgl.RGB10
	RGB12                          TextureInternalFormat = rawgl.RGB12
	RGB16                          TextureInternalFormat = rawgl.RGB16
	RGB16SNorm                     TextureInternalFormat = rawgl.RGB16SNorm
	RGBA2                          TextureInternalFormat = rawgl.RGBA2
	RGBA4                          TextureInternalFormat = rawgl.RGBA4
	RGB5A1                         TextureInternalFormat = rawgl.RGB5A1
	RGBA8                          TextureInternalFormat = rawgl.RGBA8
	RGBA8SNorm                     TextureInternalFormat = rawgl.RGBA8SNorm
	RGB10A2                        TextureInternalFormat = rawgl.RGB10A2
	RGB10A2UI                      TextureInternalFormat = rawgl.RGB10A2UI
	RGBA12                         TextureInternalFormat = rawgl.RGBA12
	RGBA16                         TextureInternalFormat = rawgl.RGBA16
	SRGB8                          TextureInternalFormat = rawgl.SRGB8
	SRGB8Alpha8                    TextureInternalFormat = rawgl.SRGB8Alpha8
	R16F                           TextureInternalFormat = rawgl.R16F
	RG16F                          TextureInternalFormat = rawgl.RG16F
	RGB16F                         TextureInternalFormat = rawgl.RGB16F
	RGBA16F                        TextureInternalFormat = rawgl.RGBA16F
	R32F                           TextureInternalFormat = rawgl.R32F
	RG32F                          TextureInternalFormat = rawgl.RG32F
	RGB32F                         TextureInternalFormat = rawgl.RGB32F
	RGBA32F                        TextureInternalFormat = rawgl.RGBA32F
	R11FG11FB10F                   TextureInternalFormat = rawgl.R11FG11FB10F
	RGB9E5                         TextureInternalFormat = rawgl.RGB9E5
	R8I                            TextureInternalFormat = rawgl.R8I
	R8UI                           TextureInternalFormat = rawgl.R8UI
	R16I                           TextureInternalFormat = rawgl.R16I
	R16UI                          TextureInternalFormat = rawgl.R16UI
	R32I                           TextureInternalFormat = rawgl.R32I
	R32UI                          TextureInternalFormat = rawgl.R32UI
	RG8I                           TextureInternalFormat = rawgl.RG8I
	RG8UI                          TextureInternalFormat = rawgl.RG8UI
	RG16I                          TextureInternalFormat = rawgl.RG16I
	RG16UI                         TextureInternalFormat = rawgl.RG16UI
	RG32I                          TextureInternalFormat = rawgl.RG32I
	RG32UI                         TextureInternalFormat = rawgl.RG32UI
	RGB8I                          TextureInternalFormat = rawgl.RGB8I
	RGB8UI                         TextureInternalFormat = rawgl.RGB8UI
	RGB16I                         TextureInternalFormat = rawgl.RGB16I
	RGB16UI                        TextureInternalFormat = rawgl.RGB16UI
	RGB32I                         TextureInternalFormat = rawgl.RGB32I
	RGB32UI                        TextureInternalFormat = rawgl.RGB32UI
	RGBA8I                         TextureInternalFormat = rawgl.RGBA8I
	RGBA8UI                        TextureInternalFormat = rawgl.RGBA8UI
	RGBA16I                        TextureInternalFormat = rawgl.RGBA16I
	RGBA16UI                       TextureInternalFormat = rawgl.RGBA16UI
	RGBA32I                        TextureInternalFormat = rawgl.RGBA32I
	RGBA32UI                       TextureInternalFormat = rawgl.RGBA32UI
	DepthComponent16               TextureInternalFormat = rawgl.DepthComponent16
	DepthComponent24               TextureInternalFormat = rawgl.DepthComponent24
	DepthComponent32               TextureInternalFormat = rawgl.DepthComponent32
	DepthComponent32F              TextureInternalFormat = rawgl.DepthComponent32F
	Depth24Stencil8                TextureInternalFormat = rawgl.Depth24Stencil8
	Depth32FStencil8               TextureInternalFormat = rawgl.Depth32FStencil8
	StencilIndex8                  TextureInternalFormat = rawgl.StencilIndex8
	CompressedRed                  TextureInternalFormat = rawgl.CompressedRed
	CompressedRG                   TextureInternalFormat = rawgl.CompressedRG
	CompressedRGB                  TextureInternalFormat = rawgl.CompressedRGB
	CompressedRGBA                 TextureInternalFormat = rawgl.CompressedRGBA
	CompressedSRGB                 TextureInternalFormat = rawgl.CompressedSRGB
	CompressedSRGBAlpha            TextureInternalFormat = rawgl.CompressedSRGBAlpha
	CompressedRedRGTC1             TextureInternalFormat = rawgl.CompressedRedRGTC1
	CompressedSignedRedRGTC1       TextureInternalFormat = rawgl.CompressedSignedRedRGTC1
	CompressedRGRGTC2              TextureInternalFormat = rawgl.CompressedRGRGTC2
	CompressedSignedRGRGTC2        TextureInternalFormat = rawgl.CompressedSignedRGRGTC2
	CompressedRGBABPTCUnorm        TextureInternalFormat = rawgl.CompressedRGBABPTCUnorm
	CompressedSRGBAlphaBPTCUnorm   TextureInternalFormat = rawgl.CompressedSRGBAlphaBPTCUnorm
	CompressedRGBBPTCSignedFloat   TextureInternalFormat = rawgl.CompressedRGBBPTCSignedFloat
	CompressedRGBBPTCUnsignedFloat TextureInternalFormat = rawgl.CompressedRGBBPTCUnsignedFloat
)

var textureInternalFormats = newEnum("TextureInternalFormat",
	variant[TextureInternalFormat]{BaseRed, "Red"},
	variant[TextureInternalFormat]{BaseRG, "RG"},
	variant[TextureInternalFormat]{BaseRGB, "RGB"},
	variant[TextureInternalFormat]{BaseRGBA, "RGBA"},
	variant[TextureInternalFormat]{BaseDepthComponent, "DepthComponent"},
	variant[TextureInternalFormat]{BaseDepthStencil, "DepthStencil"},
	variant[TextureInternalFormat]{R8, "R8"},
	variant[TextureInternalFormat]{R8SNorm, "R8SNorm"},
	variant[TextureInternalFormat]{R16, "R16"},
	variant[TextureInternalFormat]{R16SNorm, "R16SNorm"},
	variant[TextureInternalFormat]{RG8, "RG8"},
	variant[TextureInternalFormat]{RG8SNorm, "RG8SNorm"},
	variant[TextureInternalFormat]{RG16, "RG16"},
	variant[TextureInternalFormat]{RG16SNorm, "RG16SNorm"},
	variant[TextureInternalFormat]{R3G3B2, "R3G3B2"},
	variant[TextureInternalFormat]{RGB4, "RGB4"},
	variant[TextureInternalFormat]{RGB5, "RGB5"},
	variant[TextureInternalFormat]{RGB8, "RGB8"},
	variant[TextureInternalFormat]{RGB8SNorm, "RGB8SNorm"},
	variant[TextureInternalFormat]{RGB10, "RGB10"},
	variant[TextureInternalFormat]{RGB12, "RGB12"},
	variant[TextureInternalFormat]{RGB16, "RGB16"},
	variant[TextureInternalFormat]{RGB16SNorm, "RGB16SNorm"},
	variant[TextureInternalFormat]{RGBA2, "RGBA2"},
	variant[TextureInternalFormat]{RGBA4, "RGBA4"},
	variant[TextureInternalFormat]{RGB5A1, "RGB5A1"},
	variant[TextureInternalFormat]{RGBA8, "RGBA8"},
	variant[TextureInternalFormat]{RGBA8SNorm, "RGBA8SNorm"},
	variant[TextureInternalFormat]{RGB10A2, "RGB10A2"},
	variant[TextureInternalFormat]{RGB10A2UI, "RGB10A2UI"},
	variant[TextureInternalFormat]{RGBA12, "RGBA12"},
	variant[TextureInternalFormat]{RGBA16, "RGBA16"},
	variant[TextureInternalFormat]{SRGB8, "SRGB8"},
	variant[TextureInternalFormat]{SRGB8Alpha8, "SRGB8Alpha8"},
	variant[TextureInternalFormat]{R16F, "R16F"},
	variant[TextureInternalFormat]{RG16F, "RG16F"},
	variant[TextureInternalFormat]{RGB16F, "RGB16F"},
	variant[TextureInternalFormat]{RGBA16F, "RGBA16F"},
	variant[TextureInternalFormat]{R32F, "R32F"},
	variant[TextureInternalFormat]{RG32F, "RG32F"},
	variant[TextureInternalFormat]{RGB32F, "RGB32F"},
	variant[TextureInternalFormat]{RGBA32F, "RGBA32F"},
	variant[TextureInternalFormat]{R11FG11FB10F, "R11FG11FB10F"},
	variant[TextureInternalFormat]{RGB9E5, "RGB9E5"},
	variant[TextureInternalFormat]{R8I, "R8I"},
	variant[TextureInternalFormat]{R8UI, "R8UI"},
	variant[TextureInternalFormat]{R16I, "R16I"},
	variant[TextureInternalFormat]{R16UI, "R16UI"},
	variant[TextureInternalFormat]{R32I, "R32I"},
	variant[TextureInternalFormat]{R32UI, "R32UI"},
	variant[TextureInternalFormat]{RG8I, "RG8I"},
	variant[TextureInternalFormat]{RG8UI, "RG8UI"},
	variant[TextureInternalFormat]{RG16I, "RG16I"},
	variant[TextureInternalFormat]{RG16UI, "RG16UI"},
	variant[TextureInternalFormat]{RG32I, "RG32I"},
	variant[TextureInternalFormat]{RG32UI, "RG32UI"},
	variant[TextureInternalFormat]{RGB8I, "RGB8I"},
	variant[TextureInternalFormat]{RGB8UI, "RGB8UI"},
	variant[TextureInternalFormat]{RGB16I, "RGB16I"},
	variant[TextureInternalFormat]{RGB16UI, "RGB16UI"},
	variant[TextureInternalFormat]{RGB32I, "RGB32I"},
	variant[TextureInternalFormat]{RGB32UI, "RGB32UI"},
	variant[TextureInternalFormat]{RGBA8I, "RGBA8I"},
	variant[TextureInternalFormat]{RGBA8UI, "RGBA8UI"},
	variant[TextureInternalFormat]{RGBA16I, "RGBA16I"},
	variant[TextureInternalFormat]{RGBA16UI, "RGBA16UI"},
	variant[TextureInternalFormat]{RGBA32I, "RGBA32I"},
	variant[TextureInternalFormat]{RGBA32UI, "RGBA32UI"},
	variant[TextureInternalFormat]{DepthComponent16, "DepthComponent16"},
	variant[TextureInternalFormat]{DepthComponent24, "DepthComponent24"},
	variant[TextureInternalFormat]{DepthComponent32, "DepthComponent32"},
	variant[TextureInternalFormat]{DepthComponent32F, "DepthComponent32F"},
	variant[TextureInternalFormat]{Depth24Stencil8, "Depth24Stencil8"},
	variant[TextureInternalFormat]{Depth32FStencil8, "Depth32FStencil8"},
	variant[TextureInternalFormat]{StencilIndex8, "StencilIndex8"},
	variant[TextureInternalFormat]{CompressedRed, "CompressedRed"},
	variant[TextureInternalFormat]{CompressedRG, "CompressedRG"},
	variant[TextureInternalFormat]{CompressedRGB, "CompressedRGB"},
	variant[TextureInternalFormat]{CompressedRGBA, "CompressedRGBA"},
	variant[TextureInternalFormat]{CompressedSRGB, "CompressedSRGB"},
	variant[TextureInternalFormat]{CompressedSRGBAlpha, "CompressedSRGBAlpha"},
	variant[TextureInternalFormat]{CompressedRedRGTC1, "CompressedRedRGTC1"},
	variant[TextureInternalFormat]{CompressedSignedRedRGTC1, "CompressedSignedRedRGTC1"},
	variant[TextureInternalFormat]{CompressedRGRGTC2, "CompressedRGRGTC2"},
	variant[TextureInternalFormat]{CompressedSignedRGRGTC2, "CompressedSignedRGRGTC2"},
	variant[TextureInternalFormat]{CompressedRGBABPTCUnorm, "CompressedRGBABPTCUnorm"},
	variant[TextureInternalFormat]{CompressedSRGBAlphaBPTCUnorm, "CompressedSRGBAlphaBPTCUnorm"},
	variant[TextureInternalFormat]{CompressedRGBBPTCSignedFloat, "CompressedRGBBPTCSignedFloat"},
	variant[TextureInternalFormat]{CompressedRGBBPTCUnsignedFloat, "CompressedRGBBPTCUnsignedFloat"},
)

func (f TextureInternalFormat) GLenum() uint32 { return uint32(f) }
func (f TextureInternalFormat) String() string { return textureInternalFormats.name(f) }

// GLint is the internalformat argument of the glTexImage calls.
func (f TextureInternalFormat) GLint() int32 { return int32(f) }

func TextureInternalFormatFromGL(v uint32) (TextureInternalFormat, error) { return textureInternalFormats.fromGL(v) }
func TextureInternalFormatValues() []TextureInternalFormat                { return textureInternalFormats.all() }

// TextureFormat is the layout of client pixel data.
type TextureFormat uint32

const (
	FormatRed            TextureFormat = rawgl.Red
	FormatRG             TextureFormat = rawgl.RG
	FormatRGB            TextureFormat = rawgl.RGB
	FormatBGR            TextureFormat = rawgl.BGR
	FormatRGBA           TextureFormat = rawgl.RGBA
	FormatBGRA           TextureFormat = rawgl.BGRA
	FormatRedInteger     TextureFormat = rawgl.RedInteger
	FormatRGInteger      TextureFormat = rawgl.RGInteger
	FormatRGBInteger     TextureFormat = rawgl.RGBInteger
	FormatBGRInteger     TextureFormat = rawgl.BGRInteger
	FormatRGBAInteger    TextureFormat = rawgl.RGBAInteger
	FormatBGRAInteger    TextureFormat = rawgl.BGRAInteger
	FormatStencilIndex   TextureFormat = rawgl.StencilIndex
	FormatDepthComponent TextureFormat = rawgl.DepthComponent
	FormatDepthStencil   TextureFormat = rawgl.DepthStencil
)

var textureFormats = newEnum("TextureFormat",
	variant[TextureFormat]{FormatRed, "Red"},
	variant[TextureFormat]{FormatRG, "RG"},
	variant[TextureFormat]{FormatRGB, "RGB"},
	variant[TextureFormat]{FormatBGR, "BGR"},
	variant[TextureFormat]{FormatRGBA, "RGBA"},
	variant[TextureFormat]{FormatBGRA, "BGRA"},
	variant[TextureFormat]{FormatRedInteger, "RedInteger"},
	variant[TextureFormat]{FormatRGInteger, "RGInteger"},
	variant[TextureFormat]{FormatRGBInteger, "RGBInteger"},
	variant[TextureFormat]{FormatBGRInteger, "BGRInteger"},
	variant[TextureFormat]{FormatRGBAInteger, "RGBAInteger"},
	variant[TextureFormat]{FormatBGRAInteger, "BGRAInteger"},
	variant[TextureFormat]{FormatStencilIndex, "StencilIndex"},
	variant[TextureFormat]{FormatDepthComponent, "DepthComponent"},
	variant[TextureFormat]{FormatDepthStencil, "DepthStencil"},
)

func (f TextureFormat) GLenum() uint32 { return uint32(f) }
func (f TextureFormat) String() string { return textureFormats.name(f) }

func TextureFormatFromGL(v uint32) (TextureFormat, error) { return textureFormats.fromGL(v) }
func TextureFormatValues() []TextureFormat                { return textureFormats.all() }

// TexturePixelType is the component type of client pixel data.
type TexturePixelType uint32

const (
	PixelUnsignedByte             TexturePixelType = rawgl.UnsignedByte
	PixelByte                     TexturePixelType = rawgl.Byte
	PixelUnsignedShort            TexturePixelType = rawgl.UnsignedShort
	PixelShort                    TexturePixelType = rawgl.Short
	PixelUnsignedInt              TexturePixelType = rawgl.UnsignedInt
	PixelInt                      TexturePixelType = rawgl.Int
	PixelHalfFloat                TexturePixelType = rawgl.HalfFloat
	PixelFloat                    TexturePixelType = rawgl.Float
	PixelUnsignedByte332          TexturePixelType = rawgl.UnsignedByte332
	PixelUnsignedByte233Rev       TexturePixelType = rawgl.UnsignedByte233Rev
	PixelUnsignedShort565         TexturePixelType = rawgl.UnsignedShort565
	PixelUnsignedShort565Rev      TexturePixelType = rawgl.UnsignedShort565Rev
	PixelUnsignedShort4444        TexturePixelType = rawgl.UnsignedShort4444
	PixelUnsignedShort4444Rev     TexturePixelType = rawgl.UnsignedShort4444Rev
	PixelUnsignedShort5551        TexturePixelType = rawgl.UnsignedShort5551
	PixelUnsignedShort1555Rev     TexturePixelType = rawgl.UnsignedShort1555Rev
	PixelUnsignedInt8888          TexturePixelType = rawgl.UnsignedInt8888
	PixelUnsignedInt8888Rev       TexturePixelType = rawgl.UnsignedInt8888Rev
	PixelUnsignedInt1010102       TexturePixelType = rawgl.UnsignedInt1010102
	PixelUnsignedInt2101010Rev    TexturePixelType = rawgl.UnsignedInt2101010Rev
	PixelUnsignedInt248           TexturePixelType = rawgl.UnsignedInt248
	PixelUnsignedInt10F11F11FRev  TexturePixelType = rawgl.UnsignedInt10f11f11fRev
	PixelUnsignedInt5999Rev       TexturePixelType = rawgl.UnsignedInt5999Rev
	PixelFloat32UnsignedInt248Rev TexturePixelType = rawgl.Float32UnsignedInt248Rev
)

var texturePixelTypes = newEnum("TexturePixelType",
	variant[TexturePixelType]{PixelUnsignedByte, "UnsignedByte"},
	variant[TexturePixelType]{PixelByte, "Byte"},
	variant[TexturePixelType]{PixelUnsignedShort, "UnsignedShort"},
	variant[TexturePixelType]{PixelShort, "Short"},
	variant[TexturePixelType]{PixelUnsignedInt, "UnsignedInt"},
	variant[TexturePixelType]{PixelInt, "Int"},
	variant[TexturePixelType]{PixelHalfFloat, "HalfFloat"},
	variant[TexturePixelType]{PixelFloat, "Float"},
	variant[TexturePixelType]{PixelUnsignedByte332, "UnsignedByte332"},
	variant[TexturePixelType]{PixelUnsignedByte233Rev, "UnsignedByte233Rev"},
	variant[TexturePixelType]{PixelUnsignedShort565, "UnsignedShort565"},
	variant[TexturePixelType]{PixelUnsignedShort565Rev, "UnsignedShort565Rev"},
	variant[TexturePixelType]{PixelUnsignedShort4444, "UnsignedShort4444"},
	variant[TexturePixelType]{PixelUnsignedShort4444Rev, "UnsignedShort4444Rev"},
	variant[TexturePixelType]{PixelUnsignedShort5551, "UnsignedShort5551"},
	variant[TexturePixelType]{PixelUnsignedShort1555Rev, "UnsignedShort1555Rev"},
	variant[TexturePixelType]{PixelUnsignedInt8888, "UnsignedInt8888"},
	variant[TexturePixelType]{PixelUnsignedInt8888Rev, "UnsignedInt8888Rev"},
	variant[TexturePixelType]{PixelUnsignedInt1010102, "UnsignedInt1010102"},
	variant[TexturePixelType]{PixelUnsignedInt2101010Rev, "UnsignedInt2101010Rev"},
	variant[TexturePixelType]{PixelUnsignedInt248, "UnsignedInt248"},
	variant[TexturePixelType]{PixelUnsignedInt10F11F11FRev, "UnsignedInt10F11F11FRev"},
	variant[TexturePixelType]{PixelUnsignedInt5999Rev, "UnsignedInt5999Rev"},
	variant[TexturePixelType]{PixelFloat32UnsignedInt248Rev, "Float32UnsignedInt248Rev"},
)

func (t TexturePixelType) GLenum() uint32 { return uint32(t) }
func (t TexturePixelType) String() string { return texturePixelTypes.name(t) }

func TexturePixelTypeFromGL(v uint32) (TexturePixelType, error) { return texturePixelTypes.fromGL(v) }
func TexturePixelTypeValues() []TexturePixelType                { return texturePixelTypes.all() }
