package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// TextureBindingTarget is a target textures are bound to.
type TextureBindingTarget uint32

const (
	Texture1D                 TextureBindingTarget = rawgl.Texture1D
	Texture2D                 TextureBindingTarget = rawgl.Texture2D
	Texture3D                 TextureBindingTarget = rawgl.Texture3D
	Texture1DArray            TextureBindingTarget = rawgl.Texture1DArray
	Texture2DArray            TextureBindingTarget = rawgl.Texture2DArray
	TextureRectangle          TextureBindingTarget = rawgl.TextureRectangle
	TextureCubeMap            TextureBindingTarget = rawgl.TextureCubeMap
	TextureCubeMapArray       TextureBindingTarget = rawgl.TextureCubeMapArray
	TextureBufferObject       TextureBindingTarget = rawgl.TextureBuffer
	Texture2DMultisample      TextureBindingTarget = rawgl.Texture2DMultisample
	Texture2DMultisampleArray TextureBindingTarget = rawgl.Texture2DMultisampleArray
)

var textureBindingTargets = newEnum("TextureBindingTarget",
	variant[TextureBindingTarget]{Texture1D, "Image1D"},
	variant[TextureBindingTarget]{Texture2D, "Image2D"},
	variant[TextureBindingTarget]{Texture3D, "Image3D"},
	variant[TextureBindingTarget]{Texture1DArray, "Image1DArray"},
	variant[TextureBindingTarget]{Texture2DArray, "Image2DArray"},
	variant[TextureBindingTarget]{TextureRectangle, "Rectangle"},
	variant[TextureBindingTarget]{TextureCubeMap, "CubeMap"},
	variant[TextureBindingTarget]{TextureCubeMapArray, "CubeMapArray"},
	variant[TextureBindingTarget]{TextureBufferObject, "Buffer"},
	variant[TextureBindingTarget]{Texture2DMultisample, "Image2DMultisample"},
	variant[TextureBindingTarget]{Texture2DMultisampleArray, "Image2DMultisampleArray"},
)

func (t TextureBindingTarget) GLenum() uint32 { return uint32(t) }
func (t TextureBindingTarget) String() string { return textureBindingTargets.name(t) }

func TextureBindingTargetFromGL(v uint32) (TextureBindingTarget, error) {
	return textureBindingTargets.fromGL(v)
}

func TextureBindingTargetValues() []TextureBindingTarget { return textureBindingTargets.all() }

// Texture1DTarget is a target accepted by TexImage1D.
type Texture1DTarget uint32

const (
	Texture1DImage Texture1DTarget = rawgl.Texture1D
	Texture1DProxy Texture1DTarget = rawgl.ProxyTexture1D
)

var texture1DTargets = newEnum("Texture1DTarget",
	variant[Texture1DTarget]{Texture1DImage, "Image1D"},
	variant[Texture1DTarget]{Texture1DProxy, "Proxy1D"},
)

func (t Texture1DTarget) GLenum() uint32 { return uint32(t) }
func (t Texture1DTarget) String() string { return texture1DTargets.name(t) }

func Texture1DTargetFromGL(v uint32) (Texture1DTarget, error) { return texture1DTargets.fromGL(v) }
func Texture1DTargetValues() []Texture1DTarget                { return texture1DTargets.all() }

// Texture2DTarget is a target accepted by TexImage2D: two-dimensional
// images, one-dimensional arrays and individual cube map faces.
type Texture2DTarget uint32

const (
	Texture2DImage            Texture2DTarget = rawgl.Texture2D
	Texture2DProxy            Texture2DTarget = rawgl.ProxyTexture2D
	Texture2DImage1DArray     Texture2DTarget = rawgl.Texture1DArray
	Texture2DProxy1DArray     Texture2DTarget = rawgl.ProxyTexture1DArray
	Texture2DRectangle        Texture2DTarget = rawgl.TextureRectangle
	Texture2DProxyRectangle   Texture2DTarget = rawgl.ProxyTextureRectangle
	Texture2DCubeMapPositiveX Texture2DTarget = rawgl.TextureCubeMapPositiveX
	Texture2DCubeMapNegativeX Texture2DTarget = rawgl.TextureCubeMapNegativeX
	Texture2DCubeMapPositiveY Texture2DTarget = rawgl.TextureCubeMapPositiveY
	Texture2DCubeMapNegativeY Texture2DTarget = rawgl.TextureCubeMapNegativeY
	Texture2DCubeMapPositiveZ Texture2DTarget = rawgl.TextureCubeMapPositiveZ
	Texture2DCubeMapNegativeZ Texture2DTarget = rawgl.TextureCubeMapNegativeZ
	Texture2DProxyCubeMap     Texture2DTarget = rawgl.ProxyTextureCubeMap
)

var texture2DTargets = newEnum("Texture2DTarget",
	variant[Texture2DTarget]{Texture2DImage, "Image2D"},
	variant[Texture2DTarget]{Texture2DProxy, "Proxy2D"},
	variant[Texture2DTarget]{Texture2DImage1DArray, "Image1DArray"},
	variant[Texture2DTarget]{Texture2DProxy1DArray, "Proxy1DArray"},
	variant[Texture2DTarget]{Texture2DRectangle, "Rectangle"},
	variant[Texture2DTarget]{Texture2DProxyRectangle, "ProxyRectangle"},
	variant[Texture2DTarget]{Texture2DCubeMapPositiveX, "CubeMapPositiveX"},
	variant[Texture2DTarget]{Texture2DCubeMapNegativeX, "CubeMapNegativeX"},
	variant[Texture2DTarget]{Texture2DCubeMapPositiveY, "CubeMapPositiveY"},
	variant[Texture2DTarget]{Texture2DCubeMapNegativeY, "CubeMapNegativeY"},
	variant[Texture2DTarget]{Texture2DCubeMapPositiveZ, "CubeMapPositiveZ"},
	variant[Texture2DTarget]{Texture2DCubeMapNegativeZ, "CubeMapNegativeZ"},
	variant[Texture2DTarget]{Texture2DProxyCubeMap, "ProxyCubeMap"},
)

func (t Texture2DTarget) GLenum() uint32 { return uint32(t) }
func (t Texture2DTarget) String() string { return texture2DTargets.name(t) }

// Proxy reports whether t only checks whether an image would fit.
func (t Texture2DTarget) Proxy() bool {
	switch t {
	case Texture2DProxy, Texture2DProxy1DArray, Texture2DProxyRectangle, Texture2DProxyCubeMap:
		return true
	}
	return false
}

func Texture2DTargetFromGL(v uint32) (Texture2DTarget, error) { return texture2DTargets.fromGL(v) }
func Texture2DTargetValues() []Texture2DTarget                { return texture2DTargets.all() }

// Texture3DTarget is a target accepted by TexImage3D.
type Texture3DTarget uint32

const (
	Texture3DImage             Texture3DTarget = rawgl.Texture3D
	Texture3DProxy             Texture3DTarget = rawgl.ProxyTexture3D
	Texture3DImage2DArray      Texture3DTarget = rawgl.Texture2DArray
	Texture3DProxy2DArray      Texture3DTarget = rawgl.ProxyTexture2DArray
	Texture3DCubeMapArray      Texture3DTarget = rawgl.TextureCubeMapArray
	Texture3DProxyCubeMapArray Texture3DTarget = rawgl.ProxyTextureCubeMapArray
)

var texture3DTargets = newEnum("Texture3DTarget",
	variant[Texture3DTarget]{Texture3DImage, "Image3D"},
	variant[Texture3DTarget]{Texture3DProxy, "Proxy3D"},
	variant[Texture3DTarget]{Texture3DImage2DArray, "Image2DArray"},
	variant[Texture3DTarget]{Texture3DProxy2DArray, "Proxy2DArray"},
	variant[Texture3DTarget]{Texture3DCubeMapArray, "CubeMapArray"},
	variant[Texture3DTarget]{Texture3DProxyCubeMapArray, "ProxyCubeMapArray"},
)

func (t Texture3DTarget) GLenum() uint32 { return uint32(t) }
func (t Texture3DTarget) String() string { return texture3DTargets.name(t) }

func Texture3DTargetFromGL(v uint32) (Texture3DTarget, error) { return texture3DTargets.fromGL(v) }
func Texture3DTargetValues() []Texture3DTarget                { return texture3DTargets.all() }

// TextureWrapTarget is the texture coordinate a wrap mode applies to.
type TextureWrapTarget uint32

const (
	WrapS TextureWrapTarget = rawgl.TextureWrapS
	WrapT TextureWrapTarget = rawgl.TextureWrapT
	WrapR TextureWrapTarget = rawgl.TextureWrapR
)

var textureWrapTargets = newEnum("TextureWrapTarget",
	variant[TextureWrapTarget]{WrapS, "S"},
	variant[TextureWrapTarget]{WrapT, "T"},
	variant[TextureWrapTarget]{WrapR, "R"},
)

func (t TextureWrapTarget) GLenum() uint32 { return uint32(t) }
func (t TextureWrapTarget) String() string { return textureWrapTargets.name(t) }

func TextureWrapTargetFromGL(v uint32) (TextureWrapTarget, error) { return textureWrapTargets.fromGL(v) }
func TextureWrapTargetValues() []TextureWrapTarget                { return textureWrapTargets.all() }

// TextureWrapMode is how texture coordinates outside [0, 1] are resolved.
type TextureWrapMode uint32

const (
	ClampToEdge       TextureWrapMode = rawgl.ClampToEdge
	ClampToBorder     TextureWrapMode = rawgl.ClampToBorder
	Repeat            TextureWrapMode = rawgl.Repeat
	MirroredRepeat    TextureWrapMode = rawgl.MirroredRepeat
	MirrorClampToEdge TextureWrapMode = rawgl.MirrorClampToEdge
)

var textureWrapModes = newEnum("TextureWrapMode",
	variant[TextureWrapMode]{ClampToEdge, "ClampToEdge"},
	variant[TextureWrapMode]{ClampToBorder, "ClampToBorder"},
	variant[TextureWrapMode]{Repeat, "Repeat"},
	variant[TextureWrapMode]{MirroredRepeat, "MirroredRepeat"},
	variant[TextureWrapMode]{MirrorClampToEdge, "MirrorClampToEdge"},
)

func (m TextureWrapMode) GLenum() uint32 { return uint32(m) }
func (m TextureWrapMode) String() string { return textureWrapModes.name(m) }

func TextureWrapModeFromGL(v uint32) (TextureWrapMode, error) { return textureWrapModes.fromGL(v) }
func TextureWrapModeValues() []TextureWrapMode                { return textureWrapModes.all() }

// TextureMinFilter is the minification filter of a texture.
type TextureMinFilter uint32

const (
	MinNearest              TextureMinFilter = rawgl.Nearest
	MinLinear               TextureMinFilter = rawgl.Linear
	MinNearestMipmapNearest TextureMinFilter = rawgl.NearestMipmapNearest
	MinLinearMipmapNearest  TextureMinFilter = rawgl.LinearMipmapNearest
	MinNearestMipmapLinear  TextureMinFilter = rawgl.NearestMipmapLinear
	MinLinearMipmapLinear   TextureMinFilter = rawgl.LinearMipmapLinear
)

var textureMinFilters = newEnum("TextureMinFilter",
	variant[TextureMinFilter]{MinNearest, "Nearest"},
	variant[TextureMinFilter]{MinLinear, "Linear"},
	variant[TextureMinFilter]{MinNearestMipmapNearest, "NearestMipmapNearest"},
	variant[TextureMinFilter]{MinLinearMipmapNearest, "LinearMipmapNearest"},
	variant[TextureMinFilter]{MinNearestMipmapLinear, "NearestMipmapLinear"},
	variant[TextureMinFilter]{MinLinearMipmapLinear, "LinearMipmapLinear"},
)

func (f TextureMinFilter) GLenum() uint32 { return uint32(f) }
func (f TextureMinFilter) String() string { return textureMinFilters.name(f) }

func TextureMinFilterFromGL(v uint32) (TextureMinFilter, error) { return textureMinFilters.fromGL(v) }
func TextureMinFilterValues() []TextureMinFilter                { return textureMinFilters.all() }

// TextureMagFilter is the magnification filter of a texture.
type TextureMagFilter uint32

const (
	MagNearest TextureMagFilter = rawgl.Nearest
	MagLinear  TextureMagFilter = rawgl.Linear
)

var textureMagFilters = newEnum("TextureMagFilter",
	variant[TextureMagFilter]{MagNearest, "Nearest"},
	variant[TextureMagFilter]{MagLinear, "Linear"},
)

func (f TextureMagFilter) GLenum() uint32 { return uint32(f) }
func (f TextureMagFilter) String() string { return textureMagFilters.name(f) }

func TextureMagFilterFromGL(v uint32) (TextureMagFilter, error) { return textureMagFilters.fromGL(v) }
func TextureMagFilterValues() []TextureMagFilter                { return textureMagFilters.all() }

// TextureDepthStencilMode selects which component of a depth-stencil
// texture is sampled.
type TextureDepthStencilMode uint32

const (
	DepthStencilModeDepth   TextureDepthStencilMode = rawgl.DepthComponent
	DepthStencilModeStencil TextureDepthStencilMode = rawgl.StencilIndex
)

var textureDepthStencilModes = newEnum("TextureDepthStencilMode",
	variant[TextureDepthStencilMode]{DepthStencilModeDepth, "Depth"},
	variant[TextureDepthStencilMode]{DepthStencilModeStencil, "Stencil"},
)

func (m TextureDepthStencilMode) GLenum() uint32 { return uint32(m) }
func (m TextureDepthStencilMode) String() string { return textureDepthStencilModes.name(m) }

func TextureDepthStencilModeFromGL(v uint32) (TextureDepthStencilMode, error) {
	return textureDepthStencilModes.fromGL(v)
}

func TextureDepthStencilModeValues() []TextureDepthStencilMode {
	return textureDepthStencilModes.all()
}
