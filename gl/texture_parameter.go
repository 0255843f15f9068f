package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// Texture parameters come in two shapes: TexParameter* sets the texture
// bound to a target on the active unit, TextureParameter* names the texture
// directly and requires OpenGL 4.5.

func (c *Context) texParameteri(target TextureBindingTarget, pname uint32, param int32) error {
	const op = "glTexParameteri"
	c.fns.TexParameteri(target.GLenum(), pname, param)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidOperation:
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) textureResult(op string, texture Texture) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidOperation:
		if !c.fns.IsTexture(texture.v) {
			return c.fail(&Error{Op: op, Kind: KindNotATexture, Code: code, Texture: texture})
		}
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

func (c *Context) textureParameteri(texture Texture, pname uint32, param int32) error {
	const op = "glTextureParameteri"
	if c.fns.TextureParameteri == nil {
		return c.missing(op)
	}
	c.fns.TextureParameteri(texture.v, pname, param)
	return c.textureResult(op, texture)
}

// TexParameterWrap sets the wrap mode of one texture coordinate.
func (c *Context) TexParameterWrap(target TextureBindingTarget, coord TextureWrapTarget, mode TextureWrapMode) error {
	return c.texParameteri(target, coord.GLenum(), int32(mode))
}

// TexParameterMinFilter sets the minifying filter.
func (c *Context) TexParameterMinFilter(target TextureBindingTarget, filter TextureMinFilter) error {
	return c.texParameteri(target, rawgl.TextureMinFilter, int32(filter))
}

// TexParameterMagFilter sets the magnifying filter.
func (c *Context) TexParameterMagFilter(target TextureBindingTarget, filter TextureMagFilter) error {
	return c.texParameteri(target, rawgl.TextureMagFilter, int32(filter))
}

// TexParameterDepthStencilMode selects which component of a depth-stencil
// texture is sampled.
func (c *Context) TexParameterDepthStencilMode(target TextureBindingTarget, mode TextureDepthStencilMode) error {
	return c.texParameteri(target, rawgl.DepthStencilTextureMode, int32(mode))
}

// TexParameterBorderColour sets the RGBA colour used with ClampToBorder.
func (c *Context) TexParameterBorderColour(target TextureBindingTarget, colour [4]float32) error {
	const op = "glTexParameterfv"
	c.fns.TexParameterfv(target.GLenum(), rawgl.TextureBorderColor, &colour[0])
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidOperation:
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// TextureParameterWrap is TexParameterWrap on texture.
func (c *Context) TextureParameterWrap(texture Texture, coord TextureWrapTarget, mode TextureWrapMode) error {
	return c.textureParameteri(texture, coord.GLenum(), int32(mode))
}

// TextureParameterMinFilter is TexParameterMinFilter on texture.
func (c *Context) TextureParameterMinFilter(texture Texture, filter TextureMinFilter) error {
	return c.textureParameteri(texture, rawgl.TextureMinFilter, int32(filter))
}

// TextureParameterMagFilter is TexParameterMagFilter on texture.
func (c *Context) TextureParameterMagFilter(texture Texture, filter TextureMagFilter) error {
	return c.textureParameteri(texture, rawgl.TextureMagFilter, int32(filter))
}

// TextureParameterDepthStencilMode is TexParameterDepthStencilMode on
// texture.
func (c *Context) TextureParameterDepthStencilMode(texture Texture, mode TextureDepthStencilMode) error {
	return c.textureParameteri(texture, rawgl.DepthStencilTextureMode, int32(mode))
}

// TextureParameterBorderColour is TexParameterBorderColour on texture.
func (c *Context) TextureParameterBorderColour(texture Texture, colour [4]float32) error {
	const op = "glTextureParameterfv"
	if c.fns.TextureParameterfv == nil {
		return c.missing(op)
	}
	c.fns.TextureParameterfv(texture.v, rawgl.TextureBorderColor, &colour[0])
	return c.textureResult(op, texture)
}
