package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// GenTextures fills dst with unused texture names. A texture takes its
// target from the first BindTexture call and keeps it for life.
func (c *Context) GenTextures(dst []Texture) error {
	n, e := sizei("glGenTextures", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.GenTextures(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified("glGenTextures", code)
	}
	return nil
}

// GenTexture returns one unused texture name.
func (c *Context) GenTexture() (Texture, error) {
	var t [1]Texture
	err := c.GenTextures(t[:])
	return t[0], err
}

// DeleteTextures deletes textures, unbinding them from every unit they are
// bound to.
func (c *Context) DeleteTextures(textures ...Texture) error {
	n, e := sizei("glDeleteTextures", "n", len(textures))
	if e != nil {
		return c.fail(e)
	}
	c.fns.DeleteTextures(n, names(textures))
	if code := c.poll(); code != NoError {
		return c.unclassified("glDeleteTextures", code)
	}
	return nil
}

// IsTexture reports whether t names a texture object.
func (c *Context) IsTexture(t Texture) bool {
	return c.fns.IsTexture(t.v)
}

// ActiveTexture selects texture unit unit for subsequent BindTexture calls.
func (c *Context) ActiveTexture(unit uint32) error {
	const op = "glActiveTexture"
	c.fns.ActiveTexture(rawgl.Texture0 + unit)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.fail(&Error{Op: op, Kind: KindOutOfBoundsTextureUnit, Code: code, Index: unit})
	default:
		return c.unclassified(op, code)
	}
}

// GetActiveTexture returns the index of the active texture unit.
func (c *Context) GetActiveTexture() (uint32, error) {
	const op = "glGetIntegerv"
	unit := uint32(c.getInteger(rawgl.ActiveTexture))
	if code := c.poll(); code != NoError {
		return 0, c.unclassified(op, code)
	}
	if unit < rawgl.Texture0 {
		return 0, c.fail(&Error{Op: op, Kind: KindInvalidParameterValue, Value: int64(unit)})
	}
	return unit - rawgl.Texture0, nil
}

// BindTexture binds texture to target on the active unit. The zero Texture
// binds the default texture of target.
func (c *Context) BindTexture(target TextureBindingTarget, texture Texture) error {
	const op = "glBindTexture"
	c.fns.BindTexture(target.GLenum(), texture.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidValue:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLTexture, Code: code, Texture: texture})
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindTextureAttemptedTargetChange, Code: code, Texture: texture, TextureTarget: target})
	default:
		return c.unclassified(op, code)
	}
}

// imageResult classifies the texture image specification calls. Their
// errors describe argument combinations and are reported as is.
func (c *Context) imageResult(op string) error {
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue, InvalidOperation:
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// TexImage1D specifies level of the one-dimensional texture bound to
// target. A nil pixels allocates storage without initialising it, or reads
// from offset zero of a bound pixel unpack buffer.
func (c *Context) TexImage1D(target Texture1DTarget, level int32, internalFormat TextureInternalFormat, width int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	const op = "glTexImage1D"
	if err := c.checkUnpackPixels(op, width, 1, 1, format, typ, pixels); err != nil {
		return err
	}
	c.fns.TexImage1D(target.GLenum(), level, internalFormat.GLint(), width, 0, format.GLenum(), typ.GLenum(), pointer(pixels))
	return c.imageResult(op)
}

// TexImage2D specifies level of the two-dimensional texture, cube map face
// or one-dimensional array bound to target.
func (c *Context) TexImage2D(target Texture2DTarget, level int32, internalFormat TextureInternalFormat, width, height int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	const op = "glTexImage2D"
	if err := c.checkUnpackPixels(op, width, height, 1, format, typ, pixels); err != nil {
		return err
	}
	c.fns.TexImage2D(target.GLenum(), level, internalFormat.GLint(), width, height, 0, format.GLenum(), typ.GLenum(), pointer(pixels))
	return c.imageResult(op)
}

// TexImage3D specifies level of the three-dimensional texture or
// two-dimensional array bound to target.
func (c *Context) TexImage3D(target Texture3DTarget, level int32, internalFormat TextureInternalFormat, width, height, depth int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	const op = "glTexImage3D"
	if err := c.checkUnpackPixels(op, width, height, depth, format, typ, pixels); err != nil {
		return err
	}
	c.fns.TexImage3D(target.GLenum(), level, internalFormat.GLint(), width, height, depth, 0, format.GLenum(), typ.GLenum(), pointer(pixels))
	return c.imageResult(op)
}

// TexSubImage2D replaces a width by height region at (x, y) of level.
func (c *Context) TexSubImage2D(target Texture2DTarget, level, x, y, width, height int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	const op = "glTexSubImage2D"
	if err := c.checkUnpackPixels(op, width, height, 1, format, typ, pixels); err != nil {
		return err
	}
	c.fns.TexSubImage2D(target.GLenum(), level, x, y, width, height, format.GLenum(), typ.GLenum(), pointer(pixels))
	return c.imageResult(op)
}

// GenerateMipmap generates the mipmap chain of the texture bound to target
// from its base level.
func (c *Context) GenerateMipmap(target TextureBindingTarget) error {
	const op = "glGenerateMipmap"
	c.fns.GenerateMipmap(target.GLenum())
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidOperation:
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// CreateTextures fills dst with new texture objects of target. Requires
// OpenGL 4.5.
func (c *Context) CreateTextures(target TextureBindingTarget, dst []Texture) error {
	const op = "glCreateTextures"
	if c.fns.CreateTextures == nil {
		return c.missing(op)
	}
	n, e := sizei("glCreateTextures", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.CreateTextures(target.GLenum(), n, names(dst))
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// CreateTexture returns one new texture object of target.
func (c *Context) CreateTexture(target TextureBindingTarget) (Texture, error) {
	var t [1]Texture
	err := c.CreateTextures(target, t[:])
	return t[0], err
}

// GenerateTextureMipmap generates the mipmap chain of texture. Requires
// OpenGL 4.5.
func (c *Context) GenerateTextureMipmap(texture Texture) error {
	const op = "glGenerateTextureMipmap"
	if c.fns.GenerateTextureMipmap == nil {
		return c.missing(op)
	}
	c.fns.GenerateTextureMipmap(texture.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidOperation:
		if !c.fns.IsTexture(texture.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLTexture, Code: code, Texture: texture})
		}
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}
