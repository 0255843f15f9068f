package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// GenFramebuffers fills dst with unused framebuffer names.
func (c *Context) GenFramebuffers(dst []Framebuffer) error {
	n, e := sizei("glGenFramebuffers", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.GenFramebuffers(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified("glGenFramebuffers", code)
	}
	return nil
}

// GenFramebuffer returns one unused framebuffer name.
func (c *Context) GenFramebuffer() (Framebuffer, error) {
	var f [1]Framebuffer
	err := c.GenFramebuffers(f[:])
	return f[0], err
}

// DeleteFramebuffers deletes framebuffers. Deleting a bound framebuffer
// reverts its binding to the default framebuffer.
func (c *Context) DeleteFramebuffers(framebuffers ...Framebuffer) error {
	n, e := sizei("glDeleteFramebuffers", "n", len(framebuffers))
	if e != nil {
		return c.fail(e)
	}
	c.fns.DeleteFramebuffers(n, names(framebuffers))
	if code := c.poll(); code != NoError {
		return c.unclassified("glDeleteFramebuffers", code)
	}
	return nil
}

// IsFramebuffer reports whether f names a framebuffer object.
func (c *Context) IsFramebuffer(f Framebuffer) bool {
	return c.fns.IsFramebuffer(f.v)
}

// BindFramebuffer binds framebuffer to target. The zero Framebuffer binds
// the default framebuffer.
func (c *Context) BindFramebuffer(target FramebufferBindingTarget, framebuffer Framebuffer) error {
	const op = "glBindFramebuffer"
	c.fns.BindFramebuffer(target.GLenum(), framebuffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLFramebuffer, Code: code, Framebuffer: framebuffer, FramebufferTarget: target})
	default:
		return c.unclassified(op, code)
	}
}

// CheckFramebufferStatus returns the completeness of the framebuffer bound
// to target.
func (c *Context) CheckFramebufferStatus(target FramebufferBindingTarget) (FramebufferStatus, error) {
	const op = "glCheckFramebufferStatus"
	v := c.fns.CheckFramebufferStatus(target.GLenum())
	switch code := c.poll(); code {
	case NoError:
	case InvalidEnum:
		return 0, c.plain(op, code)
	default:
		return 0, c.unclassified(op, code)
	}
	status, err := FramebufferStatusFromGL(v)
	if err != nil {
		return 0, c.withOp(op, err)
	}
	return status, nil
}

// attachError refines errors of the framebuffer attachment calls.
func (c *Context) attachError(op string, code ErrorCode, target FramebufferBindingTarget) error {
	if code == InvalidOperation && c.getInteger(target.bindingQuery()) == 0 {
		return c.fail(&Error{Op: op, Kind: KindNoFramebufferBound, Code: code, FramebufferTarget: target})
	}
	return c.plain(op, code)
}

// FramebufferRenderbuffer attaches renderbuffer to attachment of the
// framebuffer bound to target. The zero Renderbuffer detaches.
func (c *Context) FramebufferRenderbuffer(target FramebufferBindingTarget, attachment FramebufferAttachment, renderbuffer Renderbuffer) error {
	const op = "glFramebufferRenderbuffer"
	c.fns.FramebufferRenderbuffer(target.GLenum(), attachment.GLenum(), rawgl.Renderbuffer, renderbuffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum:
		return c.plain(op, code)
	case InvalidOperation:
		if c.getInteger(target.bindingQuery()) == 0 {
			return c.fail(&Error{Op: op, Kind: KindNoFramebufferBound, Code: code, FramebufferTarget: target})
		}
		if !renderbuffer.IsZero() && !c.fns.IsRenderbuffer(renderbuffer.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLRenderbuffer, Code: code, Renderbuffer: renderbuffer})
		}
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}

// FramebufferTexture2D attaches level of texture to attachment of the
// framebuffer bound to target. texTarget selects the face of a cube map.
func (c *Context) FramebufferTexture2D(target FramebufferBindingTarget, attachment FramebufferAttachment, texTarget Texture2DTarget, texture Texture, level int32) error {
	const op = "glFramebufferTexture2D"
	c.fns.FramebufferTexture2D(target.GLenum(), attachment.GLenum(), texTarget.GLenum(), texture.v, level)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		if c.getInteger(target.bindingQuery()) != 0 && !texture.IsZero() && !c.fns.IsTexture(texture.v) {
			return c.fail(&Error{Op: op, Kind: KindNonOpenGLTexture, Code: code, Texture: texture})
		}
		return c.attachError(op, code, target)
	default:
		return c.unclassified(op, code)
	}
}

// GenRenderbuffers fills dst with unused renderbuffer names.
func (c *Context) GenRenderbuffers(dst []Renderbuffer) error {
	n, e := sizei("glGenRenderbuffers", "n", len(dst))
	if e != nil {
		return c.fail(e)
	}
	c.fns.GenRenderbuffers(n, names(dst))
	if code := c.poll(); code != NoError {
		return c.unclassified("glGenRenderbuffers", code)
	}
	return nil
}

// GenRenderbuffer returns one unused renderbuffer name.
func (c *Context) GenRenderbuffer() (Renderbuffer, error) {
	var r [1]Renderbuffer
	err := c.GenRenderbuffers(r[:])
	return r[0], err
}

// DeleteRenderbuffers deletes renderbuffers, detaching them from the bound
// framebuffers.
func (c *Context) DeleteRenderbuffers(renderbuffers ...Renderbuffer) error {
	n, e := sizei("glDeleteRenderbuffers", "n", len(renderbuffers))
	if e != nil {
		return c.fail(e)
	}
	c.fns.DeleteRenderbuffers(n, names(renderbuffers))
	if code := c.poll(); code != NoError {
		return c.unclassified("glDeleteRenderbuffers", code)
	}
	return nil
}

// IsRenderbuffer reports whether r names a renderbuffer object.
func (c *Context) IsRenderbuffer(r Renderbuffer) bool {
	return c.fns.IsRenderbuffer(r.v)
}

// BindRenderbuffer binds renderbuffer. The zero Renderbuffer unbinds.
func (c *Context) BindRenderbuffer(renderbuffer Renderbuffer) error {
	const op = "glBindRenderbuffer"
	c.fns.BindRenderbuffer(rawgl.Renderbuffer, renderbuffer.v)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidOperation:
		return c.fail(&Error{Op: op, Kind: KindNonOpenGLRenderbuffer, Code: code, Renderbuffer: renderbuffer})
	default:
		return c.unclassified(op, code)
	}
}

// RenderbufferStorage allocates storage for the bound renderbuffer.
func (c *Context) RenderbufferStorage(internalFormat TextureInternalFormat, width, height int32) error {
	const op = "glRenderbufferStorage"
	c.fns.RenderbufferStorage(rawgl.Renderbuffer, internalFormat.GLenum(), width, height)
	switch code := c.poll(); code {
	case NoError:
		return nil
	case InvalidEnum, InvalidValue:
		return c.plain(op, code)
	case InvalidOperation:
		if c.getInteger(rawgl.RenderbufferBinding) == 0 {
			return c.fail(&Error{Op: op, Kind: KindNoRenderbufferBound, Code: code})
		}
		return c.plain(op, code)
	default:
		return c.unclassified(op, code)
	}
}
