package gl

import (
	"fmt"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// FramebufferBindingTarget is a framebuffer binding point.
type FramebufferBindingTarget uint32

const (
	DrawFramebuffer     FramebufferBindingTarget = rawgl.DrawFramebuffer
	ReadFramebuffer     FramebufferBindingTarget = rawgl.ReadFramebuffer
	ReadDrawFramebuffer FramebufferBindingTarget = rawgl.Framebuffer
)

var framebufferBindingTargets = newEnum("FramebufferBindingTarget",
	variant[FramebufferBindingTarget]{DrawFramebuffer, "Draw"},
	variant[FramebufferBindingTarget]{ReadFramebuffer, "Read"},
	variant[FramebufferBindingTarget]{ReadDrawFramebuffer, "ReadDraw"},
)

func (t FramebufferBindingTarget) GLenum() uint32 { return uint32(t) }
func (t FramebufferBindingTarget) String() string { return framebufferBindingTargets.name(t) }

func FramebufferBindingTargetFromGL(v uint32) (FramebufferBindingTarget, error) {
	return framebufferBindingTargets.fromGL(v)
}

func FramebufferBindingTargetValues() []FramebufferBindingTarget {
	return framebufferBindingTargets.all()
}

// bindingQuery is the glGetIntegerv name reporting the framebuffer bound to
// t. ReadDraw reports the draw binding.
func (t FramebufferBindingTarget) bindingQuery() uint32 {
	if t == ReadFramebuffer {
		return rawgl.ReadFramebufferBinding
	}
	return rawgl.DrawFramebufferBinding
}

// FramebufferAttachment is an attachment point of a framebuffer object.
type FramebufferAttachment uint32

// MaxColourAttachments is the number of colour attachment points OpenGL
// defines constants for.
const MaxColourAttachments = 32

const (
	DepthAttachment        FramebufferAttachment = rawgl.DepthAttachment
	StencilAttachment      FramebufferAttachment = rawgl.StencilAttachment
	DepthStencilAttachment FramebufferAttachment = rawgl.DepthStencilAttachment
)

// ColourAttachment returns colour attachment point i. Indices outside
// [0, MaxColourAttachments) are a ConversionFailure.
func ColourAttachment(i int) (FramebufferAttachment, error) {
	if i < 0 || i >= MaxColourAttachments {
		return 0, conversionFailure("colour attachment index", int64(i))
	}
	return colourAttachment(i), nil
}

func colourAttachment(i int) FramebufferAttachment {
	return FramebufferAttachment(rawgl.ColorAttachment0 + uint32(i))
}

// ColourIndex returns i if a is ColourAttachment(i).
func (a FramebufferAttachment) ColourIndex() (int, bool) {
	i := int(a) - rawgl.ColorAttachment0
	if i < 0 || i >= MaxColourAttachments {
		return 0, false
	}
	return i, true
}

var framebufferAttachments = newEnum("FramebufferAttachment", framebufferAttachmentVariants()...)

func framebufferAttachmentVariants() []variant[FramebufferAttachment] {
	out := make([]variant[FramebufferAttachment], 0, MaxColourAttachments+3)
	for i := 0; i < MaxColourAttachments; i++ {
		out = append(out, variant[FramebufferAttachment]{colourAttachment(i), fmt.Sprintf("Colour%d", i)})
	}
	return append(out,
		variant[FramebufferAttachment]{DepthAttachment, "Depth"},
		variant[FramebufferAttachment]{StencilAttachment, "Stencil"},
		variant[FramebufferAttachment]{DepthStencilAttachment, "DepthStencil"},
	)
}

func (a FramebufferAttachment) GLenum() uint32 { return uint32(a) }
func (a FramebufferAttachment) String() string { return framebufferAttachments.name(a) }

func FramebufferAttachmentFromGL(v uint32) (FramebufferAttachment, error) {
	return framebufferAttachments.fromGL(v)
}

func FramebufferAttachmentValues() []FramebufferAttachment { return framebufferAttachments.all() }

// FramebufferStatus is the completeness status of a framebuffer.
type FramebufferStatus uint32

const (
	FramebufferComplete                    FramebufferStatus = rawgl.FramebufferComplete
	FramebufferUndefined                   FramebufferStatus = rawgl.FramebufferUndefined
	FramebufferIncompleteAttachment        FramebufferStatus = rawgl.IncompleteAttachment
	FramebufferIncompleteMissingAttachment FramebufferStatus = rawgl.IncompleteMissingAttachment
	FramebufferIncompleteDrawBuffer        FramebufferStatus = rawgl.IncompleteDrawBuffer
	FramebufferIncompleteReadBuffer        FramebufferStatus = rawgl.IncompleteReadBuffer
	FramebufferUnsupported                 FramebufferStatus = rawgl.FramebufferUnsupported
	FramebufferIncompleteMultisample       FramebufferStatus = rawgl.IncompleteMultisample
	FramebufferIncompleteLayerTargets      FramebufferStatus = rawgl.IncompleteLayerTargets
)

var framebufferStatuses = newEnum("FramebufferStatus",
	variant[FramebufferStatus]{FramebufferComplete, "Complete"},
	variant[FramebufferStatus]{FramebufferUndefined, "Undefined"},
	variant[FramebufferStatus]{FramebufferIncompleteAttachment, "IncompleteAttachment"},
	variant[FramebufferStatus]{FramebufferIncompleteMissingAttachment, "IncompleteMissingAttachment"},
	variant[FramebufferStatus]{FramebufferIncompleteDrawBuffer, "IncompleteDrawBuffer"},
	variant[FramebufferStatus]{FramebufferIncompleteReadBuffer, "IncompleteReadBuffer"},
	variant[FramebufferStatus]{FramebufferUnsupported, "Unsupported"},
	variant[FramebufferStatus]{FramebufferIncompleteMultisample, "IncompleteMultisample"},
	variant[FramebufferStatus]{FramebufferIncompleteLayerTargets, "IncompleteLayerTargets"},
)

func (s FramebufferStatus) GLenum() uint32 { return uint32(s) }
func (s FramebufferStatus) String() string { return framebufferStatuses.name(s) }

// Complete reports whether the framebuffer can be rendered to.
func (s FramebufferStatus) Complete() bool { return s == FramebufferComplete }

func FramebufferStatusFromGL(v uint32) (FramebufferStatus, error) {
	return framebufferStatuses.fromGL(v)
}

func FramebufferStatusValues() []FramebufferStatus { return framebufferStatuses.all() }

// ClearMask selects the buffers glClear clears.
type ClearMask uint32

const (
	ColourBufferBit  ClearMask = rawgl.ColorBufferBit
	DepthBufferBit   ClearMask = rawgl.DepthBufferBit
	StencilBufferBit ClearMask = rawgl.StencilBufferBit
)

var clearMasks = newFlags("ClearMask",
	variant[ClearMask]{ColourBufferBit, "Colour"},
	variant[ClearMask]{DepthBufferBit, "Depth"},
	variant[ClearMask]{StencilBufferBit, "Stencil"},
)

func (m ClearMask) Union(o ClearMask) ClearMask     { return m | o }
func (m ClearMask) Intersect(o ClearMask) ClearMask { return m & o }
func (m ClearMask) Contains(o ClearMask) bool       { return m&o == o }
func (m ClearMask) Bits() uint32                    { return uint32(m) }
func (m ClearMask) String() string                  { return clearMasks.format(m) }

// ClearMaskFromBits rejects bits without a name.
func ClearMaskFromBits(b uint32) (ClearMask, bool) { return clearMasks.fromBits(b) }
