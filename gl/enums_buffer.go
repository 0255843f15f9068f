package gl

import (
	"fmt"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// BufferBindingTarget is a binding point for buffer objects.
type BufferBindingTarget uint32

const (
	ArrayBuffer             BufferBindingTarget = rawgl.ArrayBuffer
	AtomicCounterBuffer     BufferBindingTarget = rawgl.AtomicCounterBuffer
	CopyReadBuffer          BufferBindingTarget = rawgl.CopyReadBuffer
	CopyWriteBuffer         BufferBindingTarget = rawgl.CopyWriteBuffer
	DispatchIndirectBuffer  BufferBindingTarget = rawgl.DispatchIndirectBuffer
	DrawIndirectBuffer      BufferBindingTarget = rawgl.DrawIndirectBuffer
	ElementArrayBuffer      BufferBindingTarget = rawgl.ElementArrayBuffer
	PixelPackBuffer         BufferBindingTarget = rawgl.PixelPackBuffer
	PixelUnpackBuffer       BufferBindingTarget = rawgl.PixelUnpackBuffer
	QueryBuffer             BufferBindingTarget = rawgl.QueryBuffer
	ShaderStorageBuffer     BufferBindingTarget = rawgl.ShaderStorageBuffer
	TextureBuffer           BufferBindingTarget = rawgl.TextureBuffer
	TransformFeedbackBuffer BufferBindingTarget = rawgl.TransformFeedbackBuffer
	UniformBuffer           BufferBindingTarget = rawgl.UniformBuffer
)

var bufferBindingTargets = newEnum("BufferBindingTarget",
	variant[BufferBindingTarget]{ArrayBuffer, "Array"},
	variant[BufferBindingTarget]{AtomicCounterBuffer, "AtomicCounter"},
	variant[BufferBindingTarget]{CopyReadBuffer, "CopyRead"},
	variant[BufferBindingTarget]{CopyWriteBuffer, "CopyWrite"},
	variant[BufferBindingTarget]{DispatchIndirectBuffer, "DispatchIndirect"},
	variant[BufferBindingTarget]{DrawIndirectBuffer, "DrawIndirect"},
	variant[BufferBindingTarget]{ElementArrayBuffer, "ElementArray"},
	variant[BufferBindingTarget]{PixelPackBuffer, "PixelPack"},
	variant[BufferBindingTarget]{PixelUnpackBuffer, "PixelUnpack"},
	variant[BufferBindingTarget]{QueryBuffer, "Query"},
	variant[BufferBindingTarget]{ShaderStorageBuffer, "ShaderStorage"},
	variant[BufferBindingTarget]{TextureBuffer, "Texture"},
	variant[BufferBindingTarget]{TransformFeedbackBuffer, "TransformFeedback"},
	variant[BufferBindingTarget]{UniformBuffer, "Uniform"},
)

func (t BufferBindingTarget) GLenum() uint32 { return uint32(t) }
func (t BufferBindingTarget) String() string { return bufferBindingTargets.name(t) }

// BufferBindingTargetFromGL converts an OpenGL value back to a target.
func BufferBindingTargetFromGL(v uint32) (BufferBindingTarget, error) {
	return bufferBindingTargets.fromGL(v)
}

// BufferBindingTargetValues lists every BufferBindingTarget.
func BufferBindingTargetValues() []BufferBindingTarget { return bufferBindingTargets.all() }

// bindingQuery is the glGetIntegerv name that reports the buffer bound to t.
func (t BufferBindingTarget) bindingQuery() uint32 {
	switch t {
	case ArrayBuffer:
		return rawgl.ArrayBufferBinding
	case AtomicCounterBuffer:
		return rawgl.AtomicCounterBufferBinding
	case CopyReadBuffer:
		return rawgl.CopyReadBufferBinding
	case CopyWriteBuffer:
		return rawgl.CopyWriteBufferBinding
	case DispatchIndirectBuffer:
		return rawgl.DispatchIndirectBufferBinding
	case DrawIndirectBuffer:
		return rawgl.DrawIndirectBufferBinding
	case ElementArrayBuffer:
		return rawgl.ElementArrayBufferBinding
	case PixelPackBuffer:
		return rawgl.PixelPackBufferBinding
	case PixelUnpackBuffer:
		return rawgl.PixelUnpackBufferBinding
	case QueryBuffer:
		return rawgl.QueryBufferBinding
	case ShaderStorageBuffer:
		return rawgl.ShaderStorageBufferBinding
	case TextureBuffer:
		return rawgl.TextureBufferBinding
	case TransformFeedbackBuffer:
		return rawgl.TransformFeedbackBufferBinding
	case UniformBuffer:
		return rawgl.UniformBufferBinding
	}
	return 0
}

// BufferBindingRangeTarget is a target with indexed binding points, usable
// with BindBufferBase and BindBufferRange.
type BufferBindingRangeTarget uint32

const (
	RangeAtomicCounter     BufferBindingRangeTarget = rawgl.AtomicCounterBuffer
	RangeShaderStorage     BufferBindingRangeTarget = rawgl.ShaderStorageBuffer
	RangeTransformFeedback BufferBindingRangeTarget = rawgl.TransformFeedbackBuffer
	RangeUniform           BufferBindingRangeTarget = rawgl.UniformBuffer
)

var bufferBindingRangeTargets = newEnum("BufferBindingRangeTarget",
	variant[BufferBindingRangeTarget]{RangeAtomicCounter, "AtomicCounter"},
	variant[BufferBindingRangeTarget]{RangeShaderStorage, "ShaderStorage"},
	variant[BufferBindingRangeTarget]{RangeTransformFeedback, "TransformFeedback"},
	variant[BufferBindingRangeTarget]{RangeUniform, "Uniform"},
)

func (t BufferBindingRangeTarget) GLenum() uint32 { return uint32(t) }
func (t BufferBindingRangeTarget) String() string { return bufferBindingRangeTargets.name(t) }

// Target returns the general binding target with the same binding point.
func (t BufferBindingRangeTarget) Target() BufferBindingTarget { return BufferBindingTarget(t) }

// BufferBindingRangeTargetFromGL converts an OpenGL value back to a target.
func BufferBindingRangeTargetFromGL(v uint32) (BufferBindingRangeTarget, error) {
	return bufferBindingRangeTargets.fromGL(v)
}

// BufferBindingRangeTargetFrom narrows t to the targets with indexed
// binding points.
func BufferBindingRangeTargetFrom(t BufferBindingTarget) (BufferBindingRangeTarget, error) {
	return bufferBindingRangeTargets.fromGL(uint32(t))
}

// BufferBindingRangeTargetValues lists every BufferBindingRangeTarget.
func BufferBindingRangeTargetValues() []BufferBindingRangeTarget {
	return bufferBindingRangeTargets.all()
}

// maxBindingsQuery is the glGetIntegerv name of the number of indexed
// binding points of t.
func (t BufferBindingRangeTarget) maxBindingsQuery() uint32 {
	switch t {
	case RangeAtomicCounter:
		return rawgl.MaxAtomicCounterBufferBindings
	case RangeShaderStorage:
		return rawgl.MaxShaderStorageBufferBindings
	case RangeTransformFeedback:
		return rawgl.MaxTransformFeedbackSeparateAttribs
	case RangeUniform:
		return rawgl.MaxUniformBufferBindings
	}
	return 0
}

// BufferAccess is the access policy of glMapBuffer.
type BufferAccess uint32

const (
	ReadOnly  BufferAccess = rawgl.ReadOnly
	WriteOnly BufferAccess = rawgl.WriteOnly
	ReadWrite BufferAccess = rawgl.ReadWrite
)

var bufferAccesses = newEnum("BufferAccess",
	variant[BufferAccess]{ReadOnly, "ReadOnly"},
	variant[BufferAccess]{WriteOnly, "WriteOnly"},
	variant[BufferAccess]{ReadWrite, "ReadWrite"},
)

func (a BufferAccess) GLenum() uint32 { return uint32(a) }
func (a BufferAccess) String() string { return bufferAccesses.name(a) }

func BufferAccessFromGL(v uint32) (BufferAccess, error) { return bufferAccesses.fromGL(v) }
func BufferAccessValues() []BufferAccess                { return bufferAccesses.all() }

// BufferUsageFrequency is how often a buffer's contents change.
type BufferUsageFrequency uint8

const (
	UsageStream BufferUsageFrequency = iota
	UsageStatic
	UsageDynamic
)

func (f BufferUsageFrequency) String() string {
	switch f {
	case UsageStream:
		return "Stream"
	case UsageStatic:
		return "Static"
	case UsageDynamic:
		return "Dynamic"
	}
	return fmt.Sprintf("BufferUsageFrequency(%d)", uint8(f))
}

// BufferUsageNature is who reads and writes a buffer's contents.
type BufferUsageNature uint8

const (
	UsageDraw BufferUsageNature = iota
	UsageRead
	UsageCopy
)

func (n BufferUsageNature) String() string {
	switch n {
	case UsageDraw:
		return "Draw"
	case UsageRead:
		return "Read"
	case UsageCopy:
		return "Copy"
	}
	return fmt.Sprintf("BufferUsageNature(%d)", uint8(n))
}

// BufferUsage is the usage hint passed to glBufferData. The zero value is
// StreamDraw; other usages come from the declared values, NewBufferUsage
// or BufferUsageFromGL, so every BufferUsage names one of the nine
// constants.
type BufferUsage struct {
	frequency BufferUsageFrequency
	nature    BufferUsageNature
}

var (
	StreamDraw  = BufferUsage{UsageStream, UsageDraw}
	StreamRead  = BufferUsage{UsageStream, UsageRead}
	StreamCopy  = BufferUsage{UsageStream, UsageCopy}
	StaticDraw  = BufferUsage{UsageStatic, UsageDraw}
	StaticRead  = BufferUsage{UsageStatic, UsageRead}
	StaticCopy  = BufferUsage{UsageStatic, UsageCopy}
	DynamicDraw = BufferUsage{UsageDynamic, UsageDraw}
	DynamicRead = BufferUsage{UsageDynamic, UsageRead}
	DynamicCopy = BufferUsage{UsageDynamic, UsageCopy}
)

var bufferUsageValues = [3][3]uint32{
	UsageStream:  {UsageDraw: rawgl.StreamDraw, UsageRead: rawgl.StreamRead, UsageCopy: rawgl.StreamCopy},
	UsageStatic:  {UsageDraw: rawgl.StaticDraw, UsageRead: rawgl.StaticRead, UsageCopy: rawgl.StaticCopy},
	UsageDynamic: {UsageDraw: rawgl.DynamicDraw, UsageRead: rawgl.DynamicRead, UsageCopy: rawgl.DynamicCopy},
}

var bufferUsages = newEnum("BufferUsage",
	variant[uint32]{rawgl.StreamDraw, "StreamDraw"},
	variant[uint32]{rawgl.StreamRead, "StreamRead"},
	variant[uint32]{rawgl.StreamCopy, "StreamCopy"},
	variant[uint32]{rawgl.StaticDraw, "StaticDraw"},
	variant[uint32]{rawgl.StaticRead, "StaticRead"},
	variant[uint32]{rawgl.StaticCopy, "StaticCopy"},
	variant[uint32]{rawgl.DynamicDraw, "DynamicDraw"},
	variant[uint32]{rawgl.DynamicRead, "DynamicRead"},
	variant[uint32]{rawgl.DynamicCopy, "DynamicCopy"},
)

// NewBufferUsage combines a frequency and a nature. Values outside the
// declared constants are a ConversionFailure.
func NewBufferUsage(f BufferUsageFrequency, n BufferUsageNature) (BufferUsage, error) {
	if f > UsageDynamic {
		return BufferUsage{}, conversionFailure("BufferUsageFrequency", int64(f))
	}
	if n > UsageCopy {
		return BufferUsage{}, conversionFailure("BufferUsageNature", int64(n))
	}
	return BufferUsage{f, n}, nil
}

func (u BufferUsage) Frequency() BufferUsageFrequency { return u.frequency }
func (u BufferUsage) Nature() BufferUsageNature       { return u.nature }

// GLenum returns the OpenGL constant for u.
func (u BufferUsage) GLenum() uint32 { return bufferUsageValues[u.frequency][u.nature] }

func (u BufferUsage) String() string { return u.frequency.String() + u.nature.String() }

// BufferUsageFromGL converts an OpenGL usage constant back to a BufferUsage.
func BufferUsageFromGL(v uint32) (BufferUsage, error) {
	if _, err := bufferUsages.fromGL(v); err != nil {
		return BufferUsage{}, err
	}
	for f := range bufferUsageValues {
		for n, value := range bufferUsageValues[f] {
			if value == v {
				return BufferUsage{BufferUsageFrequency(f), BufferUsageNature(n)}, nil
			}
		}
	}
	return BufferUsage{}, conversionFailure("BufferUsage", int64(v))
}

// BufferUsageValues lists all nine usages.
func BufferUsageValues() []BufferUsage {
	var out []BufferUsage
	for f := UsageStream; f <= UsageDynamic; f++ {
		for n := UsageDraw; n <= UsageCopy; n++ {
			out = append(out, BufferUsage{f, n})
		}
	}
	return out
}

// BufferMapFlags is the access bitfield of glMapBufferRange.
type BufferMapFlags uint32

const (
	MapRead             BufferMapFlags = rawgl.MapReadBit
	MapWrite            BufferMapFlags = rawgl.MapWriteBit
	MapInvalidateRange  BufferMapFlags = rawgl.MapInvalidateRangeBit
	MapInvalidateBuffer BufferMapFlags = rawgl.MapInvalidateBufferBit
	MapFlushExplicit    BufferMapFlags = rawgl.MapFlushExplicitBit
	MapUnsynchronised   BufferMapFlags = rawgl.MapUnsynchronizedBit
	MapPersistent       BufferMapFlags = rawgl.MapPersistentBit
	MapCoherent         BufferMapFlags = rawgl.MapCoherentBit
)

var bufferMapFlags = newFlags("BufferMapFlags",
	variant[BufferMapFlags]{MapRead, "Read"},
	variant[BufferMapFlags]{MapWrite, "Write"},
	variant[BufferMapFlags]{MapInvalidateRange, "InvalidateRange"},
	variant[BufferMapFlags]{MapInvalidateBuffer, "InvalidateBuffer"},
	variant[BufferMapFlags]{MapFlushExplicit, "FlushExplicit"},
	variant[BufferMapFlags]{MapUnsynchronised, "Unsynchronised"},
	variant[BufferMapFlags]{MapPersistent, "Persistent"},
	variant[BufferMapFlags]{MapCoherent, "Coherent"},
)

func (f BufferMapFlags) Union(o BufferMapFlags) BufferMapFlags     { return f | o }
func (f BufferMapFlags) Intersect(o BufferMapFlags) BufferMapFlags { return f & o }
func (f BufferMapFlags) Contains(o BufferMapFlags) bool            { return f&o == o }
func (f BufferMapFlags) Bits() uint32                              { return uint32(f) }
func (f BufferMapFlags) String() string                            { return bufferMapFlags.format(f) }

// BufferMapFlagsFromBits rejects bits without a name.
func BufferMapFlagsFromBits(b uint32) (BufferMapFlags, bool) { return bufferMapFlags.fromBits(b) }

// BufferStorageFlags is the flags bitfield of glBufferStorage.
//
// StorageMapPersistent requires StorageMapRead or StorageMapWrite, and
// StorageMapCoherent requires StorageMapPersistent. OpenGL reports
// violations as InvalidValue.
type BufferStorageFlags uint32

const (
	StorageDynamic       BufferStorageFlags = rawgl.DynamicStorageBit
	StorageMapRead       BufferStorageFlags = rawgl.MapReadBit
	StorageMapWrite      BufferStorageFlags = rawgl.MapWriteBit
	StorageMapPersistent BufferStorageFlags = rawgl.MapPersistentBit
	StorageMapCoherent   BufferStorageFlags = rawgl.MapCoherentBit
	StorageClient        BufferStorageFlags = rawgl.ClientStorageBit
)

var bufferStorageFlags = newFlags("BufferStorageFlags",
	variant[BufferStorageFlags]{StorageDynamic, "Dynamic"},
	variant[BufferStorageFlags]{StorageMapRead, "Read"},
	variant[BufferStorageFlags]{StorageMapWrite, "Write"},
	variant[BufferStorageFlags]{StorageMapPersistent, "Persistent"},
	variant[BufferStorageFlags]{StorageMapCoherent, "Coherent"},
	variant[BufferStorageFlags]{StorageClient, "Client"},
)

func (f BufferStorageFlags) Union(o BufferStorageFlags) BufferStorageFlags     { return f | o }
func (f BufferStorageFlags) Intersect(o BufferStorageFlags) BufferStorageFlags { return f & o }
func (f BufferStorageFlags) Contains(o BufferStorageFlags) bool                { return f&o == o }
func (f BufferStorageFlags) Bits() uint32                                      { return uint32(f) }
func (f BufferStorageFlags) String() string                                    { return bufferStorageFlags.format(f) }

// BufferStorageFlagsFromBits rejects bits without a name.
func BufferStorageFlagsFromBits(b uint32) (BufferStorageFlags, bool) {
	return bufferStorageFlags.fromBits(b)
}
