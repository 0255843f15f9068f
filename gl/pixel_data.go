package gl

import rawgl "github.com/tinyrange/glsafe/internal/gl"

// components is the number of values per pixel of format, or zero for
// formats OpenGL rejects.
func (f TextureFormat) components() int64 {
	switch f {
	case FormatRed, FormatRedInteger, FormatStencilIndex, FormatDepthComponent:
		return 1
	case FormatRG, FormatRGInteger, FormatDepthStencil:
		return 2
	case FormatRGB, FormatBGR, FormatRGBInteger, FormatBGRInteger:
		return 3
	case FormatRGBA, FormatBGRA, FormatRGBAInteger, FormatBGRAInteger:
		return 4
	}
	return 0
}

// pixelSize is the size in bytes of one pixel of format and typ. Packed
// types hold a whole pixel in one value.
func pixelSize(format TextureFormat, typ TexturePixelType) int64 {
	n := format.components()
	if n == 0 {
		return 0
	}
	switch typ {
	case PixelUnsignedByte, PixelByte:
		return n
	case PixelUnsignedShort, PixelShort, PixelHalfFloat:
		return 2 * n
	case PixelUnsignedInt, PixelInt, PixelFloat:
		return 4 * n
	case PixelUnsignedByte332, PixelUnsignedByte233Rev:
		return 1
	case PixelUnsignedShort565, PixelUnsignedShort565Rev,
		PixelUnsignedShort4444, PixelUnsignedShort4444Rev,
		PixelUnsignedShort5551, PixelUnsignedShort1555Rev:
		return 2
	case PixelUnsignedInt8888, PixelUnsignedInt8888Rev,
		PixelUnsignedInt1010102, PixelUnsignedInt2101010Rev,
		PixelUnsignedInt248, PixelUnsignedInt10F11F11FRev, PixelUnsignedInt5999Rev:
		return 4
	case PixelFloat32UnsignedInt248Rev:
		return 8
	}
	return 0
}

// imageSize is the number of bytes OpenGL reads or writes for a width by
// height by depth image whose rows start at multiples of alignment. The
// last row is not padded. It is zero when OpenGL rejects the arguments
// itself.
func imageSize(width, height, depth, alignment int32, format TextureFormat, typ TexturePixelType) int64 {
	size := pixelSize(format, typ)
	if size == 0 || width <= 0 || height <= 0 || depth <= 0 {
		return 0
	}
	last := int64(width) * size
	row := last
	if a := int64(alignment); a > 1 {
		row = (row + a - 1) / a * a
	}
	return row*(int64(height)*int64(depth)-1) + last
}

// checkPixels rejects a pixels slice shorter than the image OpenGL will
// transfer. alignment is the pack or unpack alignment query. A nil slice
// addresses a bound pixel buffer and is not checked.
func (c *Context) checkPixels(op string, alignment uint32, width, height, depth int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	if pixels == nil {
		return nil
	}
	need := imageSize(width, height, depth, c.getInteger(alignment), format, typ)
	if int64(len(pixels)) < need {
		return c.fail(&Error{Op: op, Kind: KindPixelDataTooShort, Code: InvalidValue, Value: need})
	}
	return nil
}

func (c *Context) checkPackPixels(op string, width, height int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	return c.checkPixels(op, rawgl.PackAlignment, width, height, 1, format, typ, pixels)
}

func (c *Context) checkUnpackPixels(op string, width, height, depth int32, format TextureFormat, typ TexturePixelType, pixels []byte) error {
	return c.checkPixels(op, rawgl.UnpackAlignment, width, height, depth, format, typ, pixels)
}
