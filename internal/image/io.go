package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromStdImage copies a standard library image into a new ImageBuf sized
// to img's bounds. Any color model is converted to non-premultiplied RGBA8.
//
// Models that already store straight alpha (NRGBA, NRGBA64 and paletted
// images with NRGBA entries) are copied channel by channel, so pixels with
// alpha 0 keep their RGB.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range buf.height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+buf.Stride()])
		}
	case *image.NRGBA64:
		// Big-endian samples: the high byte of each channel is the 8-bit value.
		for y := range buf.height {
			for x := range buf.width {
				i := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				p := src.Pix[i : i+8 : i+8]
				_ = buf.SetRGBA(x, y, p[0], p[2], p[4], p[6])
			}
		}
	case *image.Paletted:
		lut := paletteNRGBA(src.Palette)
		for y := range buf.height {
			for x := range buf.width {
				c := lut[src.Pix[src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)]]
				_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
			}
		}
	default:
		// Premultiplied and opaque models carry no colour under alpha 0.
		draw.Draw(buf.asNRGBA(), image.Rect(0, 0, buf.width, buf.height), img, bounds.Min, draw.Src)
	}
	return buf, nil
}

// paletteNRGBA expands pal into a full 256-entry lookup table. Indices past
// the end of pal map to transparent black.
func paletteNRGBA(pal color.Palette) [256]color.NRGBA {
	var lut [256]color.NRGBA
	for i, c := range pal {
		if i == len(lut) {
			break
		}
		switch c := c.(type) {
		case color.NRGBA:
			lut[i] = c
		case color.NRGBA64:
			lut[i] = color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
		default:
			lut[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
	}
	return lut
}

// ToStdImage returns a copy of the buffer as *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(nrgba.Pix, b.data)
	return nrgba
}

// asNRGBA returns an *image.NRGBA view sharing b's storage.
func (b *ImageBuf) asNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
