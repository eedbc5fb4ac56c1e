package rounded

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// errEmptyInput is wrapped into ErrDecode for zero-length input.
var errEmptyInput = errors.New("empty input")

// Codec converts between encoded bytes and decoded images.
//
// Decode must return an image with the actual encoded dimensions; the
// rounding algorithm does not depend on the format.
type Codec interface {
	// Name identifies the format in log output.
	Name() string

	// Decode parses one encoded image.
	Decode(data []byte) (image.Image, error)

	// Encode serializes img to w.
	Encode(w io.Writer, img image.Image) error
}

// PNGCodec is the default [Codec]. The zero value uses
// png.DefaultCompression.
type PNGCodec struct {
	CompressionLevel png.CompressionLevel
}

// Name returns "png".
func (PNGCodec) Name() string { return "png" }

// Decode decodes PNG data.
func (PNGCodec) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errEmptyInput
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// Encode writes img as PNG.
func (c PNGCodec) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: c.CompressionLevel}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
