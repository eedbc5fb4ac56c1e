package rounded

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	intImage "github.com/gogpu/rounded/internal/image"
)

// AddRoundedCorners is the host-facing entry point. It decodes data,
// clips its corners to radius and returns the re-encoded image.
//
// Any failure (invalid geometry, undecodable input, encoding error) is
// logged and reported as an empty, non-nil slice; callers cannot tell the
// kinds apart without the log. Use [Round] to get the error.
//
// width and height must not exceed the decoded image's size. If they do,
// AddRoundedCorners panics instead of reading past the pixel data.
func AddRoundedCorners(data []byte, width, height, radius uint32, opts ...Option) []byte {
	out, err := Round(data, int(width), int(height), int(radius), opts...)
	if err != nil {
		return []byte{}
	}
	return out
}

// Round decodes data, replaces its alpha channel with a rounded-rectangle
// mask of the given radius and encodes the result.
//
// The output is width×height, taken from the top-left of the decoded
// image. Errors wrap [ErrInvalidGeometry], [ErrDecode] or [ErrEncode].
// Like [AddRoundedCorners], Round panics when width or height exceed the
// decoded image.
func Round(data []byte, width, height, radius int, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	log := o.logger

	log.Info("received image data", "len", len(data))
	log.Info("image dimensions", "width", width, "height", height)

	if err := ValidateGeometry(width, height, radius); err != nil {
		log.Error("invalid geometry", "radius", radius, "err", err)
		return nil, err
	}

	img, err := o.codec.Decode(data)
	if err != nil {
		log.Error("failed to load image", "codec", o.codec.Name(), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out, err := roundStd(img, width, height, radius, log)
	if err != nil {
		return nil, err
	}
	log.Info("image processed", "width", out.Bounds().Dx(), "height", out.Bounds().Dy())

	var buf bytes.Buffer
	if err := o.codec.Encode(&buf, out); err != nil {
		log.Error("failed to write image", "codec", o.codec.Name(), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	log.Info("image written", "len", buf.Len())

	return buf.Bytes(), nil
}

// RoundImage applies the rounded-corner mask to an already decoded image
// and returns the width×height result. src may use any color model; it is
// converted to non-premultiplied RGBA first and is not modified.
//
// Errors wrap [ErrInvalidGeometry] or [ErrDecode] (for an empty src).
// RoundImage panics when width or height exceed src's bounds.
func RoundImage(src image.Image, width, height, radius int, opts ...Option) (*image.NRGBA, error) {
	o := newOptions(opts)
	if err := ValidateGeometry(width, height, radius); err != nil {
		o.logger.Error("invalid geometry", "radius", radius, "err", err)
		return nil, err
	}
	return roundStd(src, width, height, radius, o.logger)
}

// roundStd runs mask build and composite over a decoded image. Geometry
// must already be validated.
func roundStd(img image.Image, width, height, radius int, log *slog.Logger) (*image.NRGBA, error) {
	src, err := intImage.FromStdImage(img)
	if err != nil {
		log.Error("failed to load image", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	log.Debug("image decoded", "width", src.Width(), "height", src.Height())
	// Before the mask: width×height may be far larger than src.
	mustFit(src, width, height)

	mask, err := NewRoundedRectMask(width, height, radius)
	if err != nil {
		return nil, err
	}

	return applyMask(src, mask).ToStdImage(), nil
}
