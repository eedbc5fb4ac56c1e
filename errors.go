package rounded

import "errors"

// Errors returned by [Round] and [RoundImage]. Use errors.Is to test for
// them; the wrapped cause carries the detail.
var (
	// ErrDecode is returned when the input bytes are not a valid image
	// for the configured codec (bad magic, truncated data, empty input).
	ErrDecode = errors.New("rounded: decode failed")

	// ErrEncode is returned when the rounded image cannot be serialized.
	ErrEncode = errors.New("rounded: encode failed")

	// ErrInvalidGeometry is returned when width or height is not positive,
	// radius is negative, or 2*radius exceeds width or height.
	ErrInvalidGeometry = errors.New("rounded: invalid geometry")
)
