package rounded

import (
	"fmt"
	"image"
)

// Alpha values written by the mask builder.
const (
	Transparent uint8 = 0
	Opaque      uint8 = 255
)

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// ValidateGeometry reports whether a width×height rectangle can carry
// corners of the given radius. The error wraps [ErrInvalidGeometry].
func ValidateGeometry(width, height, radius int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidGeometry, width, height)
	case radius < 0:
		return fmt.Errorf("%w: negative radius %d", ErrInvalidGeometry, radius)
	case 2*radius > width || 2*radius > height:
		return fmt.Errorf("%w: radius %d does not fit %dx%d", ErrInvalidGeometry, radius, width, height)
	}
	return nil
}

// NewRoundedRectMask builds a hard-edged mask of a width×height rectangle
// whose corners are quarter-circles of the given radius.
//
// The opaque region is the union of
//   - the band x in [r, w-r), y in [0, h),
//   - the band x in [0, w), y in [r, h-r),
//   - four disks of radius r centred on the pixels inset r from each
//     corner: (r, r), (w-1-r, r), (r, h-1-r), (w-1-r, h-1-r).
//
// Everything else is transparent. A radius of 0 yields a fully opaque mask.
// The far centres sit one pixel left of and above the (w-r, h-r) used by
// imageproc-style builders, which keeps the four corners symmetric.
func NewRoundedRectMask(width, height, radius int) (*Mask, error) {
	if err := ValidateGeometry(width, height, radius); err != nil {
		return nil, err
	}

	m := NewMask(width, height)
	r := radius
	right, bottom := width-1-r, height-1-r

	m.FillRect(r, 0, width-2*r, height, Opaque)
	m.FillRect(0, r, width, height-2*r, Opaque)

	m.FillDisk(r, r, r, Opaque)
	m.FillDisk(right, r, r, Opaque)
	m.FillDisk(r, bottom, r, Opaque)
	m.FillDisk(right, bottom, r, Opaque)

	return m, nil
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// FillRect sets every value in the w×h rectangle with top-left corner
// (x, y). The rectangle is clipped to the mask; non-positive extents are
// a no-op.
func (m *Mask) FillRect(x, y, w, h int, value uint8) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, m.width), min(y+h, m.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := m.data[py*m.width : (py+1)*m.width]
		for px := x0; px < x1; px++ {
			row[px] = value
		}
	}
}

// FillDisk sets every value (x, y) with (x-cx)² + (y-cy)² <= r², clipped
// to the mask. A radius of 0 sets only the centre; negative radii are a
// no-op.
func (m *Mask) FillDisk(cx, cy, r int, value uint8) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		// Half-width of the chord at this row.
		dx := 0
		for (dx+1)*(dx+1)+dy*dy <= rr {
			dx++
		}
		m.FillRect(cx-dx, cy+dy, 2*dx+1, 1, value)
	}
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	clear(m.data)
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice, row-major.
func (m *Mask) Data() []uint8 {
	return m.data
}
