package rounded

import (
	"fmt"

	intImage "github.com/gogpu/rounded/internal/image"
)

// applyMask returns a new mask-sized buffer holding the RGB channels of
// src and the alpha of m at each coordinate. Pixels of src outside the
// mask are dropped.
//
// A mask larger than src in either dimension is a caller bug; applyMask
// panics rather than reading outside the decoded image.
func applyMask(src *intImage.ImageBuf, m *Mask) *intImage.ImageBuf {
	w, h := m.Width(), m.Height()
	mustFit(src, w, h)

	dst, err := intImage.NewImageBuf(w, h)
	if err != nil {
		panic(err)
	}

	alpha := m.Data()
	for y := range h {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)
		copy(dstRow, srcRow[:len(dstRow)])
		maskRow := alpha[y*w : (y+1)*w]
		for x, a := range maskRow {
			dstRow[x*intImage.BytesPerPixel+3] = a
		}
	}
	return dst
}

// mustFit panics when a w×h region does not fit inside src.
func mustFit(src *intImage.ImageBuf, w, h int) {
	if w > src.Width() || h > src.Height() {
		panic(fmt.Sprintf("rounded: %dx%d exceeds decoded image %dx%d", w, h, src.Width(), src.Height()))
	}
}
