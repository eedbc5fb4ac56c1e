package image

import (
	"errors"
	"image/color"
	"testing"
)

// pixelAt reads (x, y) straight from the buffer storage.
func pixelAt(b *ImageBuf, x, y int) color.NRGBA {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return color.NRGBA{}
	}
	p := b.data[off : off+BytesPerPixel]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewImageBuf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*4)
			}
			if len(buf.RowBytes(tt.height-1)) != tt.width*4 {
				t.Errorf("len(RowBytes(last)) = %d, want %d", len(buf.RowBytes(tt.height-1)), tt.width*4)
			}
		})
	}
}

func TestImageBuf_SetRGBA(t *testing.T) {
	buf, _ := NewImageBuf(3, 2)

	if err := buf.SetRGBA(2, 1, 10, 20, 30, 40); err != nil {
		t.Fatalf("SetRGBA() error = %v", err)
	}
	if got, want := pixelAt(buf, 2, 1), (color.NRGBA{R: 10, G: 20, B: 30, A: 40}); got != want {
		t.Errorf("pixel (2, 1) = %v, want %v", got, want)
	}
	if got := buf.RowBytes(1)[8:12]; got[3] != 40 {
		t.Errorf("RowBytes(1)[11] = %d, want 40", got[3])
	}

	if off := buf.PixelOffset(2, 1); off != 1*12+2*4 {
		t.Errorf("PixelOffset(2, 1) = %d, want 20", off)
	}
}

func TestImageBuf_OutOfBounds(t *testing.T) {
	buf, _ := NewImageBuf(3, 2)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for _, c := range coords {
		if err := buf.SetRGBA(c[0], c[1], 1, 1, 1, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetRGBA(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if buf.PixelOffset(c[0], c[1]) != -1 {
			t.Errorf("PixelOffset(%d, %d) != -1", c[0], c[1])
		}
	}
	for i, v := range buf.data {
		if v != 0 {
			t.Fatalf("data[%d] = %d after out-of-bounds writes, want 0", i, v)
		}
	}
	if buf.RowBytes(2) != nil || buf.RowBytes(-1) != nil {
		t.Error("RowBytes out of range should be nil")
	}
}
