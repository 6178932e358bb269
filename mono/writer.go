package mono

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/bodgit/img2src/literal"
)

const bitsPerByte = 8

// Convert returns m as an *Image, mapping every pixel to black or white. The
// result always has its top-left corner at (0, 0).
func Convert(m image.Image) *Image {
	if pm, ok := m.(*Image); ok && pm.Rect.Min == (image.Point{}) {
		return pm
	}
	b := m.Bounds()
	pm := New(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pm, pm.Rect, m, b.Min, draw.Src)
	return pm
}

// PackVertical packs m into bytes holding eight vertically adjacent pixels
// each, with the topmost pixel in the least significant bit. Bytes are
// ordered column by column within each band of eight rows. Rows beyond the
// bottom of the image contribute zero bits.
func PackVertical(m image.Image) []byte {
	pm := Convert(m)
	w, h := pm.Rect.Dx(), pm.Rect.Dy()

	b := make([]byte, 0, w*((h+bitsPerByte-1)/bitsPerByte))
	for y := 0; y < h; y += bitsPerByte {
		for x := 0; x < w; x++ {
			var v byte
			for i := 0; i < bitsPerByte && y+i < h; i++ {
				v |= pm.BitAt(x, y+i) << i
			}
			b = append(b, v)
		}
	}
	return b
}

// PackHorizontal packs m into bytes holding eight horizontally adjacent
// pixels each, with the leftmost pixel in the most significant bit. Columns
// beyond the right edge of the image contribute zero bits.
func PackHorizontal(m image.Image) []byte {
	pm := Convert(m)
	w, h := pm.Rect.Dx(), pm.Rect.Dy()

	b := make([]byte, 0, h*((w+bitsPerByte-1)/bitsPerByte))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x += bitsPerByte {
			var v byte
			for i := 0; i < bitsPerByte && x+i < w; i++ {
				v |= pm.BitAt(x+i, y) << (bitsPerByte - 1 - i)
			}
			b = append(b, v)
		}
	}
	return b
}

// EncodeVertical writes m to w as vertically packed hexadecimal bytes, one
// line per band of eight rows. It returns the number of bytes written to
// the list.
func EncodeVertical(w io.Writer, m image.Image) (int, error) {
	b := PackVertical(m)
	if err := literal.Write(w, len(b), m.Bounds().Dx(), func(i int) string {
		return fmt.Sprintf("0x%02X", b[i])
	}); err != nil {
		return 0, err
	}
	return len(b), nil
}

// EncodeHorizontal writes m to w as horizontally packed binary literals of
// the form B01101001, one line per row. It returns the number of bytes
// written to the list.
func EncodeHorizontal(w io.Writer, m image.Image) (int, error) {
	b := PackHorizontal(m)
	perLine := (m.Bounds().Dx() + bitsPerByte - 1) / bitsPerByte
	if err := literal.Write(w, len(b), perLine, func(i int) string {
		return fmt.Sprintf("B%08b", b[i])
	}); err != nil {
		return 0, err
	}
	return len(b), nil
}
