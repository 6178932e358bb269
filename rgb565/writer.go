package rgb565

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/bodgit/img2src/literal"
)

// Convert returns m as an *Image, reducing colors if necessary. The result
// always has its top-left corner at (0, 0).
func Convert(m image.Image) *Image {
	if pm, ok := m.(*Image); ok && pm.Rect.Min == (image.Point{}) {
		return pm
	}
	b := m.Bounds()
	pm := New(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pm, pm.Rect, m, b.Min, draw.Src)
	return pm
}

// Pack returns the pixels of m in row-major order, two big-endian bytes per
// pixel.
func Pack(m image.Image) []byte {
	pm := Convert(m)
	w, h := pm.Rect.Dx(), pm.Rect.Dy()

	b := make([]byte, 0, bytesPerPixel*w*h)
	for y := 0; y < h; y++ {
		i := pm.PixOffset(0, y)
		b = append(b, pm.Pix[i:i+bytesPerPixel*w]...)
	}
	return b
}

// Encode writes the Image m to w as a comma separated list of 16-bit
// hexadecimal words, one line per row. It returns the number of bytes
// described by the list.
func Encode(w io.Writer, m image.Image) (int, error) {
	pm := Convert(m)
	width, height := pm.Rect.Dx(), pm.Rect.Dy()

	if err := literal.Write(w, width*height, width, func(i int) string {
		return fmt.Sprintf("0x%04X", pm.RGB565At(i%width, i/width).Value())
	}); err != nil {
		return 0, err
	}

	return bytesPerPixel * width * height, nil
}
