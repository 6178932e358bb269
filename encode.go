package img2src

import (
	"image"
	"io"

	"github.com/bodgit/img2src/mono"
	"github.com/bodgit/img2src/rgb565"
)

// Encode writes the array body for the reduced image m to w in the format
// selected by mode and returns the number of bytes it describes.
func Encode(w io.Writer, m image.Image, mode Mode) (int, error) {
	switch mode {
	case RGB565:
		return rgb565.Encode(w, m)
	case MonoVertical:
		return mono.EncodeVertical(w, m)
	case MonoHorizontal:
		return mono.EncodeHorizontal(w, m)
	}
	return 0, ErrUnknownMode
}

// Pack returns the raw bytes for the reduced image m in the format selected
// by mode, in the same order Encode lists them.
func Pack(m image.Image, mode Mode) ([]byte, error) {
	switch mode {
	case RGB565:
		return rgb565.Pack(m), nil
	case MonoVertical:
		return mono.PackVertical(m), nil
	case MonoHorizontal:
		return mono.PackHorizontal(m), nil
	}
	return nil, ErrUnknownMode
}
