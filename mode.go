package img2src

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the target pixel format and, for monochrome images, the order
// in which pixels are packed into bytes.
type Mode int

const (
	// RGB565 converts to 16-bit color, one word per pixel
	RGB565 Mode = iota
	// MonoVertical converts to 1-bit, packing eight pixels down each column
	MonoVertical
	// MonoHorizontal converts to 1-bit, packing eight pixels across each row
	MonoHorizontal
)

// ErrUnknownMode is returned for any Mode value other than the defined ones.
var ErrUnknownMode = errors.New("img2src: unknown conversion mode")

var modeNames = map[Mode]string{
	RGB565:         "rgb565",
	MonoVertical:   "monov",
	MonoHorizontal: "monoh",
}

// ParseMode returns the Mode with the given name. "mono" is accepted as an
// alias for "monov".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "rgb565":
		return RGB565, nil
	case "mono", "monov":
		return MonoVertical, nil
	case "monoh":
		return MonoHorizontal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

func roundUp(n int) int {
	return (n + 7) &^ 7
}

// Size returns the dimensions of the reduced image for a source image of the
// given size. Monochrome modes pad the axis bytes are packed along to a
// multiple of eight.
func (m Mode) Size(width, height int) (int, int) {
	switch m {
	case MonoVertical:
		return width, roundUp(height)
	case MonoHorizontal:
		return roundUp(width), height
	}
	return width, height
}
