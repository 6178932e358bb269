// Package ascii renders a reduced image as ASCII art suitable for embedding
// as a block of C line comments.
package ascii

import (
	"bufio"
	"image"
	"io"
	"strings"
)

// Ramp is ordered from the densest glyph to the sparsest.
const Ramp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

const prefix = "// "

// Image is an image that can report the brightness of each pixel in the
// range [0, 1].
type Image interface {
	image.Image
	Intensity(x, y int) float64
}

// Glyph returns the character of Ramp for the given intensity.
func Glyph(intensity float64) byte {
	i := int(float64(len(Ramp)-1) * intensity)
	switch {
	case i < 0:
		i = 0
	case i > len(Ramp)-1:
		i = len(Ramp) - 1
	}
	return Ramp[i]
}

// Lines returns one line of glyphs per row of m, without comment prefixes.
func Lines(m Image) []string {
	b := m.Bounds()
	rows := make([]string, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb := new(strings.Builder)
		sb.Grow(b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			sb.WriteByte(Glyph(m.Intensity(x, y)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Render writes m to w as ASCII art, one "// " prefixed line per row.
func Render(w io.Writer, m Image) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(m) {
		bw.WriteString(prefix)
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
