/*
Package mono implements a 1-bit monochrome image and its encoding as a C array
initializer.

White pixels are stored as 1 and black pixels as 0. Eight pixels are packed
into each byte, either down a column (vertical packing, as used by SSD1306 style
page addressed displays) or across a row (horizontal packing).
*/
package mono

import (
	"image"
	"image/color"
)

const (
	black uint8 = iota
	white
)

// Palette contains the two colors of a monochrome image, indexed by bit value.
var Palette = color.Palette{color.Black, color.White}

// Model maps any color to the nearest of black or white.
var Model color.Model = Palette

// Image is an in-memory image whose At method returns either color.Black or
// color.White.
type Image struct {
	// Pix holds one element per pixel, each either 0 or 1
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// New returns a new all black Image with the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]uint8, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle { return m.Rect }

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model { return Model }

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return Palette[m.BitAt(x, y)]
}

// BitAt returns the bit value of the pixel at (x, y). Pixels outside the
// bounds of the image are black.
func (m *Image) BitAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.Rect)) {
		return black
	}
	return m.Pix[m.PixOffset(x, y)] & white
}

// Set implements the draw.Image interface.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetBit(x, y, uint8(Palette.Index(c)))
}

// SetBit sets the pixel at (x, y) to the lowest bit of b.
func (m *Image) SetBit(x, y int, b uint8) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = b & white
}

// PixOffset returns the index of the element of Pix that corresponds to the
// pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x - m.Rect.Min.X)
}

// Invert flips every pixel.
func (m *Image) Invert() {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			m.SetBit(x, y, white-m.BitAt(x, y))
		}
	}
}

// Intensity returns the bit value of the pixel at (x, y).
func (m *Image) Intensity(x, y int) float64 {
	return float64(m.BitAt(x, y))
}
