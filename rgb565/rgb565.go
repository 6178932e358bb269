/*
Package rgb565 implements a 16-bit RGB565 image and its encoding as a C array
initializer.

Each pixel is stored as 5 bits of red, 6 bits of green and 5 bits of blue
packed into a 16-bit word with red in the most significant bits, which is the
order most TFT display controllers expect. Colors are reduced by dropping the
low bits of each 8-bit channel; there is no rounding or dithering.
*/
package rgb565

import (
	"image"
	"image/color"
)

const (
	maxRed   = 0x1f
	maxGreen = 0x3f
	maxBlue  = 0x1f

	bytesPerPixel = 2
)

// Color is a color with 5 bits of red, 6 bits of green and 5 bits of blue.
type Color struct {
	R, G, B uint8
}

func expand(v uint8, bits uint) uint32 {
	c := uint32(v) << (8 - bits)
	c |= c >> bits
	return c | c<<8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(c.R, 5), expand(c.G, 6), expand(c.B, 5), 0xffff
}

// Value returns c packed as a 16-bit word.
func (c Color) Value() uint16 {
	return uint16(c.R&maxRed)<<11 | uint16(c.G&maxGreen)<<5 | uint16(c.B&maxBlue)
}

// Inverse returns the complement of each channel of c.
func (c Color) Inverse() Color {
	return Color{maxRed - c.R&maxRed, maxGreen - c.G&maxGreen, maxBlue - c.B&maxBlue}
}

// Model converts any color to a Color by truncating each channel.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	// Equivalent to shifting the 8-bit channel right by 3, 2 and 3 bits
	return Color{uint8(r >> 11), uint8(g >> 10), uint8(b >> 11)}
}

// Image is an in-memory image whose At method returns Color values.
type Image struct {
	// Pix holds each pixel as a big-endian 16-bit word
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// New returns a new Image with the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]uint8, bytesPerPixel*r.Dx()*r.Dy()),
		Stride: bytesPerPixel * r.Dx(),
		Rect:   r,
	}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle { return m.Rect }

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model { return Model }

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.RGB565At(x, y)
}

// RGB565At returns the color of the pixel at (x, y).
func (m *Image) RGB565At(x, y int) Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return Color{}
	}
	i := m.PixOffset(x, y)
	v := uint16(m.Pix[i])<<8 | uint16(m.Pix[i+1])
	return Color{uint8(v >> 11 & maxRed), uint8(v >> 5 & maxGreen), uint8(v & maxBlue)}
}

// Set implements the draw.Image interface.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) to c.
func (m *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	v := c.Value()
	m.Pix[i] = uint8(v >> 8)
	m.Pix[i+1] = uint8(v)
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*bytesPerPixel
}

// Invert replaces every channel value c with its maximum minus c.
func (m *Image) Invert() {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			m.SetRGB565(x, y, m.RGB565At(x, y).Inverse())
		}
	}
}

// Intensity returns the brightness of the pixel at (x, y) as the mean of
// each channel normalized by its range, with each channel biased by one.
func (m *Image) Intensity(x, y int) float64 {
	c := m.RGB565At(x, y)
	return ((float64(c.R)+1)/(maxRed+1) +
		(float64(c.G)+1)/(maxGreen+1) +
		(float64(c.B)+1)/(maxBlue+1)) / 3
}
