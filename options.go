package img2src

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const defaultVariableType = "const unsigned short PROGMEM"

// Options controls a single conversion.
type Options struct {
	Mode Mode
	// Background fills any padding and shows through transparent pixels
	Background        color.Color
	Invert            bool
	IncludeDimensions bool
	ASCIIArt          bool
	// Adaptive picks the monochrome threshold from the image content
	// rather than using the midpoint between black and white
	Adaptive     bool
	VariableName string
	VariableType string
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		Mode:         RGB565,
		Background:   color.Black,
		VariableType: defaultVariableType,
	}
}

func (o *Options) background() color.Color {
	if o.Background == nil {
		return color.Black
	}
	return o.Background
}

// Key returns a string identifying every option that affects the encoded
// pixel data or the ASCII art.
func (o *Options) Key() string {
	r, g, b, a := o.background().RGBA()
	return fmt.Sprintf("%s:%04x%04x%04x%04x:%t:%t:%t", o.Mode, r, g, b, a, o.Invert, o.Adaptive, o.ASCIIArt)
}

// Preset is a bundle of options suited to a particular target.
type Preset int

const (
	// PresetArduboy suits the Arduboy and other SSD1306 based boards
	PresetArduboy Preset = iota + 1
	// PresetCOS suits 16-bit color displays
	PresetCOS
	// PresetCOSMono suits horizontally addressed monochrome displays
	PresetCOSMono
)

var errUnknownPreset = errors.New("img2src: unknown preset")

var presetNames = map[string]Preset{
	"arduboy": PresetArduboy,
	"cos":     PresetCOS,
	"cosmono": PresetCOSMono,
}

// ParsePreset returns the Preset with the given name.
func ParsePreset(s string) (Preset, error) {
	if p, ok := presetNames[strings.ToLower(s)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownPreset, s)
}

// ApplyPreset overwrites the options covered by p. The variable name is left
// untouched.
func (o *Options) ApplyPreset(p Preset) {
	switch p {
	case PresetArduboy:
		o.Mode = MonoVertical
		o.VariableType = "const unsigned char PROGMEM"
		o.IncludeDimensions = true
		o.Background = color.Black
	case PresetCOS:
		o.Mode = RGB565
		o.VariableType = "const unsigned short"
		o.IncludeDimensions = true
	case PresetCOSMono:
		o.Mode = MonoHorizontal
		o.VariableType = "const unsigned char"
		o.IncludeDimensions = true
	}
}

// ParseColor parses a color given either as "#rrggbb" or as an integer
// 0xRRGGBB in decimal, hexadecimal ("0x" prefix) or octal ("0" prefix).
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("img2src: invalid color %q", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 0xff}, nil
	}

	v, err := strconv.ParseUint(s, 0, 24)
	if err != nil {
		return nil, fmt.Errorf("img2src: invalid color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
