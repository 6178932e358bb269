package img2src

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/img2src/mono"
	"github.com/bodgit/img2src/rgb565"
	"github.com/ericpauley/go-quantize/quantize"
)

// Reduce returns a copy of m converted to the pixel format selected by
// o.Mode. The result is padded as described by Mode.Size with the
// background color, which also shows through any transparent pixels of m.
// Colors are inverted after reduction if o.Invert is set.
//
// The result is either an *rgb565.Image or a *mono.Image with its top-left
// corner at (0, 0).
func Reduce(m image.Image, o *Options) (draw.Image, error) {
	if !o.Mode.valid() {
		return nil, ErrUnknownMode
	}

	b := m.Bounds()
	w, h := o.Mode.Size(b.Dx(), b.Dy())
	r := image.Rect(0, 0, w, h)

	canvas := image.NewRGBA(r)
	draw.Draw(canvas, r, image.NewUniform(o.background()), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, b.Dx(), b.Dy()), m, b.Min, draw.Over)

	switch o.Mode {
	case MonoVertical, MonoHorizontal:
		model := mono.Model
		if o.Adaptive {
			model = adaptiveModel(canvas)
		}

		pm := mono.New(r)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pm.Set(x, y, model.Convert(canvas.At(x, y)))
			}
		}
		if o.Invert {
			pm.Invert()
		}
		return pm, nil
	default:
		pm := rgb565.New(r)
		draw.Draw(pm, r, canvas, image.Point{}, draw.Src)
		if o.Invert {
			pm.Invert()
		}
		return pm, nil
	}
}

func luminance(c color.Color) uint16 {
	return color.Gray16Model.Convert(c).(color.Gray16).Y
}

// adaptiveModel returns a model that splits colors at the midpoint between
// the luminances of the two dominant colors of m. If m has a single dominant
// luminance the fixed black and white model is returned.
func adaptiveModel(m image.Image) color.Model {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, 2), m)
	if len(p) < 2 {
		return mono.Model
	}

	lo, hi := luminance(p[0]), luminance(p[1])
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return mono.Model
	}
	threshold := uint32(lo) + (uint32(hi)-uint32(lo))/2

	return color.ModelFunc(func(c color.Color) color.Color {
		if uint32(luminance(c)) > threshold {
			return color.White
		}
		return color.Black
	})
}
