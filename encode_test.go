package img2src

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, m image.Image, o *Options) (string, int) {
	t.Helper()

	pm, err := Reduce(m, o)
	require.NoError(t, err)

	b := new(bytes.Buffer)
	n, err := Encode(b, pm, o.Mode)
	require.NoError(t, err)
	return b.String(), n
}

func tokens(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n'
	})
}

func TestEncodePrimaries(t *testing.T) {
	tables := []struct {
		name  string
		color color.Color
		want  string
	}{
		{"red", color.RGBA{0xff, 0x00, 0x00, 0xff}, "0xF800\n"},
		{"green", color.RGBA{0x00, 0xff, 0x00, 0xff}, "0x07E0\n"},
		{"blue", color.RGBA{0x00, 0x00, 0xff, 0xff}, "0x001F\n"},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			o := DefaultOptions()
			body, n := encode(t, solid(1, 1, table.color), &o)
			assert.Equal(t, table.want, body)
			assert.Equal(t, 2, n)
		})
	}
}

func TestEncodeCounts(t *testing.T) {
	for _, mode := range []Mode{RGB565, MonoVertical, MonoHorizontal} {
		for _, size := range []image.Point{{1, 1}, {3, 5}, {8, 8}, {10, 3}, {17, 9}} {
			o := DefaultOptions()
			o.Mode = mode

			pm, err := Reduce(solid(size.X, size.Y, color.White), &o)
			require.NoError(t, err)
			w, h := pm.Bounds().Dx(), pm.Bounds().Dy()

			b := new(bytes.Buffer)
			n, err := Encode(b, pm, mode)
			require.NoError(t, err)

			body := b.String()
			assert.False(t, strings.HasSuffix(strings.TrimRight(body, "\n"), ","), "%s %v", mode, size)
			assert.False(t, strings.HasSuffix(body, ", \n"), "%s %v", mode, size)

			switch mode {
			case RGB565:
				assert.Equal(t, 2*w*h, n)
				assert.Len(t, tokens(body), w*h)
				assert.Equal(t, h, strings.Count(body, "\n"))
			case MonoVertical:
				assert.Equal(t, w*h/8, n)
				assert.Len(t, tokens(body), n)
				assert.Equal(t, h/8, strings.Count(body, "\n"))
			case MonoHorizontal:
				assert.Equal(t, w*h/8, n)
				assert.Len(t, tokens(body), n)
				assert.Equal(t, h, strings.Count(body, "\n"))
			}
		}
	}
}

func TestEncodeMonoVerticalWhite(t *testing.T) {
	o := DefaultOptions()
	o.Mode = MonoVertical

	body, n := encode(t, solid(8, 8, color.White), &o)
	assert.Equal(t, 8, n)
	assert.Equal(t, "0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF\n", body)
}

func TestEncodeMonoHorizontalAlternating(t *testing.T) {
	src := solid(8, 1, color.Black)
	for x := 0; x < 8; x += 2 {
		src.Set(x, 0, color.White)
	}

	o := DefaultOptions()
	o.Mode = MonoHorizontal

	body, n := encode(t, src, &o)
	assert.Equal(t, 1, n)
	assert.Equal(t, "B10101010\n", body)
}

func TestEncodeMonoHorizontalRemainder(t *testing.T) {
	src := solid(10, 1, color.White)
	src.Set(8, 0, color.Black)
	src.Set(9, 0, color.Black)

	o := DefaultOptions()
	o.Mode = MonoHorizontal
	o.Background = color.White

	// The padding is white, only the two trailing source columns are black
	body, n := encode(t, src, &o)
	assert.Equal(t, 2, n)
	assert.Equal(t, "B11111111, B00111111\n", body)

	o.Background = color.Black
	body, _ = encode(t, src, &o)
	assert.Equal(t, "B11111111, B00000000\n", body)
}

func TestInvertInvolution(t *testing.T) {
	src := solid(4, 4, color.RGBA{0x40, 0x80, 0xc0, 0xff})
	src.Set(1, 2, color.RGBA{0xff, 0x00, 0x7f, 0xff})

	for _, mode := range []Mode{RGB565, MonoVertical, MonoHorizontal} {
		o := DefaultOptions()
		o.Mode = mode
		plain, err := Reduce(src, &o)
		require.NoError(t, err)

		o.Invert = true
		inverted, err := Reduce(src, &o)
		require.NoError(t, err)
		inverter, ok := inverted.(interface{ Invert() })
		require.True(t, ok)
		inverter.Invert()

		a, err := Pack(plain, mode)
		require.NoError(t, err)
		b, err := Pack(inverted, mode)
		require.NoError(t, err)
		assert.Equal(t, a, b, mode.String())
	}
}

func TestEncodeUnknownMode(t *testing.T) {
	o := DefaultOptions()
	pm, err := Reduce(solid(1, 1, color.White), &o)
	require.NoError(t, err)

	_, err = Encode(new(bytes.Buffer), pm, Mode(-1))
	assert.Equal(t, ErrUnknownMode, err)

	_, err = Pack(pm, Mode(3))
	assert.Equal(t, ErrUnknownMode, err)
}

func TestPack(t *testing.T) {
	src := solid(2, 1, color.RGBA{0xff, 0x00, 0x00, 0xff})

	o := DefaultOptions()
	pm, err := Reduce(src, &o)
	require.NoError(t, err)
	b, err := Pack(pm, RGB565)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf8, 0x00, 0xf8, 0x00}, b)
}
