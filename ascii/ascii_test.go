package ascii

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/img2src/mono"
	"github.com/bodgit/img2src/rgb565"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp(t *testing.T) {
	assert.Len(t, Ramp, 70)
}

func TestGlyph(t *testing.T) {
	tables := []struct {
		name      string
		intensity float64
		want      byte
	}{
		{"dark", 0, '$'},
		{"light", 1, ' '},
		{"middle", 0.5, Ramp[34]},
		{"above", 1.01, ' '},
		{"below", -0.5, '$'},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.want, Glyph(table.intensity))
		})
	}
}

func TestRenderMono(t *testing.T) {
	m := mono.New(image.Rect(0, 0, 3, 2))
	m.SetBit(0, 0, 1)
	m.SetBit(2, 1, 1)

	b := new(bytes.Buffer)
	require.NoError(t, Render(b, m))
	assert.Equal(t, "//  $$\n// $$ \n", b.String())
}

func TestRenderRGB565(t *testing.T) {
	m := rgb565.New(image.Rect(0, 0, 2, 1))
	m.Set(0, 0, color.White)

	// Black still has the +1 bias: (1/32 + 1/64 + 1/32) / 3 * 69 = 1.79...
	assert.Equal(t, []string{" " + string(Ramp[1])}, Lines(m))
}
