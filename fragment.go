package img2src

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/bodgit/img2src/ascii"
)

// Fragment is the generated C source for one image.
type Fragment struct {
	VariableType      string
	VariableName      string
	IncludeDimensions bool

	// Width and Height are the dimensions of the reduced image, including
	// any padding
	Width  int
	Height int
	// Elements is the number of bytes described by Body
	Elements int
	// ASCII holds the comment lines preceding the declaration, if any
	ASCII string
	Body  string
}

// Convert reduces m according to o and returns the resulting fragment.
func Convert(m image.Image, o *Options) (*Fragment, error) {
	pm, err := Reduce(m, o)
	if err != nil {
		return nil, err
	}

	body := new(strings.Builder)
	n, err := Encode(body, pm, o.Mode)
	if err != nil {
		return nil, err
	}

	f := &Fragment{
		VariableType:      o.VariableType,
		VariableName:      o.VariableName,
		IncludeDimensions: o.IncludeDimensions,
		Width:             pm.Bounds().Dx(),
		Height:            pm.Bounds().Dy(),
		Elements:          n,
		Body:              body.String(),
	}

	if o.ASCIIArt {
		if am, ok := pm.(ascii.Image); ok {
			b := new(strings.Builder)
			if err := ascii.Render(b, am); err != nil {
				return nil, err
			}
			f.ASCII = b.String()
		}
	}

	return f, nil
}

// WriteTo writes the complete fragment to w. It implements the io.WriterTo
// interface.
func (f *Fragment) WriteTo(w io.Writer) (int64, error) {
	b := new(bytes.Buffer)

	b.WriteString(f.ASCII)
	fmt.Fprintf(b, "%s %s[] = {\n", f.VariableType, f.VariableName)
	if f.IncludeDimensions {
		fmt.Fprintf(b, "%d, %d, \n", f.Width, f.Height)
	}
	b.WriteString(f.Body)
	b.WriteString("};\n\n")

	return b.WriteTo(w)
}

func (f *Fragment) String() string {
	b := new(strings.Builder)
	_, _ = f.WriteTo(b)
	return b.String()
}
