/*
Package source loads the images that are converted into C source.

Any format registered with the image package can be decoded; GIF, JPEG, PNG,
BMP, TIFF and WebP are registered by this package. Only the first frame of an
animated image is used.
*/
package source

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Source is a decoded image along with a digest identifying its content.
type Source struct {
	Name   string
	Format string
	Image  image.Image
	// Digest is the SHA-1 of the encoded image, extended with the target
	// size if the image has been resized
	Digest string
}

// Load reads and decodes the image file.
func Load(file string) (*Source, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, file)
}

// Decode reads an image from r, recording name as its origin.
func Decode(r io.Reader, name string) (*Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", name)
	}

	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", name)
	}

	return &Source{
		Name:   name,
		Format: format,
		Image:  m,
		Digest: fmt.Sprintf("%X", sha1.Sum(b)),
	}, nil
}

// Resize returns a copy of s scaled to the given size. If either dimension
// is zero it is computed to preserve the aspect ratio. If both are zero s is
// returned unchanged.
func (s *Source) Resize(width, height uint) *Source {
	if width == 0 && height == 0 {
		return s
	}

	m := resize.Resize(width, height, s.Image, resize.Lanczos3)
	b := m.Bounds()

	return &Source{
		Name:   s.Name,
		Format: s.Format,
		Image:  m,
		Digest: fmt.Sprintf("%s@%dx%d", s.Digest, b.Dx(), b.Dy()),
	}
}
