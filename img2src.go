/*
Package img2src converts images into C source code for embedding in firmware.

An image is reduced either to 16-bit RGB565 color or to 1-bit monochrome,
optionally inverted, and then written as the initializer of an array
declaration. Monochrome pixels are packed eight to a byte either vertically or
horizontally. An ASCII art rendering of the reduced image can be included as
a block of comments above the declaration.
*/
package img2src

import (
	"io"
	"log"

	"github.com/bodgit/img2src/catalog"
	"github.com/bodgit/img2src/source"
)

// Converter converts image files, optionally caching the results in a
// catalog.
type Converter struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

// New returns a Converter. Both arguments may be nil.
func New(c *catalog.Catalog, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		catalog: c,
		logger:  logger,
	}
}

// Convert returns the fragment for src. If the Converter has a catalog, a
// previous result for the same image content and options is reused.
func (c *Converter) Convert(src *source.Source, o *Options) (*Fragment, error) {
	if c.catalog == nil {
		return Convert(src.Image, o)
	}

	key := o.Key()
	e, err := c.catalog.Find(src.Digest, key)
	if err != nil {
		return nil, err
	}
	if e != nil {
		c.logger.Printf("Using cached conversion of \"%s\"\n", src.Name)
		return &Fragment{
			VariableType:      o.VariableType,
			VariableName:      o.VariableName,
			IncludeDimensions: o.IncludeDimensions,
			Width:             e.Width,
			Height:            e.Height,
			Elements:          e.Elements,
			ASCII:             e.ASCII,
			Body:              e.Body,
		}, nil
	}

	f, err := Convert(src.Image, o)
	if err != nil {
		return nil, err
	}

	if err := c.catalog.Add(src.Digest, key, &catalog.Entry{
		Width:    f.Width,
		Height:   f.Height,
		Elements: f.Elements,
		Body:     f.Body,
		ASCII:    f.ASCII,
	}); err != nil {
		return nil, err
	}

	return f, nil
}
