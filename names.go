package img2src

import (
	"path/filepath"
	"regexp"
	"strings"
)

const outputExt = ".c"

var invalidVariableChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

func stem(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultVariableName derives a variable name from the name of the image
// file, dropping the extension and any character other than ASCII letters,
// digits, '-' and '_'.
func DefaultVariableName(file string) string {
	return invalidVariableChars.ReplaceAllString(stem(file), "")
}

// DefaultOutputFilename returns the name of the image file with its
// extension replaced by ".c". The directory is retained only if keepDir is
// set.
func DefaultOutputFilename(file string, keepDir bool) string {
	name := stem(file) + outputExt
	if keepDir {
		return filepath.Join(filepath.Dir(file), name)
	}
	return name
}
