package img2src

import (
	"os"

	"github.com/pkg/errors"
)

// WriteFile writes f to the named file, creating it if necessary. The file
// is appended to if appendFile is set, otherwise it is truncated.
func WriteFile(name string, f *Fragment, appendFile bool) (err error) {
	flag := os.O_CREATE | os.O_WRONLY
	if appendFile {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	file, err := os.OpenFile(name, flag, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", name)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = f.WriteTo(file); err != nil {
		return errors.Wrapf(err, "unable to write %s", name)
	}

	return nil
}
