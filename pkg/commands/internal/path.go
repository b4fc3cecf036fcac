package internal

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/filesystem"
)

// ValidatePath checks that path exists and is a directory
func ValidatePath(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrNotFound, "path: \"%s\" - does not exist!", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrNotFound, "path: \"%s\" - can not be accessed", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotDirectory, "path: \"%s\" - is not directory!", path).
			WithDetail("path", path)
	}
	return nil
}

// Displayer renders found paths relative to root, "." being root itself
func Displayer(fs afero.Fs, root string) func(string) string {
	abs, err := filesystem.Abs(fs, root)
	if err != nil {
		abs = root
	}
	return func(path string) string {
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return path
		}
		return rel
	}
}
