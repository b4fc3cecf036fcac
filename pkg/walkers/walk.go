package walkers

import (
	stderrors "errors"
	"os"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// errStop unwinds afero.Walk when the consumer stops ranging
var errStop = stderrors.New("walk stopped")

// walkDirs visits every directory under root, root included, in lexical
// pre-order. visit may return filepath.SkipDir to prune or errStop to end
// the walk quietly.
func walkDirs(fsys afero.Fs, root, target string, visit func(path string) error) error {
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return traversalError(err, path, root, target)
		}
		if !info.IsDir() {
			return nil
		}
		return visit(path)
	})
	if stderrors.Is(err, errStop) {
		return nil
	}
	return err
}

func traversalError(err error, path, root, target string) error {
	var cleanerErr *errors.CleanerError
	if stderrors.As(err, &cleanerErr) && cleanerErr.Code == errors.ErrTraversal {
		return err
	}
	return errors.Wrapf(err, errors.ErrTraversal, "Exception while searching %q for %s", root, target).
		WithDetail("path", path).
		WithDetail("root", root)
}
