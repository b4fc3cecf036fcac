package walkers

import (
	stderrors "errors"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/filesystem"
	"github.com/arthur-debert/cleaner/pkg/logging"
)

// GitDir is never reported nor searched by the empties scan
const GitDir = ".git"

// EmptiesWalker finds folders that hold no file at any depth
type EmptiesWalker struct {
	fs         afero.Fs
	root       string
	showHidden bool
	skipped    map[string]struct{}
	logger     zerolog.Logger
}

// NewEmptiesWalker creates a walker over root. Folders named in skipped
// (ignoring case), usually every platform's artifact folder, are left alone
// together with their content. Hidden folders are only reported when
// showHidden is set.
func NewEmptiesWalker(fs afero.Fs, root string, showHidden bool, skipped []string) *EmptiesWalker {
	set := make(map[string]struct{}, len(skipped))
	for _, s := range skipped {
		set[strings.ToLower(s)] = struct{}{}
	}
	return &EmptiesWalker{
		fs:         fs,
		root:       root,
		showHidden: showHidden,
		skipped:    set,
		logger:     logging.GetLogger("walkers.empties"),
	}
}

var errHasFile = stderrors.New("folder has a file")

// All yields the outermost empty folders under the root. The root itself is
// yielded when it is empty; the hidden, .git and skip list rules only apply
// below it.
func (w *EmptiesWalker) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		root, err := filesystem.Abs(w.fs, w.root)
		if err != nil {
			yield("", traversalError(err, w.root, w.root, "empties"))
			return
		}

		w.logger.Debug().Str("root", root).Bool("hidden", w.showHidden).Msg("Scanning for empties")

		err = walkDirs(w.fs, root, "empties", func(path string) error {
			hidden := false
			if path != root {
				name := filepath.Base(path)
				hidden = strings.HasPrefix(name, ".")
				if name == GitDir || (hidden && !w.showHidden) {
					return filepath.SkipDir
				}
				if _, ok := w.skipped[strings.ToLower(name)]; ok {
					return filepath.SkipDir
				}
			}

			empty, err := w.isEmpty(path, root)
			if err != nil {
				return err
			}
			if empty {
				w.logger.Debug().Str("path", path).Msg("Empty folder found")
				if !yield(path, nil) {
					return errStop
				}
				return filepath.SkipDir
			}
			if hidden {
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// isEmpty reports whether dir has nothing but folders below it. Symlinks and
// other special entries count as content.
func (w *EmptiesWalker) isEmpty(dir, root string) (bool, error) {
	err := afero.Walk(w.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return traversalError(err, path, root, "empties")
		}
		if !info.IsDir() {
			return errHasFile
		}
		return nil
	})
	if stderrors.Is(err, errHasFile) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
