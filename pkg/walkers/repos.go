package walkers

import (
	"iter"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/filesystem"
	"github.com/arthur-debert/cleaner/pkg/logging"
)

// Opener opens the repository rooted at path
type Opener func(path string) (*git.Repository, error)

// RepoEntry is a discovered checkout: the opened repository or the reason it
// could not be opened
type RepoEntry struct {
	Repo *git.Repository
	Err  error
	Path string
}

// ReposWalker finds git checkouts: folders with a .git directory child.
// Checkouts are not searched any further, so nested repositories and
// submodules are not reported.
type ReposWalker struct {
	fs     afero.Fs
	root   string
	open   Opener
	logger zerolog.Logger
}

// NewReposWalker creates a walker over root. A nil open uses git.PlainOpen.
func NewReposWalker(fs afero.Fs, root string, open Opener) *ReposWalker {
	if open == nil {
		open = git.PlainOpen
	}
	return &ReposWalker{
		fs:     fs,
		root:   root,
		open:   open,
		logger: logging.GetLogger("walkers.repos"),
	}
}

// All yields every checkout under the root, the root included
func (w *ReposWalker) All() iter.Seq2[RepoEntry, error] {
	return func(yield func(RepoEntry, error) bool) {
		root, err := filesystem.Abs(w.fs, w.root)
		if err != nil {
			yield(RepoEntry{}, traversalError(err, w.root, w.root, "git repositories"))
			return
		}

		w.logger.Debug().Str("root", root).Msg("Scanning for repositories")

		err = walkDirs(w.fs, root, "git repositories", func(path string) error {
			if !w.isRepo(path) {
				return nil
			}
			repo, err := w.open(path)
			w.logger.Debug().Str("repo", path).Err(err).Msg("Repository found")
			if !yield(RepoEntry{Repo: repo, Err: err, Path: path}, nil) {
				return errStop
			}
			return filepath.SkipDir
		})
		if err != nil {
			yield(RepoEntry{}, err)
		}
	}
}

func (w *ReposWalker) isRepo(dir string) bool {
	info, err := filesystem.Lstat(w.fs, filepath.Join(dir, git.GitDirName))
	return err == nil && info.IsDir()
}
