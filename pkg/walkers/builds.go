package walkers

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/filesystem"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/selection"
)

// BuildArtifact is a folder identified as build output of a platform
type BuildArtifact struct {
	Platform string `json:"platform"`
	Path     string `json:"path"`
}

// BuildsWalker finds build artifact folders of the selected platforms
type BuildsWalker struct {
	fs     afero.Fs
	root   string
	sel    selection.Selection
	rules  *platforms.RuleSet
	logger zerolog.Logger
}

// NewBuildsWalker creates a walker over root. Only platforms matched by sel
// are considered, in rule set order.
func NewBuildsWalker(fs afero.Fs, root string, sel selection.Selection, rules *platforms.RuleSet) *BuildsWalker {
	return &BuildsWalker{
		fs:     fs,
		root:   root,
		sel:    sel,
		rules:  rules,
		logger: logging.GetLogger("walkers.builds"),
	}
}

// All yields every build artifact folder under the root, the root included.
// Artifact folders are not searched any further.
func (w *BuildsWalker) All() iter.Seq2[BuildArtifact, error] {
	return func(yield func(BuildArtifact, error) bool) {
		root, err := filesystem.Abs(w.fs, w.root)
		if err != nil {
			yield(BuildArtifact{}, traversalError(err, w.root, w.root, "build artifacts"))
			return
		}

		w.logger.Debug().Str("root", root).Str("platforms", w.sel.String()).Msg("Scanning for build artifacts")

		err = walkDirs(w.fs, root, "build artifacts", func(path string) error {
			platform, ok := w.match(path)
			if !ok {
				return nil
			}
			w.logger.Debug().Str("platform", platform).Str("path", path).Msg("Build artifact found")
			if !yield(BuildArtifact{Platform: platform, Path: path}, nil) {
				return errStop
			}
			return filepath.SkipDir
		})
		if err != nil {
			yield(BuildArtifact{}, err)
		}
	}
}

// match decides whether dir is an artifact folder. A candidate platform must
// own the folder name and have an associated file among dir's siblings. A
// folder whose parent path already contains its name (target/debug/target)
// is taken as nested output of some other tool and never matches.
func (w *BuildsWalker) match(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", false
	}
	name := strings.ToLower(filepath.Base(dir))
	lowerParent := strings.ToLower(parent)

	var siblings []string
	listed := false

	for _, rule := range w.rules.Rules() {
		if !w.sel.Matches(rule.Name) || !rule.OwnsFolder(name) {
			continue
		}
		if strings.Contains(lowerParent, name) {
			return "", false
		}

		if !listed {
			listed = true
			names, err := filesystem.ChildNames(w.fs, parent)
			if err != nil {
				// an unreadable parent is no evidence
				w.logger.Debug().Err(err).Str("path", parent).Msg("Cannot list parent")
				return "", false
			}
			siblings = names
		}

		if rule.Recognizes(siblings) {
			return rule.Name, true
		}
	}
	return "", false
}
