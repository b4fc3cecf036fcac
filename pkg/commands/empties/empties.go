package empties

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui"
	"github.com/arthur-debert/cleaner/pkg/walkers"
)

// EmptiesOptions defines the options for the Empties command
type EmptiesOptions struct {
	FS   afero.Fs
	Root string

	// ShowHidden includes folders whose name starts with a dot
	ShowHidden bool

	// Rules supplies the artifact folders, which are never searched
	Rules *platforms.RuleSet

	Action  internal.Action
	Confirm internal.Confirmer

	Renderer ui.Renderer
}

// Empties lists or removes the empty folders under Root
func Empties(opts EmptiesOptions) (*types.ScanResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Empties").Str("root", opts.Root).
		Str("action", opts.Action.String()).Bool("hidden", opts.ShowHidden).
		Msg("Executing command")

	if err := internal.ValidatePath(opts.FS, opts.Root); err != nil {
		return nil, err
	}

	var skipped []string
	if opts.Rules != nil {
		skipped = opts.Rules.ArtifactFolders()
	}
	rel := internal.Displayer(opts.FS, opts.Root)

	item := func(path, display string, removed bool) interface{} {
		return types.EmptyItem{Path: path, Display: display, Removed: removed}
	}

	var (
		handler internal.Handler[string]
		remover *internal.Remover[string]
	)
	switch opts.Action {
	case internal.Remove:
		remover = &internal.Remover[string]{
			FS:       opts.FS,
			Confirm:  opts.Confirm,
			Renderer: opts.Renderer,
			Path:     func(path string) string { return path },
			Item:     item,
		}
		handler = remover
	default:
		handler = internal.Lister[string]{Renderer: opts.Renderer, Item: item}
	}

	walker := walkers.NewEmptiesWalker(opts.FS, opts.Root, opts.ShowHidden, skipped)
	found, err := internal.Each(walker.All(), opts.Action, handler, rel)
	if err != nil {
		return nil, err
	}

	result := &types.ScanResult{Action: opts.Action.String(), Found: found}
	if remover != nil {
		result.Removed = remover.Removed()
	}

	if found == 0 {
		if err := opts.Renderer.RenderMessage(NotFoundMessage(opts.Root)); err != nil {
			return nil, err
		}
	}

	log.Info().Str("command", "Empties").Int("found", result.Found).Int("removed", result.Removed).Msg("Command finished")
	return result, nil
}

// NotFoundMessage is printed when root holds no empty folder
func NotFoundMessage(root string) string {
	return fmt.Sprintf("No empties found at \"%s\"", root)
}
