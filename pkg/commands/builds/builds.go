package builds

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/selection"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui"
	"github.com/arthur-debert/cleaner/pkg/walkers"
)

// BuildsOptions defines the options for the Builds command
type BuildsOptions struct {
	FS   afero.Fs
	Root string

	// Selection narrows the platforms looked for
	Selection selection.Selection
	Rules     *platforms.RuleSet

	Action internal.Action

	// Confirm asks before each removal; nil removes without asking
	Confirm internal.Confirmer

	Renderer ui.Renderer
}

// Builds lists or removes the build artifact folders under Root
func Builds(opts BuildsOptions) (*types.ScanResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Builds").Str("root", opts.Root).
		Str("action", opts.Action.String()).Stringer("platforms", opts.Selection).
		Msg("Executing command")

	if err := internal.ValidatePath(opts.FS, opts.Root); err != nil {
		return nil, err
	}
	if err := platforms.ValidateSelection(opts.Selection, opts.Rules); err != nil {
		return nil, err
	}

	width := 0
	for _, name := range opts.Rules.Names() {
		width = max(width, len(name))
	}
	rel := internal.Displayer(opts.FS, opts.Root)

	item := func(a walkers.BuildArtifact, display string, removed bool) interface{} {
		return types.ArtifactItem{
			Platform: a.Platform,
			Path:     a.Path,
			Display:  rel(a.Path),
			Width:    width,
			Removed:  removed,
		}
	}
	display := func(a walkers.BuildArtifact) string {
		return types.ArtifactItem{Platform: a.Platform, Display: rel(a.Path), Width: width}.Label()
	}

	var (
		handler internal.Handler[walkers.BuildArtifact]
		remover *internal.Remover[walkers.BuildArtifact]
	)
	switch opts.Action {
	case internal.Remove:
		remover = &internal.Remover[walkers.BuildArtifact]{
			FS:       opts.FS,
			Confirm:  opts.Confirm,
			Renderer: opts.Renderer,
			Path:     func(a walkers.BuildArtifact) string { return a.Path },
			Item:     item,
		}
		handler = remover
	default:
		handler = internal.Lister[walkers.BuildArtifact]{Renderer: opts.Renderer, Item: item}
	}

	walker := walkers.NewBuildsWalker(opts.FS, opts.Root, opts.Selection, opts.Rules)
	found, err := internal.Each(walker.All(), opts.Action, handler, display)
	if err != nil {
		return nil, err
	}

	result := &types.ScanResult{Action: opts.Action.String(), Found: found}
	if remover != nil {
		result.Removed = remover.Removed()
	}

	if found == 0 {
		if err := opts.Renderer.RenderMessage(NotFoundMessage(opts.Selection)); err != nil {
			return nil, err
		}
	}

	log.Info().Str("command", "Builds").Int("found", result.Found).Int("removed", result.Removed).Msg("Command finished")
	return result, nil
}

// NotFoundMessage is printed when a scan finds no artifact
func NotFoundMessage(sel selection.Selection) string {
	return fmt.Sprintf("No build artifacts found for %s%s platform%s",
		selection.Choose(sel, "the ", ""), sel, sel.Pluralize("s"))
}
