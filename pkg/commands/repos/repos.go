package repos

import (
	"context"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/repos"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui"
	"github.com/arthur-debert/cleaner/pkg/walkers"
)

// ReposOptions defines the options for the Repos command
type ReposOptions struct {
	FS   afero.Fs
	Root string
	Kind Kind

	// Filter and OnlyMain tune the outdated and up-to-date checks
	Filter   repos.OutdatedFilter
	OnlyMain bool

	// MainPattern recognizes main branch names
	MainPattern *regexp.Regexp

	// Workers bounds the repositories checked at once
	Workers int

	// Open opens repositories; nil opens them from disk
	Open walkers.Opener

	// Fetcher updates remotes before outdated and up-to-date checks
	Fetcher *repos.Fetcher

	Renderer ui.Renderer
}

// Repos prints a line for each repository under Root passing the check
func Repos(ctx context.Context, opts ReposOptions) (*types.RepoResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Repos").Str("root", opts.Root).Str("check", string(opts.Kind)).
		Int("workers", opts.Workers).Msg("Executing command")

	if err := internal.ValidatePath(opts.FS, opts.Root); err != nil {
		return nil, err
	}

	check, err := opts.check()
	if err != nil {
		return nil, err
	}

	rel := internal.Displayer(opts.FS, opts.Root)
	runOpts := repos.Options{
		Workers:  opts.Workers,
		NotFound: opts.Kind.NotFoundMessage(),
		Display: func(path string) string {
			return filepath.Join(opts.Root, rel(path))
		},
	}
	if opts.Kind == KindErrors {
		runOpts.OnOpenError = repos.PrintOpenError
	}

	walker := walkers.NewReposWalker(opts.FS, opts.Root, opts.Open)
	found, err := repos.Run(ctx, walker.All(), check, ui.LineWriter(opts.Renderer), runOpts)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Repos").Bool("found", found).Msg("Command finished")
	return &types.RepoResult{Check: string(opts.Kind), Found: found}, nil
}

func (opts ReposOptions) check() (repos.Check, error) {
	main := opts.MainPattern
	if main == nil {
		main = regexp.MustCompile(repos.DefaultMainPattern)
	}
	var onlyMain *regexp.Regexp
	if opts.OnlyMain {
		onlyMain = main
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = repos.NewFetcher(nil)
	}

	switch opts.Kind {
	case KindList, "":
		return repos.List(), nil
	case KindErrors:
		return repos.Nothing(), nil
	case KindBranched:
		return repos.Branched(main), nil
	case KindChanges:
		return repos.Changes(), nil
	case KindDetached:
		return repos.Detached(), nil
	case KindInit:
		return repos.Unborn(), nil
	case KindLocal:
		return repos.Local(), nil
	case KindMain, KindMaster:
		return repos.HasBranch(string(opts.Kind)), nil
	case KindOutdated:
		return repos.Outdated(fetcher, opts.Filter, onlyMain), nil
	case KindUpToDate:
		return repos.UpToDate(fetcher, onlyMain), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown repos check %q", opts.Kind)
}
