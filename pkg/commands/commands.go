// Package commands provides the command implementations behind the cleaner
// CLI.
//
// Each command is implemented in its own subdirectory:
//   - builds/    - Builds command (list or remove build artifacts)
//   - empties/   - Empties command (list or remove empty folders)
//   - repos/     - Repos command (report on git repositories)
//   - supported/ - platforms configuration commands
//   - internal/  - shared action, confirmation and path handling
//
// This file re-exports the command functions and the internal types the CLI
// needs.
package commands

import (
	"context"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/commands/builds"
	"github.com/arthur-debert/cleaner/pkg/commands/empties"
	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/commands/repos"
	"github.com/arthur-debert/cleaner/pkg/commands/supported"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
)

// Action is what builds and empties do with each match
type Action = internal.Action

// Actions
const (
	ActionList   = internal.List
	ActionRemove = internal.Remove
)

// ParseAction reads an action name or alias
func ParseAction(s string) (Action, error) {
	return internal.ParseAction(s)
}

// Confirmer asks the user before each removal
type Confirmer = internal.Confirmer

// ValidatePath checks that root exists and is a directory
func ValidatePath(fs afero.Fs, root string) error {
	return internal.ValidatePath(fs, root)
}

// Builds lists or removes build artifact folders.
type BuildsOptions = builds.BuildsOptions

func Builds(opts BuildsOptions) (*types.ScanResult, error) {
	return builds.Builds(opts)
}

// Empties lists or removes empty folders.
type EmptiesOptions = empties.EmptiesOptions

func Empties(opts EmptiesOptions) (*types.ScanResult, error) {
	return empties.Empties(opts)
}

// Repos reports on the git repositories under a root.
type ReposOptions = repos.ReposOptions

func Repos(ctx context.Context, opts ReposOptions) (*types.RepoResult, error) {
	return repos.Repos(ctx, opts)
}

// RepoKind selects the repos check
type RepoKind = repos.Kind

// Repos checks that take flags
const (
	RepoKindOutdated = repos.KindOutdated
	RepoKindUpToDate = repos.KindUpToDate
)

// RepoKinds lists the repos checks in help order
var RepoKinds = repos.Kinds

// SupportedOptions are shared by the platforms configuration commands.
type SupportedOptions = supported.Options

// LoadRules loads and validates the platforms configuration
func LoadRules(opts SupportedOptions) (*platforms.RuleSet, error) {
	return supported.LoadRules(opts)
}

func SupportedList(opts SupportedOptions) (*types.PlatformListing, error) {
	return supported.List(opts)
}

func SupportedPath(opts SupportedOptions) error {
	return supported.Path(opts)
}

func SupportedCheck(opts SupportedOptions) error {
	return supported.Check(opts)
}

func SupportedReset(opts SupportedOptions, confirm Confirmer) (bool, error) {
	return supported.Reset(opts, confirm)
}

func SupportedExport(opts SupportedOptions, format platforms.Format) error {
	return supported.Export(opts, format)
}

func SupportedEdit(opts SupportedOptions, e platforms.Edit) error {
	return supported.Edit(opts, e)
}
