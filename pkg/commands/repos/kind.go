package repos

import (
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// Kind selects the check the repos command runs
type Kind string

// Checks offered by the repos command
const (
	KindList     Kind = "list"
	KindBranched Kind = "branched"
	KindChanges  Kind = "changes"
	KindDetached Kind = "detached"
	KindErrors   Kind = "error"
	KindInit     Kind = "init"
	KindLocal    Kind = "local"
	KindMain     Kind = "main"
	KindMaster   Kind = "master"
	KindOutdated Kind = "outdated"
	KindUpToDate Kind = "up-to-date"
)

// Kinds lists every check with its aliases, in help order
var Kinds = []struct {
	Kind    Kind
	Aliases []string
	Short   string
}{
	{KindBranched, []string{"br"}, "List repos that are not on main or master"},
	{KindChanges, []string{"chg"}, "List repos with uncommitted changes"},
	{KindDetached, []string{"de"}, "List repos with a detached HEAD"},
	{KindErrors, []string{"err", "errors"}, "List repos that could not be opened"},
	{KindInit, []string{"unborn", "ub", "i"}, "List repos without any commit"},
	{KindList, []string{"ls"}, "List all repos"},
	{KindLocal, []string{"lcl"}, "List repos without remotes"},
	{KindMain, []string{"mn"}, "List repos with a main branch"},
	{KindMaster, []string{"ms"}, "List repos with a master branch"},
	{KindOutdated, []string{"od"}, "List repos with branches out of sync with their upstream"},
	{KindUpToDate, []string{"utd", "synced"}, "List repos whose branches are in sync with their upstream"},
}

// ParseKind reads a check name or alias
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == string(k.Kind) {
			return k.Kind, nil
		}
		for _, alias := range k.Aliases {
			if s == alias {
				return k.Kind, nil
			}
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown repos check %q", s)
}

// NotFoundMessage is printed when no repository passes the check
func (k Kind) NotFoundMessage() string {
	switch k {
	case KindBranched:
		return "Did not find any repos that are in branch"
	case KindChanges:
		return "Did not find any repos with uncommitted changes"
	case KindDetached:
		return "Did not find any detached repos"
	case KindErrors:
		return "Did not find any repos with errors"
	case KindInit:
		return "Did not find any init only repos"
	case KindLocal:
		return "Did not find any repos with out remotes"
	case KindMain, KindMaster:
		return "Did not find any repos with a \"" + string(k) + "\" branch"
	case KindOutdated:
		return "Did not find any outdated repos"
	case KindUpToDate:
		return "Did not find any up-to-date repos"
	default:
		return "Did not find any repos"
	}
}
