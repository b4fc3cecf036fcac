package repos

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// Result is the outcome of a check on one repository. Message is appended
// to the report line when the repository is found.
type Result struct {
	Found   bool
	Message string
}

// Check decides whether a repository is reported. A returned error is
// printed against the repository, which then counts as not found.
type Check func(ctx context.Context, r *Repo) (Result, error)

func found(ok bool) Result {
	return Result{Found: ok}
}

// List reports every repository
func List() Check {
	return func(context.Context, *Repo) (Result, error) {
		return found(true), nil
	}
}

// Nothing reports no repository. Run with an OnOpenError handler it lists
// the repositories that failed to open.
func Nothing() Check {
	return func(context.Context, *Repo) (Result, error) {
		return found(false), nil
	}
}

// Detached reports repositories whose HEAD is not on a branch
func Detached() Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		head, err := Head(r.Repository)
		if err != nil {
			return Result{}, err
		}
		return found(IsDetached(head)), nil
	}
}

// DefaultMainPattern matches the names of main branches, short or full
const DefaultMainPattern = `^(refs/heads/)?(main|master)$`

// Branched reports repositories whose HEAD is not a main branch. A detached
// HEAD counts as branched.
func Branched(main *regexp.Regexp) Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		head, err := Head(r.Repository)
		if err != nil {
			return Result{}, err
		}
		return found(!main.MatchString(head.Name().String())), nil
	}
}

// Unborn reports repositories without any commit
func Unborn() Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		return found(IsUnborn(r.Repository)), nil
	}
}

// Changes reports repositories with uncommitted changes, untracked files
// included
func Changes() Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		n, err := CountChanges(r.Repository)
		if err != nil {
			return Result{}, err
		}
		return Result{Found: n > 0, Message: fmt.Sprintf("changes: %d", n)}, nil
	}
}

// CountChanges counts the files whose worktree or index differs from HEAD
func CountChanges(repo *git.Repository) (int, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrRepoStatus, "")
	}
	status, err := wt.Status()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrRepoStatus, "")
	}

	n := 0
	for _, s := range status {
		if s.Staging != git.Unmodified || s.Worktree != git.Unmodified {
			n++
		}
	}
	return n, nil
}

// Local reports repositories with commits but no remote configured
func Local() Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		remotes, err := r.Remotes()
		if err != nil {
			return Result{}, errors.Wrap(err, errors.ErrRepoRemotes, "")
		}
		return found(len(remotes) == 0 && !IsUnborn(r.Repository)), nil
	}
}

// HasBranch reports repositories with a local branch called name
func HasBranch(name string) Check {
	return func(_ context.Context, r *Repo) (Result, error) {
		ok, err := HasLocalBranch(r.Repository, name)
		return found(ok), err
	}
}

// HasLocalBranch reports whether repo has a local branch called name
func HasLocalBranch(repo *git.Repository, name string) (bool, error) {
	branches, err := repo.Branches()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrRepoBranches, "")
	}

	ok := false
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().Short() == name {
			ok = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return false, errors.Wrap(err, errors.ErrRepoBranches, "")
	}
	return ok, nil
}

// Outdated fetches the remotes and reports repositories with a branch that
// diverges from its upstream in the way filter asks for. A non nil mainOnly
// limits the branches looked at.
func Outdated(fetcher *Fetcher, filter OutdatedFilter, mainOnly *regexp.Regexp) Check {
	return func(ctx context.Context, r *Repo) (Result, error) {
		statuses, err := fetchedStatuses(ctx, fetcher, r, mainOnly)
		if err != nil {
			return Result{}, err
		}
		for _, s := range statuses {
			if filter.Matches(s.Ahead, s.Behind) {
				return found(true), nil
			}
		}
		return found(false), nil
	}
}

// UpToDate fetches the remotes and reports repositories whose branches are
// all level with their upstreams. Branches without upstream are ignored.
func UpToDate(fetcher *Fetcher, mainOnly *regexp.Regexp) Check {
	return func(ctx context.Context, r *Repo) (Result, error) {
		statuses, err := fetchedStatuses(ctx, fetcher, r, mainOnly)
		if err != nil {
			return Result{}, err
		}
		for _, s := range statuses {
			if s.Ahead != 0 || s.Behind != 0 {
				return found(false), nil
			}
		}
		return found(true), nil
	}
}

func fetchedStatuses(ctx context.Context, fetcher *Fetcher, r *Repo, mainOnly *regexp.Regexp) ([]BranchStatus, error) {
	if fetcher != nil {
		if err := fetcher.FetchAll(ctx, r); err != nil {
			return nil, err
		}
	}
	return BranchStatuses(r, mainOnly)
}
