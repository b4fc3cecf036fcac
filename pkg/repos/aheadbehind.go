package repos

import (
	"regexp"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// BranchStatus is a local branch compared with its upstream
type BranchStatus struct {
	Name     string
	Upstream plumbing.ReferenceName
	Ahead    int
	Behind   int
}

// AheadBehind counts the commits reachable from local but not upstream
// (ahead) and from upstream but not local (behind)
func AheadBehind(repo *git.Repository, local, upstream plumbing.Hash) (int, int, error) {
	if local == upstream {
		return 0, 0, nil
	}

	mine, err := ancestors(repo, local)
	if err != nil {
		return 0, 0, err
	}
	theirs, err := ancestors(repo, upstream)
	if err != nil {
		return 0, 0, err
	}

	ahead, behind := 0, 0
	for h := range mine {
		if _, ok := theirs[h]; !ok {
			ahead++
		}
	}
	for h := range theirs {
		if _, ok := mine[h]; !ok {
			behind++
		}
	}
	return ahead, behind, nil
}

func ancestors(repo *git.Repository, tip plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	commit, err := repo.CommitObject(tip)
	if err != nil {
		return nil, err
	}

	seen := map[plumbing.Hash]struct{}{}
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return nil
	})
	return seen, err
}

// UpstreamOf returns the reference a local branch tracks, or "" when the
// branch has no upstream configured
func UpstreamOf(repo *git.Repository, branch string) plumbing.ReferenceName {
	cfg, err := repo.Branch(branch)
	if err != nil || cfg.Remote == "" || cfg.Merge == "" {
		return ""
	}
	if cfg.Remote == "." {
		return cfg.Merge
	}
	return plumbing.NewRemoteReferenceName(cfg.Remote, cfg.Merge.Short())
}

// BranchStatuses compares every local branch having an upstream with it.
// When mainOnly is not nil only branches whose name it matches are
// considered. Branches whose comparison fails are reported on r and skipped.
func BranchStatuses(r *Repo, mainOnly *regexp.Regexp) ([]BranchStatus, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRepoBranches, "Couldn't get branches")
	}

	var out []BranchStatus
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if mainOnly != nil && !mainOnly.MatchString(name) {
			return nil
		}

		upstream := UpstreamOf(r.Repository, name)
		if upstream == "" {
			return nil
		}
		upRef, err := r.Reference(upstream, true)
		if err != nil {
			return nil
		}

		ahead, behind, err := AheadBehind(r.Repository, ref.Hash(), upRef.Hash())
		if err != nil {
			r.ReportError(errors.Wrap(err, errors.ErrRepoBranches, ""))
			return nil
		}

		out = append(out, BranchStatus{Name: name, Upstream: upstream, Ahead: ahead, Behind: behind})
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, errors.Wrap(err, errors.ErrRepoBranches, "Couldn't get branches")
	}
	return out, nil
}
