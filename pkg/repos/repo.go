package repos

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// Repo is an opened checkout under evaluation
type Repo struct {
	*git.Repository

	// Path is the checkout location as found by the walker
	Path string

	out *Output
}

// ReportError prints a problem with this repository without failing the
// check. Unborn branch errors are dropped.
func (r *Repo) ReportError(err error) {
	if r.out != nil {
		r.out.ReportError(r.Path, err)
	}
}

// IsUnborn reports whether HEAD points at a branch that has no commit yet
func IsUnborn(repo *git.Repository) bool {
	_, err := repo.Head()
	if !stderrors.Is(err, plumbing.ErrReferenceNotFound) {
		return false
	}
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	return err == nil && ref.Type() == plumbing.SymbolicReference
}

// Head resolves HEAD. An unborn branch yields an UNBORN_BRANCH error.
func Head(repo *git.Repository) (*plumbing.Reference, error) {
	head, err := repo.Head()
	if err == nil {
		return head, nil
	}
	if IsUnborn(repo) {
		return nil, errors.Wrap(err, errors.ErrUnbornBranch, "")
	}
	return nil, errors.Wrap(err, errors.ErrRepoHead, "")
}

// IsDetached reports whether HEAD points at a commit instead of a branch
func IsDetached(head *plumbing.Reference) bool {
	return head.Name() == plumbing.HEAD
}

// HeadLabel renders HEAD the way report lines show it: "branch: <name>" or,
// when detached, "head: <hash>"
func HeadLabel(head *plumbing.Reference) string {
	if IsDetached(head) {
		return "head: " + head.Hash().String()
	}
	return "branch: " + head.Name().Short()
}
