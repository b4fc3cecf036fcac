package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var signature = &object.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(1700000000, 0)}

// InitRepo creates an empty repository at dir whose HEAD points at
// refs/heads/main. Nothing is committed, so the branch is unborn.
func InitRepo(t testing.TB, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	if err != nil {
		t.Fatalf("Failed to init repository at %s: %v", dir, err)
	}
	return repo
}

// CommitFile writes name with content in the repository worktree, stages
// it and commits. It returns the new commit hash.
func CommitFile(t testing.TB, repo *git.Repository, name, content string) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	path := filepath.Join(wt.Filesystem.Root(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Failed to stage %s: %v", name, err)
	}
	hash, err := wt.Commit("update "+name, &git.CommitOptions{Author: signature})
	if err != nil {
		t.Fatalf("Failed to commit %s: %v", name, err)
	}
	return hash
}

// Checkout switches the worktree to branch, creating it when create is set
func Checkout(t testing.TB, repo *git.Repository, branch string, create bool) {
	t.Helper()
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	err = wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(branch), Create: create})
	if err != nil {
		t.Fatalf("Failed to checkout %s: %v", branch, err)
	}
}

// Detach points HEAD directly at hash
func Detach(t testing.TB, repo *git.Repository, hash plumbing.Hash) {
	t.Helper()
	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)); err != nil {
		t.Fatalf("Failed to detach HEAD: %v", err)
	}
}

// AddRemote registers a remote called name fetching from url
func AddRemote(t testing.TB, repo *git.Repository, name, url string) {
	t.Helper()
	_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	if err != nil {
		t.Fatalf("Failed to add remote %s: %v", name, err)
	}
}

// Track makes branch track remote/branch. It sets the remote tracking ref
// to hash, as a fetch would have done.
func Track(t testing.TB, repo *git.Repository, branch, remote string, hash plumbing.Hash) {
	t.Helper()
	err := repo.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		t.Fatalf("Failed to configure branch %s: %v", branch, err)
	}
	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, branch), hash)
	if err := repo.Storer.SetReference(ref); err != nil {
		t.Fatalf("Failed to set %s: %v", ref.Name(), err)
	}
}

// Clone clones the repository at src into dst
func Clone(t testing.TB, src, dst string) *git.Repository {
	t.Helper()
	repo, err := git.PlainClone(dst, false, &git.CloneOptions{URL: src})
	if err != nil {
		t.Fatalf("Failed to clone %s: %v", src, err)
	}
	return repo
}
