// Package testutil provides fixtures shared by cleaner's package tests:
// declarative file trees on afero filesystems and small git repositories
// built with go-git.
//
// Usage guidelines:
//   - scans and commands run against NewMemFS trees
//   - repository predicates use real repositories under t.TempDir(), since
//     go-git needs a disk backed .git to be discovered by path
//   - all test data is defined inline
package testutil
