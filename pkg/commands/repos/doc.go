// Package repos implements the repos command: reporting the git checkouts
// under a root that pass one of the repository checks.
package repos
