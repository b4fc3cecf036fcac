// Package repos evaluates git checkouts found by walkers.ReposWalker.
//
// Every repos subcommand is a Check: a predicate over one repository that
// says whether the repository should be listed and, optionally, a short note
// to print next to it. Run evaluates a Check over every discovered
// repository in parallel and prints one line per listed repository:
//
//	<path> - branch: <name>[; <note>]
//	<path> - head: <hash>
//
// Errors met while evaluating a repository are printed for that repository
// only and the scan goes on. A repository without commits (an unborn
// branch) is never reported as an error.
//
// The outdated and up-to-date checks fetch every remote first, resolving
// credentials through the user's git credential helper.
package repos
