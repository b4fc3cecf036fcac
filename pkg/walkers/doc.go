// Package walkers implements the directory scans behind cleaner's commands.
//
// Each walker is a lazy, pull based sequence (iter.Seq2) over a depth first,
// pre-order traversal of an afero filesystem:
//
//   - BuildsWalker yields build artifact folders and the platform they
//     belong to.
//   - EmptiesWalker yields folders with no file anywhere below them.
//   - ReposWalker yields git checkouts.
//
// Whenever a walker yields a folder it does not descend into it. Breaking
// out of the range loop stops the traversal. An I/O error while traversing
// is yielded once, as a TRAVERSAL error carrying the offending path and the
// root, and ends the sequence.
package walkers
