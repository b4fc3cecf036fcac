// Package empties implements the empties command: listing or removing the
// folders under a root that hold no file at any depth.
package empties
