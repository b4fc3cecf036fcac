// Package builds implements the builds command: listing or removing the
// build artifact folders of the selected platforms under a root.
package builds
