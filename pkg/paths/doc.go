// Package paths resolves the locations cleaner reads and writes outside of
// the scanned trees: its configuration directory, the platforms file, the
// log/state directory and the git configuration files consulted when
// looking for a credential helper.
//
// Every location honours XDG base directories through adrg/xdg, and can be
// overridden with CLEANER_* environment variables.
package paths
