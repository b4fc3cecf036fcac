// Package supported implements the supported command, which manages the
// platforms configuration: listing, checking, exporting, editing and
// resetting it. It also loads the rule set the other commands scan with.
package supported
