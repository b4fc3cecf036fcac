// Package filesystem wraps spf13/afero so that every scan and removal can
// run against the real disk in production and an in-memory tree in tests.
package filesystem
