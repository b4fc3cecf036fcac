// Package types defines the values commands hand to renderers: matches
// found by the scans, repository report lines, platform listings and
// command summaries.
package types
