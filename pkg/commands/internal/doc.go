// Package internal holds what the commands share: path validation, the
// list and remove handlers and the loop that drives them over a scan.
package internal
