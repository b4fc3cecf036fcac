// Command cleaner-manpage prints the cleaner(1) man page on stdout for
// packaging. `cleaner man <dir>` writes one page per command instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cleaner/cmd/cleaner"
	"github.com/arthur-debert/cleaner/internal/version"
)

func main() {
	rootCmd := cleaner.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLEANER",
		Section: "1",
		Source:  "cleaner " + version.Version,
		Manual:  "cleaner manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
