package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/cleaner/cmd/cleaner"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/ui/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cleaner.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", "Error: "+errors.Message(err)))
		stop()
		os.Exit(1)
	}
}
