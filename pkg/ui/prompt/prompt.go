// Package prompt asks the user to confirm destructive actions
package prompt

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/ui"
)

// Console confirms through an interactive yes/no prompt on the terminal.
// The default answer is no.
type Console struct {
	in *os.File

	// show displays the question and returns the answer
	show func(question string) (bool, error)
}

// NewConsole creates a prompt reading from stdin
func NewConsole() *Console {
	return &Console{
		in: os.Stdin,
		show: func(question string) (bool, error) {
			return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(question)
		},
	}
}

// Confirm asks question. It fails when stdin is not a terminal, since
// nobody could answer.
func (c *Console) Confirm(question string) (bool, error) {
	if !ui.IsTerminal(c.in) {
		return false, errors.New(errors.ErrActionInput, "Exception processing input: stdin is not a terminal, use -y to confirm")
	}
	ok, err := c.show(question)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrActionInput, "Exception processing input")
	}
	return ok, nil
}
