package internal

import (
	"iter"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/ui"
)

// Action is what the builds and empties commands do with each match
type Action int

const (
	// List prints each match
	List Action = iota
	// Remove deletes each match, after confirmation
	Remove
)

// ParseAction reads "list"/"ls" or "remove"/"rm"
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "", "list", "ls":
		return List, nil
	case "remove", "rm":
		return Remove, nil
	}
	return List, errors.Newf(errors.ErrInvalidInput, "unknown action %q", s)
}

func (a Action) String() string {
	if a == Remove {
		return "remove"
	}
	return "list"
}

// Gerund names the action in progress ("listing", "removing")
func (a Action) Gerund() string {
	if a == Remove {
		return "removing"
	}
	return "listing"
}

// Confirmer asks the user whether to go ahead
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Handler acts on one match. display is the match as shown to the user.
type Handler[T any] interface {
	Handle(match T, display string) error
}

// Lister renders every match
type Lister[T any] struct {
	Renderer ui.Renderer

	// Item builds the value rendered for a match
	Item func(match T, display string, removed bool) interface{}
}

// Handle renders match
func (l Lister[T]) Handle(match T, display string) error {
	return l.Renderer.RenderResult(l.Item(match, display, false))
}

// Remover deletes the folder of every match the user confirms. A nil
// Confirm removes without asking and reports each removal; confirmed
// removals are not reported since the user just saw the question.
type Remover[T any] struct {
	FS       afero.Fs
	Confirm  Confirmer
	Renderer ui.Renderer

	// Path is the folder to delete for a match
	Path func(match T) string
	Item func(match T, display string, removed bool) interface{}

	removed int
}

// Handle removes match once confirmed
func (r *Remover[T]) Handle(match T, display string) error {
	if r.Confirm != nil {
		ok, err := r.Confirm.Confirm("remove " + display)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := r.FS.RemoveAll(r.Path(match)); err != nil {
		return err
	}
	r.removed++

	if r.Confirm == nil {
		return r.Renderer.RenderResult(r.Item(match, display, true))
	}
	return nil
}

// Removed counts the folders deleted so far
func (r *Remover[T]) Removed() int {
	return r.removed
}

// Each feeds every match of seq to h and returns how many were handled.
// A scan error or a failing handler stops the run. Handler failures are
// wrapped with the action and the match they happened on.
func Each[T any](seq iter.Seq2[T, error], action Action, h Handler[T], display func(T) string) (int, error) {
	found := 0
	for match, err := range seq {
		if err != nil {
			return found, err
		}

		shown := display(match)
		if err := h.Handle(match, shown); err != nil {
			if errors.IsErrorCode(err, errors.ErrActionInput) {
				return found, err
			}
			return found, errors.Wrapf(err, errors.ErrActionExecute, "Exception occurred while %s %s", action.Gerund(), shown)
		}
		found++
	}
	return found, nil
}
