package platforms

import (
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// EditKind selects what an Edit does
type EditKind int

const (
	// EditAdd appends a new platform
	EditAdd EditKind = iota
	// EditModify changes an existing platform in place
	EditModify
	// EditDelete removes a platform
	EditDelete
)

// Edit is one change to a platform list. For EditModify, empty Rename,
// Folders and Associated leave the current values alone.
type Edit struct {
	Kind       EditKind
	Name       string
	Rename     string
	Folders    []string
	Associated []string
}

// Apply returns the platform list with e applied. The input is not
// modified, and a result that would not validate is refused.
func Apply(platforms []Platform, e Edit) ([]Platform, error) {
	idx := indexOf(platforms, e.Name)
	out := append([]Platform(nil), platforms...)

	switch e.Kind {
	case EditAdd:
		if idx >= 0 {
			return nil, errors.Newf(errors.ErrPlatformExists, "platform %s already exists", platforms[idx].Name)
		}
		out = append(out, Platform{
			Name:       e.Name,
			Folders:    append([]string(nil), e.Folders...),
			Associated: Patterns(e.Associated...),
		})

	case EditModify:
		if idx < 0 {
			return nil, errors.Newf(errors.ErrPlatformNotFound, "platform %s not found", e.Name)
		}
		p := out[idx]
		if e.Rename != "" {
			p.Name = e.Rename
		}
		if len(e.Folders) > 0 {
			p.Folders = append([]string(nil), e.Folders...)
		}
		if len(e.Associated) > 0 {
			p.Associated = Patterns(e.Associated...)
		}
		out[idx] = p

	case EditDelete:
		if idx < 0 {
			return nil, errors.Newf(errors.ErrPlatformNotFound, "platform %s not found", e.Name)
		}
		out = append(out[:idx], out[idx+1:]...)

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown edit kind %d", e.Kind)
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

func indexOf(platforms []Platform, name string) int {
	for i, p := range platforms {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
