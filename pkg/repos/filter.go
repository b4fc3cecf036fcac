package repos

import (
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// OutdatedFilter narrows which diverged branches count as outdated
type OutdatedFilter int

const (
	// Either lists branches that are ahead, behind or both
	Either OutdatedFilter = iota
	// Ahead lists branches with local commits not in the upstream
	Ahead
	// Behind lists branches missing upstream commits
	Behind
)

// ParseOutdatedFilter reads "ahead", "behind" or "either"
func ParseOutdatedFilter(s string) (OutdatedFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "either", "":
		return Either, nil
	case "ahead":
		return Ahead, nil
	case "behind":
		return Behind, nil
	}
	return Either, errors.Newf(errors.ErrInvalidInput, "invalid outdated filter %q (ahead, behind or either)", s)
}

func (f OutdatedFilter) String() string {
	switch f {
	case Ahead:
		return "ahead"
	case Behind:
		return "behind"
	default:
		return "either"
	}
}

// Matches applies the filter to a branch's ahead and behind counts
func (f OutdatedFilter) Matches(ahead, behind int) bool {
	switch f {
	case Ahead:
		return ahead > 0
	case Behind:
		return behind > 0
	default:
		return ahead > 0 || behind > 0
	}
}
