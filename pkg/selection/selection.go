// Package selection parses the "all or a comma separated list" arguments
// used to pick platforms.
package selection

import (
	"strings"

	"github.com/arthur-debert/cleaner/pkg/ui/text"
)

// AllKeyword selects every value
const AllKeyword = "all"

// Selection is either every value or an ordered subset of names.
// The zero value selects nothing.
type Selection struct {
	all    bool
	values []string
}

// All selects every value
func All() Selection {
	return Selection{all: true}
}

// Subset selects only the given values
func Subset(values ...string) Selection {
	return Selection{values: append([]string(nil), values...)}
}

// Parse reads "all" (any case, surrounding blanks ignored) or a comma
// separated list. List entries are trimmed and blank entries dropped.
func Parse(s string) Selection {
	if strings.EqualFold(strings.TrimSpace(s), AllKeyword) {
		return All()
	}

	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return Selection{values: values}
}

// IsAll reports whether every value is selected
func (s Selection) IsAll() bool {
	return s.all
}

// Values returns the selected names. It is nil for All.
func (s Selection) Values() []string {
	return append([]string(nil), s.values...)
}

// Matches reports whether name is selected, ignoring case
func (s Selection) Matches(name string) bool {
	if s.all {
		return true
	}
	for _, v := range s.values {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// Pluralize returns plural when the selection may name more than one value
func (s Selection) Pluralize(plural string) string {
	if s.all || len(s.values) > 1 {
		return plural
	}
	return ""
}

// String renders "all" or the values as prose
func (s Selection) String() string {
	if s.all {
		return AllKeyword
	}
	return text.Join(s.values)
}

// Choose returns all for an All selection and subset otherwise
func Choose[T any](s Selection, subset, all T) T {
	if s.all {
		return all
	}
	return subset
}
