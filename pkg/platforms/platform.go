package platforms

import (
	"strings"
	"unicode"
)

// Platform describes a toolchain whose build output can be cleaned
type Platform struct {
	// Name is unique within a rule set, ignoring case, and has no whitespace
	Name string `json:"name" yaml:"name" toml:"name"`

	// Folders are the build artifact folder names, matched ignoring case
	Folders []string `json:"folders" yaml:"folders" toml:"folders"`

	// Associated patterns confirm a folder belongs to this platform when a
	// sibling of the folder matches one of them
	Associated []Pattern `json:"associated" yaml:"associated" toml:"associated"`
}

// SameAs reports whether two platforms match exactly the same folders with
// the same evidence, ignoring case and order. Names are not compared.
func (p Platform) SameAs(other Platform) bool {
	if len(p.Folders) != len(other.Folders) || len(p.Associated) != len(other.Associated) {
		return false
	}

	assoc := make([]string, len(p.Associated))
	for i, a := range p.Associated {
		assoc[i] = a.String()
	}
	otherAssoc := make([]string, len(other.Associated))
	for i, a := range other.Associated {
		otherAssoc[i] = a.String()
	}

	return sameFold(p.Folders, other.Folders) && sameFold(assoc, otherAssoc)
}

// AssociatedStrings returns the associated patterns as written
func (p Platform) AssociatedStrings() []string {
	out := make([]string, len(p.Associated))
	for i, a := range p.Associated {
		out[i] = a.String()
	}
	return out
}

func (p Platform) hasWhitespace() bool {
	return strings.IndexFunc(p.Name, unicode.IsSpace) >= 0
}

// sameFold compares two lists as multisets of lower-cased values
func sameFold(a, b []string) bool {
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[strings.ToLower(v)]++
	}
	for _, v := range b {
		k := strings.ToLower(v)
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

// uniqueFold reports whether values has no duplicates, ignoring case
func uniqueFold(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}
