package platforms

import (
	"sort"
	"strings"
)

// Rule is a platform prepared for matching: folder names and associated
// patterns are lower-cased once.
type Rule struct {
	Platform
	folders    map[string]struct{}
	associated []Pattern
}

// OwnsFolder reports whether name is one of the platform's artifact folders
func (r *Rule) OwnsFolder(name string) bool {
	_, ok := r.folders[strings.ToLower(name)]
	return ok
}

// Recognizes reports whether any of names matches an associated pattern
func (r *Rule) Recognizes(names []string) bool {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, p := range r.associated {
			if p.Matches(lower) {
				return true
			}
		}
	}
	return false
}

// RuleSet is a validated, read-only list of platforms in priority order
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet validates platforms and prepares them for matching
func NewRuleSet(platforms []Platform) (*RuleSet, error) {
	if err := Validate(platforms); err != nil {
		return nil, err
	}

	rs := &RuleSet{rules: make([]*Rule, len(platforms))}
	for i, p := range platforms {
		r := &Rule{
			Platform:   p,
			folders:    make(map[string]struct{}, len(p.Folders)),
			associated: make([]Pattern, len(p.Associated)),
		}
		for _, f := range p.Folders {
			r.folders[strings.ToLower(f)] = struct{}{}
		}
		for j, a := range p.Associated {
			r.associated[j] = a.Lower()
		}
		rs.rules[i] = r
	}
	return rs, nil
}

// Rules returns the prepared rules in priority order
func (rs *RuleSet) Rules() []*Rule {
	return rs.rules
}

// Platforms returns the platforms in priority order
func (rs *RuleSet) Platforms() []Platform {
	out := make([]Platform, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Platform
	}
	return out
}

// Names returns the platform names in priority order
func (rs *RuleSet) Names() []string {
	out := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Name
	}
	return out
}

// ArtifactFolders returns every artifact folder name of every platform,
// lower-cased, sorted and without duplicates
func (rs *RuleSet) ArtifactFolders() []string {
	seen := map[string]struct{}{}
	for _, r := range rs.rules {
		for f := range r.folders {
			seen[f] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Equivalents lists pairs of platforms that match the same things. They are
// legal but usually a sign of a redundant entry.
func (rs *RuleSet) Equivalents() [][2]string {
	var out [][2]string
	for i := 0; i < len(rs.rules); i++ {
		for j := i + 1; j < len(rs.rules); j++ {
			if rs.rules[i].SameAs(rs.rules[j].Platform) {
				out = append(out, [2]string{rs.rules[i].Name, rs.rules[j].Name})
			}
		}
	}
	return out
}
