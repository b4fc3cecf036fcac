package platforms

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Pattern matches file or folder names. '*' matches any run of characters,
// including none, and '?' matches exactly one character. There is no
// escaping and no character classes; matching is case sensitive.
type Pattern struct {
	text  string
	runes []rune
}

// NewPattern compiles text. Every string is a valid pattern.
func NewPattern(text string) Pattern {
	return Pattern{text: text, runes: []rune(text)}
}

// Patterns compiles every string in texts
func Patterns(texts ...string) []Pattern {
	out := make([]Pattern, len(texts))
	for i, t := range texts {
		out[i] = NewPattern(t)
	}
	return out
}

// String returns the pattern as written
func (p Pattern) String() string {
	return p.text
}

// Lower returns the pattern compiled from its lower-cased text
func (p Pattern) Lower() Pattern {
	return NewPattern(strings.ToLower(p.text))
}

// EqualFold compares the original pattern text ignoring case
func (p Pattern) EqualFold(other Pattern) bool {
	return strings.EqualFold(p.text, other.text)
}

// Matches reports whether name matches the whole pattern
func (p Pattern) Matches(name string) bool {
	pattern := p.runes
	input := []rune(name)

	pi, si := 0, 0
	star, starInput := -1, 0

	for si < len(input) {
		if pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == input[si]) {
			pi++
			si++
			continue
		}

		if pi < len(pattern) && pattern[pi] == '*' {
			star = pi
			starInput = si
			pi++
			continue
		}

		// backtrack: let the last star swallow one more character
		if star >= 0 {
			pi = star + 1
			starInput++
			si = starInput
			continue
		}

		return false
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

// MarshalText serializes the pattern as its text, for JSON and TOML
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.text), nil
}

// UnmarshalText compiles a pattern read from JSON or TOML
func (p *Pattern) UnmarshalText(b []byte) error {
	*p = NewPattern(string(b))
	return nil
}

// MarshalYAML serializes the pattern as a plain scalar
func (p Pattern) MarshalYAML() (interface{}, error) {
	return p.text, nil
}

// UnmarshalYAML compiles a pattern from a YAML scalar
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*p = NewPattern(s)
	return nil
}
