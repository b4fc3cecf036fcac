package platforms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"package.json", "package.json", true},
		{"package.json", "Package.json", false},
		{"package.json", "package.jsonx", false},
		{"*.json", "package.json", true},
		{"*.json", "package.jsonx", false},
		{"*.json", ".json", true},
		{"a?c", "abc", true},
		{"a?c", "abbc", false},
		{"a?c", "ac", false},
		{"*", "", true},
		{"", "", true},
		{"", "a", false},
		{"a*b*c", "axxbyyc", true},
		{"a*b*c", "axxbyy", false},
		{"*.*proj", "app.csproj", true},
		{"??.txt", "éa.txt", true},
		{"[ab]", "[ab]", true},
		{"[ab]", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"~"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPattern(tt.pattern).Matches(tt.input))
		})
	}
}

func TestPatternLiteralIsExact(t *testing.T) {
	for _, lit := range []string{"Cargo.toml", "pom.xml", "Makefile", "build.gradle.kts"} {
		p := NewPattern(lit)
		assert.True(t, p.Matches(lit))
		assert.False(t, p.Matches(lit+"x"))
		assert.False(t, p.Matches("x"+lit))
	}
}

func TestPatternTextAndFold(t *testing.T) {
	p := NewPattern("*.CSPROJ")
	assert.Equal(t, "*.CSPROJ", p.String())
	assert.True(t, p.EqualFold(NewPattern("*.csproj")))
	assert.True(t, p.Lower().Matches("app.csproj"))
	assert.False(t, p.Matches("app.csproj"))
}

func TestPatternJSON(t *testing.T) {
	var got []Pattern
	require.NoError(t, json.Unmarshal([]byte(`["*.sln","Cargo.toml"]`), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Matches("app.sln"))

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `["*.sln","Cargo.toml"]`, string(data))
}
