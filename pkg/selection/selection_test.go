package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantAll bool
		want    []string
	}{
		{"all with blanks", "all ", true, nil},
		{"all upper case", " ALL", true, nil},
		{"plain list", "a,b,c,d", false, []string{"a", "b", "c", "d"}},
		{"messy list", "a, b,c ,, d ", false, []string{"a", "b", "c", "d"}},
		{"single", "rust", false, []string{"rust"}},
		{"only commas", " , ,", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.wantAll, got.IsAll())
			assert.Equal(t, tt.want, got.Values())
		})
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, All().Matches("value"))

	s := Subset("Rust", "NodeJS")
	assert.True(t, s.Matches("rust"))
	assert.True(t, s.Matches("NODEJS"))
	assert.False(t, s.Matches("Go"))

	assert.False(t, Selection{}.Matches("anything"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "s", All().Pluralize("s"))
	assert.Equal(t, "s", Subset("a", "b").Pluralize("s"))
	assert.Equal(t, "", Subset("a").Pluralize("s"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "all", All().String())
	assert.Equal(t, "Rust", Subset("Rust").String())
	assert.Equal(t, "a, b & c", Subset("a", "b", "c").String())
}

func TestChoose(t *testing.T) {
	assert.Equal(t, "every", Choose(All(), "some", "every"))
	assert.Equal(t, "some", Choose(Subset("x"), "some", "every"))
}

func TestSubsetCopiesInput(t *testing.T) {
	in := []string{"a"}
	s := Subset(in...)
	in[0] = "b"
	assert.Equal(t, []string{"a"}, s.Values())
}
