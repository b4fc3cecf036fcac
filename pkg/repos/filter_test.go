package repos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

func TestOutdatedFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		ahead  int
		behind int
		want   map[OutdatedFilter]bool
	}{
		{"ahead and behind", 3, 1, map[OutdatedFilter]bool{Ahead: true, Behind: true, Either: true}},
		{"level", 0, 0, map[OutdatedFilter]bool{Ahead: false, Behind: false, Either: false}},
		{"only ahead", 2, 0, map[OutdatedFilter]bool{Ahead: true, Behind: false, Either: true}},
		{"only behind", 0, 4, map[OutdatedFilter]bool{Ahead: false, Behind: true, Either: true}},
		{"diverged evenly", 2, 2, map[OutdatedFilter]bool{Ahead: true, Behind: true, Either: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for filter, want := range tt.want {
				assert.Equal(t, want, filter.Matches(tt.ahead, tt.behind), filter.String())
			}
		})
	}
}

func TestParseOutdatedFilter(t *testing.T) {
	for input, want := range map[string]OutdatedFilter{
		"":        Either,
		"either":  Either,
		"Ahead":   Ahead,
		" behind": Behind,
	} {
		got, err := ParseOutdatedFilter(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseOutdatedFilter("sideways")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
