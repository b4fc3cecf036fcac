package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemFS(t *testing.T) {
	fs := NewMemFS(t, "/root", FileTree{
		"a": FileTree{},
		"b": FileTree{
			"c.txt": "hello",
		},
		"d/e.txt": "nested",
	})

	assert.True(t, Exists(fs, "/root/a"))
	assert.True(t, Exists(fs, "/root/d/e.txt"))

	data, err := afero.ReadFile(fs, "/root/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
