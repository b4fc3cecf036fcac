package empties_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/commands/empties"
	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/testutil"
	"github.com/arthur-debert/cleaner/pkg/ui/plain"
)

func rules(t *testing.T) *platforms.RuleSet {
	t.Helper()
	rs, err := platforms.NewRuleSet([]platforms.Platform{
		{Name: "NodeJS", Folders: []string{"node_modules"}, Associated: platforms.Patterns("package.json")},
	})
	require.NoError(t, err)
	return rs
}

var tree = testutil.FileTree{
	"a":            testutil.FileTree{"b": testutil.FileTree{}},
	"c":            testutil.FileTree{"file": "x"},
	".cache":       testutil.FileTree{},
	"node_modules": testutil.FileTree{"pkg": testutil.FileTree{}},
}

func TestEmptiesList(t *testing.T) {
	var out bytes.Buffer
	result, err := empties.Empties(empties.EmptiesOptions{
		FS: testutil.NewMemFS(t, "/root", tree), Root: "/root", Rules: rules(t), Renderer: plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Found)
	assert.Equal(t, "  - a\n", out.String())
}

func TestEmptiesListHidden(t *testing.T) {
	var out bytes.Buffer
	_, err := empties.Empties(empties.EmptiesOptions{
		FS: testutil.NewMemFS(t, "/root", tree), Root: "/root", ShowHidden: true, Rules: rules(t), Renderer: plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, "  - .cache\n  - a\n", out.String())
}

func TestEmptiesNotFound(t *testing.T) {
	var out bytes.Buffer
	fs := testutil.NewMemFS(t, "/full", testutil.FileTree{"f": "x"})

	result, err := empties.Empties(empties.EmptiesOptions{FS: fs, Root: "/full", Renderer: plain.New(&out)})
	require.NoError(t, err)
	assert.Zero(t, result.Found)
	assert.Equal(t, "No empties found at \"/full\"\n", out.String())
}

func TestEmptiesRootDisplay(t *testing.T) {
	var out bytes.Buffer
	fs := testutil.NewMemFS(t, "/void", testutil.FileTree{"a": testutil.FileTree{}})

	_, err := empties.Empties(empties.EmptiesOptions{FS: fs, Root: "/void", Renderer: plain.New(&out)})
	require.NoError(t, err)
	assert.Equal(t, "  - .\n", out.String())
}

func TestEmptiesRemove(t *testing.T) {
	fs := testutil.NewMemFS(t, "/root", tree)
	var out bytes.Buffer

	result, err := empties.Empties(empties.EmptiesOptions{
		FS: fs, Root: "/root", Rules: rules(t), Action: internal.Remove, Renderer: plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, "  - a - removed\n", out.String())
	assert.False(t, testutil.Exists(fs, "/root/a"))
	assert.True(t, testutil.Exists(fs, "/root/node_modules/pkg"))
}

func TestEmptiesBadRoot(t *testing.T) {
	fs := testutil.NewMemFS(t, "/root", tree)
	_, err := empties.Empties(empties.EmptiesOptions{FS: fs, Root: "/root/c/file", Renderer: plain.New(&bytes.Buffer{})})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotDirectory))
}
