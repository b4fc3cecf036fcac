package builds_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/commands/builds"
	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/selection"
	"github.com/arthur-debert/cleaner/pkg/testutil"
	"github.com/arthur-debert/cleaner/pkg/ui/plain"
)

type answers struct {
	yes       map[string]bool
	questions []string
	err       error
}

func (a *answers) Confirm(question string) (bool, error) {
	a.questions = append(a.questions, question)
	return a.yes[question], a.err
}

func rules(t *testing.T) *platforms.RuleSet {
	t.Helper()
	rs, err := platforms.NewRuleSet([]platforms.Platform{
		{Name: "Rust", Folders: []string{"target"}, Associated: platforms.Patterns("Cargo.toml")},
		{Name: "NodeJS", Folders: []string{"node_modules"}, Associated: platforms.Patterns("package.json")},
	})
	require.NoError(t, err)
	return rs
}

func projects(t *testing.T) afero.Fs {
	return testutil.NewMemFS(t, "/code", testutil.FileTree{
		"api": testutil.FileTree{
			"Cargo.toml": "[package]",
			"target":     testutil.FileTree{"debug": testutil.FileTree{"api": "bin"}},
		},
		"web": testutil.FileTree{
			"package.json": "{}",
			"node_modules": testutil.FileTree{"left-pad": testutil.FileTree{"index.js": "x"}},
		},
	})
}

func TestBuildsList(t *testing.T) {
	var out bytes.Buffer
	result, err := builds.Builds(builds.BuildsOptions{
		FS:        projects(t),
		Root:      "/code",
		Selection: selection.All(),
		Rules:     rules(t),
		Action:    internal.List,
		Renderer:  plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Found)
	assert.Equal(t, "  - [Rust  ] api/target\n  - [NodeJS] web/node_modules\n", out.String())
}

func TestBuildsNotFound(t *testing.T) {
	tests := []struct {
		sel  selection.Selection
		want string
	}{
		{selection.All(), "No build artifacts found for all platforms\n"},
		{selection.Subset("rust"), "No build artifacts found for the rust platform\n"},
		{selection.Subset("rust", "nodejs"), "No build artifacts found for the rust & nodejs platforms\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		fs := testutil.NewMemFS(t, "/empty", testutil.FileTree{"README": "x"})
		result, err := builds.Builds(builds.BuildsOptions{
			FS: fs, Root: "/empty", Selection: tt.sel, Rules: rules(t), Renderer: plain.New(&out),
		})
		require.NoError(t, err)
		assert.Zero(t, result.Found)
		assert.Equal(t, tt.want, out.String())
	}
}

func TestBuildsRejectsUnknownPlatform(t *testing.T) {
	var out bytes.Buffer
	_, err := builds.Builds(builds.BuildsOptions{
		FS: projects(t), Root: "/code", Selection: selection.Subset("cobol"), Rules: rules(t), Renderer: plain.New(&out),
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
	assert.Empty(t, out.String())
}

func TestBuildsRejectsBadRoot(t *testing.T) {
	fs := projects(t)
	_, err := builds.Builds(builds.BuildsOptions{FS: fs, Root: "/missing", Selection: selection.All(), Rules: rules(t), Renderer: plain.New(&bytes.Buffer{})})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = builds.Builds(builds.BuildsOptions{FS: fs, Root: "/code/api/Cargo.toml", Selection: selection.All(), Rules: rules(t), Renderer: plain.New(&bytes.Buffer{})})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotDirectory))
}

func TestBuildsRemoveConfirmed(t *testing.T) {
	fs := projects(t)
	var out bytes.Buffer

	result, err := builds.Builds(builds.BuildsOptions{
		FS: fs, Root: "/code", Selection: selection.Subset("rust"), Rules: rules(t),
		Action: internal.Remove, Renderer: plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, "  - [Rust  ] api/target - removed\n", out.String())
	assert.False(t, testutil.Exists(fs, "/code/api/target"))
	assert.True(t, testutil.Exists(fs, "/code/web/node_modules"))
}

func TestBuildsRemoveAsks(t *testing.T) {
	fs := projects(t)
	var out bytes.Buffer
	confirm := &answers{yes: map[string]bool{"remove [NodeJS] web/node_modules": true}}

	result, err := builds.Builds(builds.BuildsOptions{
		FS: fs, Root: "/code", Selection: selection.All(), Rules: rules(t),
		Action: internal.Remove, Confirm: confirm, Renderer: plain.New(&out),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"remove [Rust  ] api/target", "remove [NodeJS] web/node_modules"}, confirm.questions)
	assert.Equal(t, 2, result.Found)
	assert.Equal(t, 1, result.Removed)
	assert.Empty(t, out.String(), "confirmed removals are not reported")
	assert.True(t, testutil.Exists(fs, "/code/api/target"))
	assert.False(t, testutil.Exists(fs, "/code/web/node_modules"))
}

func TestBuildsRemoveFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(projects(t))

	_, err := builds.Builds(builds.BuildsOptions{
		FS: fs, Root: "/code", Selection: selection.All(), Rules: rules(t),
		Action: internal.Remove, Renderer: plain.New(&bytes.Buffer{}),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionExecute))
	assert.Contains(t, errors.Message(err), "Exception occurred while removing [Rust  ] api/target")
}

func TestBuildsPromptFailure(t *testing.T) {
	confirm := &answers{err: errors.Wrap(stderrors.New("EOF"), errors.ErrActionInput, "Exception processing input")}

	_, err := builds.Builds(builds.BuildsOptions{
		FS: projects(t), Root: "/code", Selection: selection.All(), Rules: rules(t),
		Action: internal.Remove, Confirm: confirm, Renderer: plain.New(&bytes.Buffer{}),
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrActionInput))
	assert.Len(t, confirm.questions, 1)
}
