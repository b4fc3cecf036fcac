package cleaner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/internal/version"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/paths"
	"github.com/arthur-debert/cleaner/pkg/testutil"
)

const rustOnly = `[{"name": "Rust", "folders": ["target"], "associated": ["Cargo.toml"]}]`

// harness isolates the config, state and platforms files of one test and
// returns the folder to scan
type harness struct {
	t         *testing.T
	work      string
	platforms string
}

func newHarness(t *testing.T, platforms string) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(dir, "config"))
	t.Setenv(paths.EnvPlatformsFile, "")

	h := &harness{t: t, work: filepath.Join(dir, "work"), platforms: filepath.Join(dir, "config", "platforms.json")}
	require.NoError(t, os.MkdirAll(h.work, 0755))
	if platforms != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(h.platforms), 0755))
		require.NoError(t, os.WriteFile(h.platforms, []byte(platforms), 0644))
	}
	return h
}

func (h *harness) tree(tree testutil.FileTree) {
	testutil.CreateFileTree(h.t, afero.NewOsFs(), h.work, tree)
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--format", "text", "--platforms", h.platforms}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuilds(t *testing.T) {
	h := newHarness(t, rustOnly)
	h.tree(testutil.FileTree{
		"app": testutil.FileTree{"Cargo.toml": "", "target": testutil.FileTree{"debug": testutil.FileTree{"app": "bin"}}},
		"lib": testutil.FileTree{"target": testutil.FileTree{"x": "y"}},
	})

	for _, args := range [][]string{{"builds", h.work}, {"builds", "ls", h.work}, {"builds", "list", h.work, "-t", "rust"}} {
		out, err := h.run(args...)
		require.NoError(t, err, args)
		assert.Equal(t, "  - [Rust] app/target\n", out, args)
	}

	out, err := h.run("builds", "rm", h.work, "-y")
	require.NoError(t, err)
	assert.Equal(t, "  - [Rust] app/target - removed\n", out)
	assert.NoDirExists(t, filepath.Join(h.work, "app", "target"))
	assert.DirExists(t, filepath.Join(h.work, "lib", "target"))

	out, err = h.run("builds", h.work)
	require.NoError(t, err)
	assert.Equal(t, "No build artifacts found for all platforms\n", out)
}

func TestBuildsUnknownPlatform(t *testing.T) {
	h := newHarness(t, rustOnly)

	_, err := h.run("builds", h.work, "-t", "cobol")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
}

func TestBuildsInvalidPlatforms(t *testing.T) {
	h := newHarness(t, `[{"name": "Rust", "folders": ["target"], "associated": []}, {"name": "rust", "folders": ["target"], "associated": []}]`)

	out, err := h.run("builds", h.work)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Contains(t, errors.Message(err), "Configurations file requires manual fix: "+h.platforms)
	assert.Contains(t, out, "Platform: rust <<= duplicate platform name")
}

func TestEmpties(t *testing.T) {
	h := newHarness(t, rustOnly)
	h.tree(testutil.FileTree{
		"a":      testutil.FileTree{"b": testutil.FileTree{}},
		"c":      testutil.FileTree{"file": "x"},
		".cache": testutil.FileTree{},
	})

	out, err := h.run("empties", h.work)
	require.NoError(t, err)
	assert.Equal(t, "  - a\n", out)

	out, err = h.run("empties", "ls", h.work, "-s")
	require.NoError(t, err)
	assert.Equal(t, "  - .cache\n  - a\n", out)

	out, err = h.run("empties", "rm", h.work, "-y")
	require.NoError(t, err)
	assert.Equal(t, "  - a - removed\n", out)
	assert.NoDirExists(t, filepath.Join(h.work, "a"))
}

func TestEmptiesMissingPath(t *testing.T) {
	h := newHarness(t, rustOnly)

	_, err := h.run("empties", filepath.Join(h.work, "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRepos(t *testing.T) {
	h := newHarness(t, rustOnly)
	repo := testutil.InitRepo(t, filepath.Join(h.work, "app"))
	testutil.CommitFile(t, repo, "README.md", "hello")
	testutil.InitRepo(t, filepath.Join(h.work, "fresh"))

	out, err := h.run("repos", "ls", h.work)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(h.work, "app") + " - branch: main", filepath.Join(h.work, "fresh")},
		strings.Split(strings.TrimSuffix(out, "\n"), "\n"))

	out, err = h.run("repos", "unborn", h.work)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.work, "fresh")+"\n", out)

	out, err = h.run("repos", "detached", h.work)
	require.NoError(t, err)
	assert.Equal(t, "Did not find any detached repos\n", out)

	out, err = h.run("repos", "local", h.work)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(h.work, "app")+" - branch: main")
}

func TestReposHelpMentionsUnborn(t *testing.T) {
	h := newHarness(t, rustOnly)

	out, err := h.run("repos", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Repositories without any commit are listed by every check they pass")
}

func TestReposOutdatedFilter(t *testing.T) {
	h := newHarness(t, rustOnly)

	_, err := h.run("repos", "outdated", h.work, "-f", "sideways")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = h.run("repos", "sideways", h.work)
	require.Error(t, err)
}

func TestSupported(t *testing.T) {
	h := newHarness(t, rustOnly)

	out, err := h.run("supported", "path")
	require.NoError(t, err)
	assert.Equal(t, h.platforms+"\n", out)

	out, err = h.run("supported", "add", "Go", "-f", "vendor,bin", "-a", "go.mod")
	require.NoError(t, err)
	assert.Equal(t, "Platform Go added\n", out)

	out, err = h.run("supported", "ls")
	require.NoError(t, err)
	assert.Equal(t, "Platform: Rust\n  Build Artifacts: target\n  Matched On: Cargo.toml\n\n"+
		"Platform: Go\n  Build Artifacts: vendor & bin\n  Matched On: go.mod\n", out)

	_, err = h.run("supported", "modify", "go", "--rename", "Golang")
	require.NoError(t, err)

	out, err = h.run("supported", "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Golang")

	out, err = h.run("supported", "check")
	require.NoError(t, err)
	assert.Equal(t, "Configuration of supported platforms is valid\n", out)

	_, err = h.run("supported", "delete", "Golang")
	require.NoError(t, err)

	_, err = h.run("supported", "delete", "Golang")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformNotFound))

	out, err = h.run("supported", "reset", "-y")
	require.NoError(t, err)
	assert.Equal(t, "Configuration of supported platforms has been reset\n", out)

	out, err = h.run("supported", "reset", "-y")
	require.NoError(t, err)
	assert.Equal(t, "Configuration of supported platforms is reset\n", out)
}

func TestSupportedWritesDefaults(t *testing.T) {
	h := newHarness(t, "")

	out, err := h.run("supported")
	require.NoError(t, err)
	assert.Contains(t, out, "Platform: Rust")
	assert.FileExists(t, h.platforms)
}

func TestJSONFormat(t *testing.T) {
	h := newHarness(t, rustOnly)
	h.tree(testutil.FileTree{"a": testutil.FileTree{}})

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "--platforms", h.platforms, "empties", h.work})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"display":"a"`)
}

func TestInvalidFormat(t *testing.T) {
	h := newHarness(t, rustOnly)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "--platforms", h.platforms, "empties", h.work})
	err := cmd.Execute()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestVersion(t *testing.T) {
	h := newHarness(t, rustOnly)

	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "cleaner version "+version.Version)
}

func TestTopics(t *testing.T) {
	h := newHarness(t, rustOnly)

	out, err := h.run("topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  platforms")
	assert.Contains(t, out, "  --yes")

	_, err = h.run("topics", "nothing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestNoCommand(t *testing.T) {
	h := newHarness(t, rustOnly)

	_, err := h.run()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
