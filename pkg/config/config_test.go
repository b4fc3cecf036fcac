package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Platforms.File)
	assert.False(t, cfg.Empties.Hidden)
	assert.Equal(t, runtime.NumCPU(), cfg.Repos.Workers)
	assert.Equal(t, "^(refs/heads/)?(main|master)$", cfg.Repos.MainPattern)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Repos.MainBranch().MatchString("refs/heads/main"))
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[empties]
hidden = true

[repos]
workers = 2
`), 0644))

	t.Run("user file", func(t *testing.T) {
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.True(t, cfg.Empties.Hidden)
		assert.Equal(t, 2, cfg.Repos.Workers)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("CLEANER_REPOS_WORKERS", "7")
		t.Setenv("CLEANER_OUTPUT_FORMAT", "json")
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Repos.Workers)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("overrides win", func(t *testing.T) {
		t.Setenv("CLEANER_REPOS_WORKERS", "7")
		cfg, err := Load(path, map[string]interface{}{"repos.workers": 3, "platforms.file": "/tmp/p.yaml"})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Repos.Workers)
		assert.Equal(t, "/tmp/p.yaml", cfg.Platforms.File)
	})

	t.Run("env keys with underscores keep them", func(t *testing.T) {
		t.Setenv("CLEANER_PLATFORMS_FILE", "/srv/platforms.json")
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/srv/platforms.json", cfg.Platforms.File)
	})
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[repos\nworkers = "), 0644))
		_, err := Load(path, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("bad main pattern", func(t *testing.T) {
		_, err := Load("", map[string]interface{}{"repos.mainpattern": "("})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Load("", map[string]interface{}{"output.format": "xml"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("missing file is fine", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"), nil)
		assert.NoError(t, err)
	})
}
