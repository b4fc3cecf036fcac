package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHonoursOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(tmp, "conf"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv(EnvPlatformsFile, "")

	p := New()

	assert.Equal(t, filepath.Join(tmp, "conf"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "conf", "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(tmp, "conf", "supported-platforms.json"), p.PlatformsFile())
	assert.Equal(t, filepath.Join(tmp, "state", "cleaner"), p.StateDir())
	assert.Equal(t, filepath.Join(tmp, "state", "cleaner", "cleaner.log"), p.LogFilePath())
}

func TestPlatformsFileOverride(t *testing.T) {
	t.Setenv(EnvPlatformsFile, "/etc/cleaner/platforms.yaml")
	assert.Equal(t, "/etc/cleaner/platforms.yaml", New().PlatformsFile())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/code", filepath.Join(home, "code")},
		{"other user", "~bob/code", "~bob/code"},
		{"absolute", "/srv/code", "/srv/code"},
		{"relative", "code", "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestGitConfigFilesOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	files := GitConfigFiles()

	assert.Len(t, files, 3)
	assert.Equal(t, filepath.Join("git", "config"), filepath.Join(filepath.Base(filepath.Dir(files[0])), filepath.Base(files[0])))
	assert.Equal(t, SystemGitConfig, files[1])
	assert.Equal(t, filepath.Join(home, ".gitconfig"), files[2])
}
