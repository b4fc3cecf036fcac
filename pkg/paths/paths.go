package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for cleaner
	EnvConfigDir = "CLEANER_CONFIG_DIR"

	// EnvPlatformsFile overrides the location of the platforms file
	EnvPlatformsFile = "CLEANER_PLATFORMS_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "cleaner"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "config.toml"

	// PlatformsFileName is the default platforms file inside the config dir
	PlatformsFileName = "supported-platforms.json"

	// LogFileName is the name of the log file inside the state dir
	LogFileName = "cleaner.log"

	// SystemGitConfig is the system wide git configuration file
	SystemGitConfig = "/etc/gitconfig"
)

// Paths holds the resolved locations for one invocation
type Paths struct {
	configDir string
	stateDir  string
	platforms string
}

// New resolves all locations from the environment
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		p.stateDir = filepath.Join(dir, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	if file := os.Getenv(EnvPlatformsFile); file != "" {
		p.platforms = ExpandHome(file)
	} else {
		p.platforms = filepath.Join(p.configDir, PlatformsFileName)
	}

	return p
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the user configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the log file location
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// PlatformsFile returns the platforms file location
func (p *Paths) PlatformsFile() string {
	return p.platforms
}

// GitConfigFiles returns the git configuration files in the order a
// credential helper is looked up: XDG, system and then the user's global file.
func GitConfigFiles() []string {
	files := []string{
		filepath.Join(xdg.ConfigHome, "git", "config"),
		SystemGitConfig,
	}
	if home := homeDir(); home != "" {
		files = append(files, filepath.Join(home, ".gitconfig"))
	}
	return files
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home := homeDir()
	if home == "" {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~user is not expanded
	return path
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv(EnvHome)
}
