package platforms

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/filelock"
	"github.com/arthur-debert/cleaner/pkg/logging"
)

//go:embed embedded/supported-platforms.json
var defaultPlatforms []byte

// Format is a serialization of a platform list
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown platforms format %q (json, yaml or toml)", s)
}

// FormatFor picks the format from the file extension, defaulting to JSON
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlDocument wraps the list since a TOML document must be a table
type tomlDocument struct {
	Platforms []Platform `toml:"platform"`
}

// Encode serializes platforms in the given format
func Encode(platforms []Platform, format Format) ([]byte, error) {
	if platforms == nil {
		platforms = []Platform{}
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(platforms)
	case FormatTOML:
		return toml.Marshal(tomlDocument{Platforms: platforms})
	default:
		data, err := json.MarshalIndent(platforms, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Decode parses platforms in the given format
func Decode(data []byte, format Format) ([]Platform, error) {
	var platforms []Platform
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &platforms); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		platforms = doc.Platforms
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&platforms); err != nil {
			return nil, err
		}
	}
	return platforms, nil
}

// Defaults returns the built in platform list
func Defaults() []Platform {
	platforms, err := Decode(defaultPlatforms, FormatJSON)
	if err != nil {
		panic("embedded platforms are invalid: " + err.Error())
	}
	return platforms
}

// Store reads and writes the platforms file
type Store struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

// NewStore creates a store for the platforms file at path
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{
		fs:     fs,
		path:   path,
		logger: logging.GetLogger("platforms.store"),
	}
}

// Path returns the platforms file location
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the platforms file has been written
func (s *Store) Exists() bool {
	_, err := s.fs.Stat(s.path)
	return err == nil
}

// Load reads the platforms file, writing the defaults first when it does
// not exist. The result is not validated; see NewRuleSet.
func (s *Store) Load() ([]Platform, error) {
	if !s.Exists() {
		s.logger.Info().Str("path", s.path).Msg("Writing default platforms")
		if err := s.Save(Defaults()); err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Exception accessing configuration file").
			WithDetail("path", s.path)
	}

	platforms, err := Decode(data, FormatFor(s.path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Exception with configuration").
			WithDetail("path", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("platforms", len(platforms)).Msg("Loaded platforms")
	return platforms, nil
}

// Save replaces the platforms file
func (s *Store) Save(platforms []Platform) error {
	data, err := Encode(platforms, FormatFor(s.path))
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "Exception encoding configuration")
	}
	if err := filelock.LockAndWrite(s.fs, s.path, data); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "Exception creating configuration file").
			WithDetail("path", s.path)
	}
	return nil
}

// Reset removes the platforms file so the defaults are written on next
// load. It reports whether there was a file to remove.
func (s *Store) Reset() (bool, error) {
	if !s.Exists() {
		return false, nil
	}
	if err := filelock.LockAndRemove(s.fs, s.path); err != nil {
		return false, errors.Wrap(err, errors.ErrConfigWrite, "Exception resetting configuration").
			WithDetail("path", s.path)
	}
	s.logger.Info().Str("path", s.path).Msg("Platforms reset")
	return true, nil
}
