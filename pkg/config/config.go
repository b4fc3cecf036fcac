package config

import (
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
)

// EnvPrefix is the prefix of environment variables mapped onto config keys
const EnvPrefix = "CLEANER_"

// Config is the resolved configuration for one invocation
type Config struct {
	Platforms Platforms `koanf:"platforms"`
	Empties   Empties   `koanf:"empties"`
	Repos     Repos     `koanf:"repos"`
	Output    Output    `koanf:"output"`
}

// Platforms configures where platform rules are read from
type Platforms struct {
	File string `koanf:"file"`
}

// Empties configures the empties scan
type Empties struct {
	Hidden bool `koanf:"hidden"`
}

// Repos configures repository scans
type Repos struct {
	Workers     int    `koanf:"workers"`
	MainPattern string `koanf:"mainpattern"`
}

// Output configures rendering
type Output struct {
	Format string `koanf:"format"`
}

// MainBranch compiles the main branch pattern. Load has already validated it.
func (r Repos) MainBranch() *regexp.Regexp {
	return regexp.MustCompile(r.MainPattern)
}

// Load builds the configuration from defaults, the optional user file at
// configFile, the environment and overrides. A missing configFile is not an
// error; a malformed one is.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("Loaded user config")
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func postProcess(cfg *Config) error {
	if cfg.Repos.Workers <= 0 {
		cfg.Repos.Workers = runtime.NumCPU()
	}
	if _, err := regexp.Compile(cfg.Repos.MainPattern); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid repos.mainpattern %q", cfg.Repos.MainPattern)
	}
	switch cfg.Output.Format {
	case "auto", "term", "text", "json":
	default:
		return errors.Newf(errors.ErrConfigInvalid, "invalid output.format %q", cfg.Output.Format)
	}
	return nil
}
