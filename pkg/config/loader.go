package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "GENTLEGOOSE_"

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "gentlegoose", "config.toml")
}

// Load resolves the layered configuration: embedded defaults, then the
// user config file (if present), then GENTLEGOOSE_* environment
// variables.
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom is Load with an explicit user config path, for tests
func LoadFrom(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults, parsed once into a map and loaded as the
	// base layer
	defaults, err := toml.Parser().Unmarshal(defaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to parse default config")
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file, when present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load user config from %s", userConfigPath)
		}
	}

	// 3. Environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
