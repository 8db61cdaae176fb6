// Package config loads the reporting tool's configuration. Values are
// merged from three layers, lowest precedence first: built-in defaults,
// a sidefx.toml or sidefx.yaml file in the XDG config directory, and
// SIDEFX_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/sidefx/pkg/errors"
)

// Config holds all sidefx configuration
type Config struct {
	List ListConfig `koanf:"list"`
}

// ListConfig holds the defaults for the list command. Command-line
// flags override these.
type ListConfig struct {
	// Format is one of "default", "raw" or "verbose"
	Format string `koanf:"format"`
	// Strict exits non-zero when registered handlers lack documentation
	Strict bool `koanf:"strict"`
	// Sorted renders labels and handlers in sorted order
	Sorted bool `koanf:"sorted"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"list.format": "default",
		"list.strict": false,
		"list.sorted": false,
	}
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return load(filepath.Join(xdg.ConfigHome, "sidefx"))
}

// load is the testable core of Load; dir is where config files are
// looked up.
func load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file, if present. TOML wins over YAML when both exist.
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"sidefx.toml", toml.Parser()},
		{"sidefx.yaml", yaml.Parser()},
	} {
		path := filepath.Join(dir, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment overrides: SIDEFX_LIST_FORMAT=raw etc.
	envProvider := env.Provider("SIDEFX_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "SIDEFX_")), "_", ".", -1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}
