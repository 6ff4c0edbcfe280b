package config

import (
	_ "embed"
	"fmt"
	"strings"

	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read into the configuration.
// HUFF_LOGGER_LEVEL maps to logger.level.
const EnvPrefix = "HUFF_"

//go:embed default.yaml
var defaults []byte

// Load builds the configuration from, in increasing priority: the embedded
// defaults, the YAML file at path (skipped when empty), HUFF_* environment
// variables and overrides.
func Load(path string, overrides map[string]any) (*Conf, error) {
	conf := &Conf{Koanf: koanf.New(".")}

	if err := conf.Load(rawbytes.Provider(defaults), kYaml.Parser()); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	if path != "" {
		if err := conf.Load(file.Provider(path), kYaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := conf.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if len(overrides) > 0 {
		if err := conf.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	return conf, nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
}
