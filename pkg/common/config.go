package common

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed config.default.yaml
var defaultConfig []byte

const configEnvVar = "GLASSPANE_CONFIG"

// ConfigManager loads configuration in two layers: the embedded defaults,
// then an optional user file that overrides them key by key. The user file
// is taken from $GLASSPANE_CONFIG when set, otherwise discovered under the
// platform config directory.
type ConfigManager[T any] struct {
	k      *koanf.Koanf
	config T
}

func NewConfigManager[T any]() (*ConfigManager[T], error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), kyaml.Parser()); err != nil {
		return nil, err
	}

	if path := userConfigPath(); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, err
		}
	}

	var config T
	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "key"}); err != nil {
		return nil, err
	}

	return &ConfigManager[T]{k: k, config: config}, nil
}

// GetConfig returns the fully merged configuration
func (cm *ConfigManager[T]) GetConfig() T {
	return cm.config
}

// Raw returns the merged configuration as a nested map keyed the way the
// config file spells its keys
func (cm *ConfigManager[T]) Raw() map[string]any {
	return cm.k.Raw()
}

// DefaultConfigYAML returns the embedded default configuration
func DefaultConfigYAML() []byte {
	return defaultConfig
}

// DefaultUserConfigPath returns the file config discovery checks first,
// and the path `config init` scaffolds.
func DefaultUserConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "glasspane", "config.yaml"), nil
}

// userConfigPath returns the config file to overlay, or "" when none exists.
// An explicit $GLASSPANE_CONFIG is returned as-is so a missing file surfaces
// as a load error instead of being silently skipped.
func userConfigPath() string {
	if path := os.Getenv(configEnvVar); path != "" {
		return path
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		path := filepath.Join(base, "glasspane", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return kjson.Parser()
	}
	return kyaml.Parser()
}
