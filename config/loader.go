package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read by the loader, e.g.
	// GRIDPATH_GRID_ROWS or GRIDPATH_LOG_FILE_PATH.
	EnvPrefix = "GRIDPATH_"

	// ConfigEnvVar points at a YAML file when no path is given explicitly.
	ConfigEnvVar = "GRIDPATH_CONFIG"
)

// Loader merges configuration sources, lowest precedence first:
// defaults, YAML file, environment.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile reads path as YAML. A missing explicit file is an error.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix overrides EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader with EnvPrefix and no file.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges all sources, decodes and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	path := l.path
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps GRIDPATH_GRID_START_ROW to grid.start_row: the first segment
// is the section, the rest is the key. The config file variable is skipped.
func (l *Loader) envKey(name, value string) (string, interface{}) {
	if name == ConfigEnvVar {
		return "", nil
	}
	key := strings.ToLower(strings.TrimPrefix(name, l.envPrefix))
	return strings.Replace(key, "_", ".", 1), value
}

// Default returns the built-in configuration, ignoring files and env.
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		panic(err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"grid.rows":       15,
		"grid.cols":       40,
		"grid.start_row":  0,
		"grid.start_col":  0,
		"grid.finish_row": 14,
		"grid.finish_col": 39,

		"search.algorithm": "dijkstra",

		"animation.visit_step": "10ms",
		"animation.path_step":  "20ms",
		"animation.cost_delay": "500ms",

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"metrics.namespace": "gridpath",
	}
}
