package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/transport/core/metrics"
	"github.com/kilianp07/transport/core/transport"
)

type Config struct {
	Solver  transport.Config `json:"solver"`
	Logging LoggingConfig    `json:"logging"`
	Metrics metrics.Config   `json:"metrics"`
	Sentry  SentryConfig     `json:"sentry"`
}

// Load reads the YAML or JSON file at path, applies K_ environment overrides
// (K_SOLVER__MAX_ITERATIONS=50 sets solver.max_iterations) and validates the
// result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	return finish(k)
}

// LoadEnv builds the configuration from defaults and K_ environment variables
// only.
func LoadEnv() (*Config, error) {
	return finish(koanf.New("."))
}

func finish(k *koanf.Koanf) (*Config, error) {
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Solver.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Solver.Validate(); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if err := cfg.Sentry.Validate(); err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	return &cfg, nil
}
