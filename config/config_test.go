package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `solver:
  max_iterations: 50
  precision: 4
  timeout_seconds: 10
logging:
  level: debug
  format: console
metrics:
  sinks:
    - type: "nop"
    - type: "influx"
      conf:
        url: "http://localhost:8086"
        bucket: "transport"
  textfile: "/tmp/transport.prom"
sentry:
  environment: "test"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"max_iterations", cfg.Solver.MaxIterations, 50},
		{"precision", cfg.Solver.Precision, 4},
		{"tolerance default", cfg.Solver.Tolerance, 1e-9},
		{"timeout_seconds", cfg.Solver.TimeoutSeconds, 10},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"metrics_sinks", len(cfg.Metrics.Sinks), 2},
		{"metrics_sink_type", cfg.Metrics.Sinks[1].Type, "influx"},
		{"metrics_sink_conf", cfg.Metrics.Sinks[1].Conf["bucket"], "transport"},
		{"textfile", cfg.Metrics.Textfile, "/tmp/transport.prom"},
		{"sentry.environment", cfg.Sentry.Environment, "test"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"solver":{"max_iterations":5}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Solver.MaxIterations != 5 || cfg.Solver.Precision != 3 || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("K_SOLVER__MAX_ITERATIONS", "7")
	t.Setenv("K_LOGGING__LEVEL", "warn")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Solver.MaxIterations != 7 {
		t.Fatalf("expected env override, got %d", cfg.Solver.MaxIterations)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"level.yaml":     "logging:\n  level: loud\n",
		"precision.yaml": "solver:\n  precision: 40\n",
		"sentry.yaml":    "sentry:\n  traces_sample_rate: 2\n",
		"config.toml":    "",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
