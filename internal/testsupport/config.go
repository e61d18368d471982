package testsupport

import (
	"path/filepath"
	"testing"

	"reelscore/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Model sizes are scaled down so full pipeline runs stay fast.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataFile = filepath.Join(base, "movies.csv")
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Models.ForestTrees = 10
	cfg.Models.BoostingRounds = 10
	cfg.Tuning.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithoutArtifacts disables chart and workbook output.
func WithoutArtifacts() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Report.Charts = false
		cfg.Report.Workbook = false
	}
}
