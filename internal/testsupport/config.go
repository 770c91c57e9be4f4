package testsupport

import (
	"path/filepath"
	"testing"

	"popon/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.CatalogDir = filepath.Join(base, "catalog")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFormat sets the output format on the test config.
func WithFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Output.Format = format
	}
}
