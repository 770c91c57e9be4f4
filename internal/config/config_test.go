package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if exists {
		t.Fatalf("Load() exists = true for missing file")
	}
	if resolved != path {
		t.Errorf("Load() resolved = %q, want %q", resolved, path)
	}
	if cfg.Output.Format != "vtt" {
		t.Errorf("Output.Format = %q, want vtt", cfg.Output.Format)
	}
	if cfg.Decode.FrameRate != 29.97 {
		t.Errorf("Decode.FrameRate = %g, want 29.97", cfg.Decode.FrameRate)
	}
	if !cfg.Decode.ParityCheck {
		t.Errorf("Decode.ParityCheck = false, want true")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[output]
format = "SRT"

[decode]
frame_rate = 25.0

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists {
		t.Fatalf("Load() exists = false for existing file")
	}
	if cfg.Output.Format != "srt" {
		t.Errorf("Output.Format = %q, want srt", cfg.Output.Format)
	}
	if cfg.Decode.FrameRate != 25.0 {
		t.Errorf("Decode.FrameRate = %g, want 25", cfg.Decode.FrameRate)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "bad output format",
			mutate: func(c *Config) { c.Output.Format = "ass" },
			want:   "output.format",
		},
		{
			name:   "zero frame rate",
			mutate: func(c *Config) { c.Decode.FrameRate = 0 },
			want:   "frame_rate",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
			want:   "logging.level",
		},
		{
			name: "catalog enabled without dir",
			mutate: func(c *Config) {
				c.Catalog.Enabled = true
				c.Paths.CatalogDir = ""
			},
			want: "catalog_dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatal(err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandPath("~/captions")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	want := filepath.Join(home, "captions")
	if got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}
}

func TestNormalizeExpandsPaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.OutputDir = "  "
	cfg.Paths.LogDir = "~/logs"

	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	if cfg.Paths.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty", cfg.Paths.OutputDir)
	}
	if strings.HasPrefix(cfg.Paths.LogDir, "~") {
		t.Errorf("LogDir not expanded: %q", cfg.Paths.LogDir)
	}
}
