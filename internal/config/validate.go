package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "vtt", "srt":
	default:
		return fmt.Errorf("output.format must be \"vtt\" or \"srt\", got %q", c.Output.Format)
	}

	if c.Output.TailSeconds <= 0 {
		return fmt.Errorf("output.tail_seconds must be positive, got %g", c.Output.TailSeconds)
	}

	if c.Decode.FrameRate <= 0 {
		return fmt.Errorf("decode.frame_rate must be positive, got %g", c.Decode.FrameRate)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}

	if c.Catalog.Enabled && c.Paths.CatalogDir == "" {
		return fmt.Errorf("paths.catalog_dir is required when the catalog is enabled")
	}

	return nil
}
