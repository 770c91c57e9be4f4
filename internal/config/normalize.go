package config

import "strings"

// normalize expands path fields and canonicalizes enum-like strings so
// Validate and the rest of the program see one spelling.
func (c *Config) normalize() error {
	for _, field := range []*string{
		&c.Paths.OutputDir,
		&c.Paths.CatalogDir,
		&c.Paths.LogDir,
	} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}
