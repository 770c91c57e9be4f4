package config

// Default returns the default configuration values.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  "",
			CatalogDir: "~/.local/share/popon",
			LogDir:     "~/.local/share/popon/logs",
		},
		Decode: Decode{
			FrameRate:   29.97,
			DropFrame:   false,
			ParityCheck: true,
		},
		Output: Output{
			Format:      "vtt",
			KeepStyles:  false,
			TailSeconds: 5.0,
		},
		Catalog: Catalog{
			Enabled: true,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
