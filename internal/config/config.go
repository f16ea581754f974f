package config

// Config holds runtime settings for the NoteKeeper CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite database backing the key-value store.
//   - ImageDir: durable directory note cover images are cached into.
type Config struct {
	DatabasePath string
	ImageDir     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "notekeeper.db"
	c.ImageDir = "images"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if jsonPath is non-empty) and the environment. Later sources
// take precedence over earlier ones. Command-line flags are handled by the
// CLI layer on top of the result.
func LoadConfig(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, jsonPath); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
