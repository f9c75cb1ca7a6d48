// Package config assembles runtime settings for the wikictl client.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional JSON file (-c/-config), environment variables, command-line
// flags.
package config

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api
//     prefix.
//   - DatabasePath: SQLite file holding the client's local store (token,
//     avatar overrides, cached identity).
type Config struct {
	APIBaseURL   string `env:"WIKICTL_API_URL" json:"api_base_url"`
	DatabasePath string `env:"WIKICTL_DB_PATH" json:"database_path"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "wikictl.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
