package config

import "time"

// Config holds runtime settings for the AGRO storefront CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout for the HTTP client; zero means
//     no client-side timeout.
//   - DatabasePath: path of the local sqlite database holding the
//     credential token.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 0
	c.DatabasePath = "agro.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
