package config

import "time"

// Config holds runtime settings for the CMSKeeper console.
//
// Fields:
//   - ServerURL: base URL of the backend (scheme://host:port, no /api suffix).
//   - RequestTimeout: per-request deadline for backend calls.
//   - ProfileDir: directory for the local profile database. Empty means a
//     per-user default resolved by the profile package.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	ProfileDir     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.ProfileDir = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
