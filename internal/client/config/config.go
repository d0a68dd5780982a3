// Package config loads runtime settings for the CareerMate CLI.
package config

import "time"

// Config holds runtime settings for the CareerMate CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DataDir: directory for the local state database and secret file.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DataDir            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
