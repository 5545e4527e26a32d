// Package config holds runtime settings for the gamefolio CLI.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - AdminFingerprint: hex SHA-256 digest the credential gate compares
//     entered secrets against. Only the digest ships with the client.
//   - RequestTimeout: per-request deadline for store calls.
//   - Language: initial locale tag ("en" or "nl").
type Config struct {
	ServerEndpointAddr string
	AdminFingerprint   string
	RequestTimeout     time.Duration
	Language           string
}

// LoadDefaults populates c with sensible defaults. The default fingerprint
// matches the demo secret "admin123" and is meant to be replaced in any
// real deployment.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.AdminFingerprint = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	c.RequestTimeout = 10 * time.Second
	c.Language = "en"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
