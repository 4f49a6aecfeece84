// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the diarykeeper server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps all data in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - APIKey: identity API key clients send as x-api-key. Empty disables the check.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - OllamaURL / OllamaModel / OllamaTimeout: the local model backing the AI advisor.
//   - LogLevel / LogFormat: structured logging settings.
type Config struct {
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	SecretKey                    string
	APIKey                       string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	OllamaURL                    string
	OllamaModel                  string
	OllamaTimeout                time.Duration
	LogLevel                     string
	LogFormat                    string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.APIKey = ""
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 30 * 24 * time.Hour
	c.OllamaURL = "http://localhost:11434"
	c.OllamaModel = "llama3.2:1b"
	c.OllamaTimeout = 60 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
