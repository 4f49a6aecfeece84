package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the diarykeeper terminal client.
type Config struct {
	// ServerEndpointAddr is host:port of the backend gRPC endpoint.
	ServerEndpointAddr string
	// IdentityAPIKey enables the remote identity provider. Empty selects the
	// development mock.
	IdentityAPIKey string
	// MockLoginDelay is how long the mock takes to report its initial user.
	MockLoginDelay time.Duration
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
	// SessionFile stores the refresh token between runs. Empty keeps the
	// session in memory only.
	SessionFile string
	// OnlineCheckInterval is how often the client probes the server.
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.IdentityAPIKey = ""
	c.MockLoginDelay = 100 * time.Millisecond
	c.RequestTimeout = 30 * time.Second
	c.SessionFile = defaultSessionFile()
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "diarykeeper", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
