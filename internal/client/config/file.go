package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/flagx"
	"github.com/dmitrijs2005/diarykeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration. Durations accept
// strings like "3s" or integer nanoseconds. Absent keys leave the current
// value untouched.
type fileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	IdentityAPIKey      string         `json:"identity_api_key" yaml:"identity_api_key"`
	MockLoginDelay      timex.Duration `json:"mock_login_delay" yaml:"mock_login_delay"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SessionFile         string         `json:"session_file" yaml:"session_file"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON. It panics when the
// file cannot be read or decoded.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.IdentityAPIKey != "" {
		cfg.IdentityAPIKey = fc.IdentityAPIKey
	}
	if fc.MockLoginDelay.Duration > 0 {
		cfg.MockLoginDelay = fc.MockLoginDelay.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SessionFile != "" {
		cfg.SessionFile = fc.SessionFile
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
