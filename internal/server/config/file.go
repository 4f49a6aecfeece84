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

// fileConfig is the intermediate shape used only for reading config files.
// Durations accept strings such as "15m" or integer nanoseconds. After
// decoding, non-zero fields are copied into the runtime Config.
type fileConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                    string         `json:"secret_key" yaml:"secret_key"`
	APIKey                       string         `json:"api_key" yaml:"api_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration" yaml:"refresh_token_validity_duration"`
	OllamaURL                    string         `json:"ollama_url" yaml:"ollama_url"`
	OllamaModel                  string         `json:"ollama_model" yaml:"ollama_model"`
	OllamaTimeout                timex.Duration `json:"ollama_timeout" yaml:"ollama_timeout"`
	LogLevel                     string         `json:"log_level" yaml:"log_level"`
	LogFormat                    string         `json:"log_format" yaml:"log_format"`
}

// parseFile loads configuration values from the file named by the -c or
// -config flag. If neither is set, nothing is loaded. Files ending in .yaml
// or .yml are decoded as YAML, anything else as JSON.
//
// It panics if the file cannot be read or decoded.
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
	if fc.EndpointAddrGRPC != "" {
		cfg.EndpointAddrGRPC = fc.EndpointAddrGRPC
	}
	if fc.DatabaseDSN != "" {
		cfg.DatabaseDSN = fc.DatabaseDSN
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.RefreshTokenValidityDuration.Duration > 0 {
		cfg.RefreshTokenValidityDuration = fc.RefreshTokenValidityDuration.Duration
	}
	if fc.OllamaURL != "" {
		cfg.OllamaURL = fc.OllamaURL
	}
	if fc.OllamaModel != "" {
		cfg.OllamaModel = fc.OllamaModel
	}
	if fc.OllamaTimeout.Duration > 0 {
		cfg.OllamaTimeout = fc.OllamaTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
}
