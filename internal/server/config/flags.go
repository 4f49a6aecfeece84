package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN (empty keeps data in memory)
//	-s string   JWT HMAC secret key
//	-k string   identity API key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-o string   Ollama base URL
//	-m string   Ollama model
//	-w int      Ollama request timeout, seconds
//	-l string   log level
//	-f string   log format (json or text)
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Token lifetimes are given in minutes, the Ollama timeout in seconds.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-k", "-t", "-r", "-o", "-m", "-w", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.APIKey, "k", config.APIKey, "identity API key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.OllamaURL, "o", config.OllamaURL, "Ollama base URL")
	fs.StringVar(&config.OllamaModel, "m", config.OllamaModel, "Ollama model")
	ollamaTimeout := fs.Int("w", int(config.OllamaTimeout.Seconds()), "Ollama request timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json, text)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.OllamaTimeout = time.Duration(*ollamaTimeout) * time.Second
}
