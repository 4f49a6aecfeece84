package session

import (
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/timex"
)

// Config selects and tunes the identity provider.
type Config struct {
	// APIKey is the identity provider key. Empty selects the mock provider.
	APIKey      string
	MockDelay   time.Duration
	SessionFile string
}

// Mock reports whether cfg selects the development provider.
func (cfg Config) Mock() bool {
	return cfg.APIKey == ""
}

// NewProvider picks the provider for cfg. auth is only used by the remote
// provider and may be nil in mock mode.
func NewProvider(cfg Config, auth client.AuthClient, clock timex.Clock, logger logging.Logger) Provider {
	if cfg.Mock() {
		return NewMockProvider(clock, cfg.MockDelay)
	}

	var store TokenStore = &MemoryTokenStore{}
	if cfg.SessionFile != "" {
		store = NewFileTokenStore(cfg.SessionFile)
	}
	return NewRemoteProvider(auth, store, WithClock(clock), WithLogger(logger))
}
