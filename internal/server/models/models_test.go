package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryText(t *testing.T) {
	assert.Equal(t, "Title\n\nBody", (&Entry{Title: "Title", Content: "Body"}).Text())
	assert.Equal(t, "Body", (&Entry{Content: "Body\n"}).Text())
}

func TestRefreshTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tok := &RefreshToken{Expires: now}
	assert.True(t, tok.Expired(now))
	assert.False(t, tok.Expired(now.Add(-time.Second)))
}
