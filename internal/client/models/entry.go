// Package models holds the client-side value types shared by the session,
// editor and dashboard layers.
package models

import (
	"strings"
	"time"
)

// Entry is a diary entry as the client sees it.
//
// ID is empty until the server has created the entry. AIRecommendation is
// client-local: it is never sent back to the server on save.
type Entry struct {
	ID               string
	Title            string
	Content          string
	AIInsight        string
	AIRecommendation string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsNew reports whether the entry has not been persisted yet.
func (e Entry) IsNew() bool {
	return e.ID == ""
}

// Complete reports whether both title and content are non-blank.
func (e Entry) Complete() bool {
	return strings.TrimSpace(e.Title) != "" && strings.TrimSpace(e.Content) != ""
}

// Preview returns at most n runes of the content, flattened to one line.
func (e Entry) Preview(n int) string {
	s := strings.Join(strings.Fields(e.Content), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// AdvisorStatus reports whether the server's AI backend is reachable.
type AdvisorStatus struct {
	Available      bool
	ModelAvailable bool
	Model          string
	Models         []string
	Error          string
}

// TokenPair is what the identity service returns on sign-in, sign-up and
// refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
