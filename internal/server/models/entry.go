package models

import (
	"strings"
	"time"
)

// Entry is a diary entry owned by one user. AIInsight is empty until an
// insight has been generated.
type Entry struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	AIInsight string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Text joins title and content the way prompts and similarity ranking see
// an entry.
func (e *Entry) Text() string {
	return strings.TrimSpace(e.Title + "\n\n" + e.Content)
}
