package session

import (
	"context"
)

// Session is the authenticated principal. It is immutable; every provider
// notification carries a fresh value.
type Session struct {
	ID          string
	Email       string
	DisplayName string

	token func(ctx context.Context) (string, error)
}

// New builds a Session whose bearer credential is produced by token.
func New(id, email, displayName string, token func(ctx context.Context) (string, error)) *Session {
	return &Session{ID: id, Email: email, DisplayName: displayName, token: token}
}

// Token returns a bearer credential for the Diary API.
func (s *Session) Token(ctx context.Context) (string, error) {
	if s == nil || s.token == nil {
		return "", errNoSession
	}
	return s.token(ctx)
}

// Name returns the display name, or the email when none is set.
func (s *Session) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// Listener receives the new current session; nil means signed out.
type Listener func(*Session)

// Provider is an identity backend. Providers report every change of the
// signed-in principal through the listeners registered with Subscribe, and
// only there: SignIn, SignUp and SignOut return errors but never a session.
type Provider interface {
	// Subscribe registers fn and arranges for it to receive the current
	// state at least once. The returned func detaches fn.
	Subscribe(fn Listener) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}
