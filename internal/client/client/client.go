package client

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// Client is the Diary API as seen by the editor and dashboard.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListEntries(ctx context.Context) ([]models.Entry, error)
	GetEntry(ctx context.Context, id string) (models.Entry, error)
	CreateEntry(ctx context.Context, title, content string) (models.Entry, error)
	UpdateEntry(ctx context.Context, id, title, content string) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	RequestInsight(ctx context.Context, id string) (string, error)
	RequestRecommendation(ctx context.Context, title, content string) (string, error)
	AdvisorStatus(ctx context.Context) (models.AdvisorStatus, error)
}

// AuthClient is the identity service used by the remote session provider.
type AuthClient interface {
	SignUp(ctx context.Context, email, password, displayName string) (models.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
}

// TokenSource supplies the bearer credential attached to Diary API calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
