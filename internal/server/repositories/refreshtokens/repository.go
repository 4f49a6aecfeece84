// Package refreshtokens stores the refresh tokens issued at sign-in. Tokens
// are single use: the identity service deletes one as it rotates it.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new refresh token for userID that expires at expires.
	Create(ctx context.Context, userID string, token string, expires time.Time) error

	// Find returns common.ErrNotFound for unknown tokens. Expired tokens are
	// still returned; callers check Expired.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}
