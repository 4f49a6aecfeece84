// Package entries declares the repository contract for diary entries and
// its Postgres and in-memory implementations. Every lookup is scoped to the
// owning user: another user's entry is indistinguishable from a missing one.
package entries

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

type Repository interface {
	// List returns the user's entries, newest first.
	List(ctx context.Context, userID string) ([]models.Entry, error)

	// Get returns common.ErrNotFound unless id exists and belongs to userID.
	Get(ctx context.Context, userID, id string) (*models.Entry, error)

	Create(ctx context.Context, entry *models.Entry) error

	// Update writes title, content, ai_insight and updated_at of entry.
	// It returns common.ErrNotFound when no row of entry.UserID matches.
	Update(ctx context.Context, entry *models.Entry) error

	// Delete returns common.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, userID, id string) error
}
