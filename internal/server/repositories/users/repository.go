// Package users declares the server-side repository contract for accounts
// and its Postgres and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

// Repository stores accounts.
type Repository interface {
	// Create inserts user. A duplicate email yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns common.ErrNotFound when no account uses email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns common.ErrNotFound when id is unknown.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
