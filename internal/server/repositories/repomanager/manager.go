// Package repomanager vends the server repositories for one storage backend
// (PostgreSQL or process memory) and runs work against them transactionally.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Entries() entries.Repository

	// WithTx runs fn with a manager whose repositories share one
	// transaction. Nested calls reuse the outer transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error

	RunMigrations(ctx context.Context) error
	Close() error
}
