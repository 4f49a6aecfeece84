package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. WithTx
// serialises transactional work but cannot roll back.
type MemoryRepositoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
	entries       *entries.MemoryRepository

	txMu *sync.Mutex
	inTx bool
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
		entries:       entries.NewMemoryRepository(),
		txMu:          &sync.Mutex{},
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *MemoryRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	if m.inTx {
		return fn(ctx, m)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := *m
	tx.inTx = true
	return fn(ctx, &tx)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
