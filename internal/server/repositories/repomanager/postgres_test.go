package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresManager_Factories(t *testing.T) {
	db, _ := newDB(t)

	var m RepositoryManager = NewPostgresRepositoryManager(db)

	assert.IsType(t, &users.PostgresRepository{}, m.Users())
	assert.IsType(t, &refreshtokens.PostgresRepository{}, m.RefreshTokens())
	assert.IsType(t, &entries.PostgresRepository{}, m.Entries())
}

func TestPostgresManager_WithTxCommits(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM refresh_tokens").WithArgs("old").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := m.WithTx(context.Background(), func(ctx context.Context, tx RepositoryManager) error {
		inner, ok := tx.(*PostgresRepositoryManager)
		require.True(t, ok)
		assert.True(t, inner.inTx)

		// nested calls reuse the transaction
		return tx.WithTx(ctx, func(ctx context.Context, tx RepositoryManager) error {
			return tx.RefreshTokens().Delete(ctx, "old")
		})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresManager_WithTxRollsBack(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := m.WithTx(context.Background(), func(context.Context, RepositoryManager) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, _ := newDB(t)
	m := NewPostgresRepositoryManager(db)

	orig := gooseRun
	t.Cleanup(func() { gooseRun = orig })

	var gotCommand, gotDir string
	gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
		gotCommand, gotDir = command, dir
		return nil
	}

	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, "up", gotCommand)
	assert.Equal(t, ".", gotDir)

	require.NoError(t, m.Migrate(context.Background(), "status"))
	assert.Equal(t, "status", gotCommand)

	gooseRun = func(context.Context, string, *sql.DB, string, ...string) error { return errors.New("boom") }
	assert.EqualError(t, m.RunMigrations(context.Background()), "boom")
}

func TestMemoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background()))

	err := m.WithTx(context.Background(), func(ctx context.Context, tx RepositoryManager) error {
		assert.Same(t, m.users, tx.Users())
		return tx.WithTx(ctx, func(context.Context, RepositoryManager) error { return nil })
	})
	require.NoError(t, err)
	require.NoError(t, m.Close())
}
