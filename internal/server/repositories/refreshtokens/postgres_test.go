package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expires := time.Now().Add(30 * time.Minute)

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\s*\(user_id,token,expires_at\)\s*VALUES\s*\(\$1,\$2,\$3\)$`
	mock.ExpectExec(q).
		WithArgs("u1", "tok123", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), "u1", "tok123", expires))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), "u1", "tok123", time.Now())
	require.Error(t, err)
	assert.Regexp(t, `error performing sql request: .*db down`, err.Error())
}

func TestFind_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+user_id,\s*expires_at\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1$`
	expires := time.Now().Add(10 * time.Minute)
	mock.ExpectQuery(q).
		WithArgs("tok123").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow("u1", expires))

	got, err := repo.Find(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "tok123", got.Token)
	assert.True(t, got.Expires.Equal(expires))
}

func TestFind_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM refresh_tokens`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("tok123").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "tok123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM refresh_tokens`).WillReturnError(errors.New("db down"))

	assert.Error(t, repo.Delete(context.Background(), "tok123"))
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	expires := time.Now().Add(time.Hour)

	require.NoError(t, r.Create(ctx, "u1", "t1", expires))

	got, err := r.Find(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.Expires.Equal(expires))

	require.NoError(t, r.Delete(ctx, "t1"))
	require.NoError(t, r.Delete(ctx, "t1"))

	_, err = r.Find(ctx, "t1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
