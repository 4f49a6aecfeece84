package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Create(ctx, testUser())
	require.NoError(t, err)

	_, err = r.Create(ctx, testUser())
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	byEmail, err := r.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byEmail.ID)

	byID, err := r.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.DisplayName)

	_, err = r.GetByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = r.GetByID(ctx, "u-2")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
