package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diarykeeper", "session.json")
	s := NewFileTokenStore(path)

	tok, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.Save("R1"))
	tok, err = s.Load()
	require.NoError(t, err)
	require.Equal(t, "R1", tok)

	require.NoError(t, s.Clear())
	tok, err = s.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.Clear())
}

func TestFileTokenStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileTokenStore(path).Load()
	require.Error(t, err)
}

func TestMemoryTokenStore(t *testing.T) {
	var s MemoryTokenStore
	require.NoError(t, s.Save("x"))
	tok, _ := s.Load()
	require.Equal(t, "x", tok)
	require.NoError(t, s.Clear())
	tok, _ = s.Load()
	require.Empty(t, tok)
}
