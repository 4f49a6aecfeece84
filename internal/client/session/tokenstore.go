package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/filex"
)

// TokenStore persists the refresh token between runs.
type TokenStore interface {
	// Load returns the stored refresh token, or "" when there is none.
	Load() (string, error)
	Save(refreshToken string) error
	Clear() error
}

type storedSession struct {
	RefreshToken string    `json:"refresh_token"`
	SavedAt      time.Time `json:"saved_at"`
}

// FileTokenStore keeps the refresh token in a JSON file readable only by
// the current user.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	return st.RefreshToken, nil
}

func (s *FileTokenStore) Save(refreshToken string) error {
	data, err := json.Marshal(storedSession{RefreshToken: refreshToken, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(s.path, data, 0o600)
}

func (s *FileTokenStore) Clear() error {
	return filex.RemoveIfExists(s.path)
}

// MemoryTokenStore keeps the token for the lifetime of the process only.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = refreshToken
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}
