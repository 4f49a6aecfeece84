// Package dashboard keeps the list of the signed-in user's entries.
package dashboard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/client/editor"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

const (
	MsgLoadFailed   = "Failed to load diaries"
	MsgDeleted      = "Diary deleted successfully"
	MsgDeleteFailed = "Failed to delete diary"
)

type API interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// Listing is the dashboard's view of the entries, newest first as returned
// by the server.
type Listing struct {
	api    API
	logger logging.Logger

	mu      sync.RWMutex
	entries []models.Entry
	loaded  bool
}

func New(api API, logger logging.Logger) *Listing {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Listing{api: api, logger: logger}
}

// Load replaces the listing with the server's. On failure the previous
// listing is kept.
func (l *Listing) Load(ctx context.Context) editor.Outcome {
	entries, err := l.api.ListEntries(ctx)
	if err != nil {
		l.logger.Warn(ctx, "list entries", "error", err)
		return failure(err, MsgLoadFailed)
	}

	l.mu.Lock()
	l.entries = entries
	l.loaded = true
	l.mu.Unlock()
	return editor.Outcome{}
}

// Entries returns a copy of the current listing.
func (l *Listing) Entries() []models.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Entry(nil), l.entries...)
}

func (l *Listing) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Find returns the listed entry with the given id.
func (l *Listing) Find(id string) (models.Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

// Delete removes the entry on the server and, once that succeeded, from the
// listing. Deletion cannot be undone. On failure the listing is unchanged
// and the outcome carries a generic message; the error keeps its kind.
func (l *Listing) Delete(ctx context.Context, id string) editor.Outcome {
	if err := l.api.DeleteEntry(ctx, id); err != nil {
		l.logger.Warn(ctx, "delete entry", "id", id, "error", err)
		return failure(err, MsgDeleteFailed)
	}

	l.mu.Lock()
	kept := l.entries[:0:0]
	for _, e := range l.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.entries = kept
	l.mu.Unlock()

	return editor.Outcome{Notice: editor.Notice{
		Level:    editor.LevelSuccess,
		Message:  MsgDeleted,
		Duration: editor.SuccessDuration,
	}}
}

func failure(err error, msg string) editor.Outcome {
	return editor.Outcome{Err: err, Notice: editor.Notice{
		Level:    editor.LevelError,
		Message:  msg,
		Duration: editor.ErrorDuration,
	}}
}
