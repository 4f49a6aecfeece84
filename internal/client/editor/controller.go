// Package editor holds the workflow controller for a single diary entry:
// loading, editing, saving and the two AI enrichment requests.
package editor

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

// API is the part of the Diary API the editor uses.
type API interface {
	GetEntry(ctx context.Context, id string) (models.Entry, error)
	CreateEntry(ctx context.Context, title, content string) (models.Entry, error)
	UpdateEntry(ctx context.Context, id, title, content string) (models.Entry, error)
	RequestInsight(ctx context.Context, id string) (string, error)
	RequestRecommendation(ctx context.Context, title, content string) (string, error)
}

// Controller owns one entry buffer for the lifetime of an editor view.
//
// All methods are safe for concurrent use. Operations block until their
// request resolves; callers that want overlap run them on goroutines.
// Requests of the same kind are not deduplicated and the one that resolves
// last wins.
type Controller struct {
	api    API
	logger logging.Logger

	mu             sync.Mutex
	entry          models.Entry
	state          State
	insight        Phase
	recommendation Phase
	saving         int
	insights       int
	recommends     int
	gen            int
	closed         bool
	observers      []func(Snapshot)
}

func New(api API, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{api: api, logger: logger}
}

// OnChange registers fn to be called with a fresh snapshot after every
// transition. Observers are not called once the controller is closed.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Entry:          c.entry,
		State:          c.state,
		Insight:        c.insight,
		Recommendation: c.recommendation,
		Flags: Flags{
			Saving:                c.saving > 0,
			LoadingInsight:        c.insights > 0,
			LoadingRecommendation: c.recommends > 0,
		},
	}
}

// unlockAndNotify releases c.mu and informs observers of the new state.
func (c *Controller) unlockAndNotify() {
	if c.closed {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// Close discards the controller. Requests already in flight are not
// cancelled, but their results are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.observers = nil
}

func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

/**** load ****/

// Load fetches the entry with the given id into the buffer. On failure the
// buffer is emptied, the state becomes StateNotFound and the outcome asks
// the caller to leave the view.
func (c *Controller) Load(ctx context.Context, id string) Outcome {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return discarded
	}
	c.gen++
	gen := c.gen
	c.entry = models.Entry{}
	c.state = StateLoading
	c.insight = PhaseIdle
	c.recommendation = PhaseIdle
	// AI requests started for the previous entry resolve as discarded and
	// no longer count as outstanding.
	c.insights = 0
	c.recommends = 0
	c.unlockAndNotify()

	entry, err := c.api.GetEntry(ctx, id)

	c.mu.Lock()
	if c.closed || c.gen != gen {
		c.mu.Unlock()
		return discarded
	}
	if err != nil {
		c.entry = models.Entry{}
		c.state = StateNotFound
		c.unlockAndNotify()

		c.logger.Warn(ctx, "load entry", "id", id, "error", err)
		o := failed(err, MsgLoadFailed)
		o.Leave = true
		return o
	}

	c.entry = entry
	c.state = StateLoaded
	if entry.AIInsight != "" {
		c.insight = PhaseAvailable
	}
	c.unlockAndNotify()
	return Outcome{}
}

/**** editing ****/

func (c *Controller) SetTitle(title string) {
	c.edit(func(e *models.Entry) { e.Title = title })
}

func (c *Controller) SetContent(content string) {
	c.edit(func(e *models.Entry) { e.Content = content })
}

func (c *Controller) edit(apply func(*models.Entry)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	apply(&c.entry)
	switch c.state {
	case StateEmpty, StateLoaded:
		c.state = StateDirty
	}
	c.unlockAndNotify()
}

/**** save ****/

// Save creates the entry when it has no id yet and updates it otherwise.
// Blank title or content fails with an ErrValidation outcome before any
// request is made. On success the outcome asks the caller to leave.
func (c *Controller) Save(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return discarded
	}
	if !c.entry.Complete() {
		c.mu.Unlock()
		return failed(common.NewError(common.ErrValidation, MsgFillRequired), MsgFillRequired)
	}
	id, title, content, gen := c.entry.ID, c.entry.Title, c.entry.Content, c.gen
	c.saving++
	c.state = StateSaving
	c.unlockAndNotify()

	var (
		saved models.Entry
		err   error
	)
	if id == "" {
		saved, err = c.api.CreateEntry(ctx, title, content)
	} else {
		saved, err = c.api.UpdateEntry(ctx, id, title, content)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return discarded
	}
	c.saving--

	if c.gen != gen {
		// Another entry was loaded meanwhile; the buffer is no longer ours.
		c.unlockAndNotify()
		if err != nil {
			return failedWithDetail(err, MsgSaveFailed)
		}
		return succeeded(saveMessage(id))
	}

	if err != nil {
		if c.saving == 0 {
			c.state = StateDirty
		}
		c.unlockAndNotify()

		c.logger.Warn(ctx, "save entry", "id", id, "error", err)
		return failedWithDetail(err, MsgSaveFailed)
	}

	if c.entry.ID == "" || c.entry.ID == id {
		c.entry.ID = saved.ID
		c.entry.CreatedAt = saved.CreatedAt
		c.entry.UpdatedAt = saved.UpdatedAt
		if saved.AIInsight != "" {
			c.entry.AIInsight = saved.AIInsight
		}
	}
	if c.saving == 0 {
		if c.entry.Title == title && c.entry.Content == content {
			c.state = StateLoaded
		} else {
			c.state = StateDirty
		}
	}
	c.unlockAndNotify()

	o := succeeded(saveMessage(id))
	o.Leave = true
	return o
}

func saveMessage(id string) string {
	if id == "" {
		return MsgCreated
	}
	return MsgUpdated
}

/**** AI ****/

// RequestInsight asks the server for an insight on the saved entry and
// stores it in the buffer, replacing any previous one.
func (c *Controller) RequestInsight(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return discarded
	}
	if c.entry.ID == "" {
		c.mu.Unlock()
		return failed(common.NewError(common.ErrPrecondition, MsgSaveFirst), MsgSaveFirst)
	}
	id, gen := c.entry.ID, c.gen
	c.insights++
	c.insight = PhasePending
	c.unlockAndNotify()

	insight, err := c.api.RequestInsight(ctx, id)

	c.mu.Lock()
	if c.closed || c.gen != gen {
		c.mu.Unlock()
		return discarded
	}
	c.insights--

	if err != nil {
		c.insight = c.settle(c.insights, PhaseFailed)
		c.unlockAndNotify()

		c.logger.Warn(ctx, "request insight", "id", id, "error", err)
		return failedWithDetail(err, MsgInsightFailed)
	}

	c.entry.AIInsight = insight
	c.insight = c.settle(c.insights, PhaseAvailable)
	c.unlockAndNotify()
	return succeeded(MsgInsightReady)
}

// RequestRecommendation asks for writing suggestions based on the current
// buffer, saved or not. The result is kept locally and never persisted.
func (c *Controller) RequestRecommendation(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return discarded
	}
	if strings.TrimSpace(c.entry.Content) == "" {
		c.mu.Unlock()
		return failed(common.NewError(common.ErrValidation, MsgWriteSomething), MsgWriteSomething)
	}
	title, content, gen := c.entry.Title, c.entry.Content, c.gen
	c.recommends++
	c.recommendation = PhasePending
	c.unlockAndNotify()

	text, err := c.api.RequestRecommendation(ctx, title, content)

	c.mu.Lock()
	if c.closed || c.gen != gen {
		c.mu.Unlock()
		return discarded
	}
	c.recommends--

	if err != nil {
		c.recommendation = c.settle(c.recommends, PhaseFailed)
		c.unlockAndNotify()

		c.logger.Warn(ctx, "request recommendation", "error", err)
		return extendIfBackendDown(failedWithDetail(err, MsgRecommendationFailed))
	}

	c.entry.AIRecommendation = text
	c.recommendation = c.settle(c.recommends, PhaseAvailable)
	c.unlockAndNotify()
	return succeeded(MsgRecommendationReady)
}

// settle returns the phase after one request resolved: still pending while
// others are outstanding, otherwise the result of this one.
func (c *Controller) settle(outstanding int, result Phase) Phase {
	if outstanding > 0 {
		return PhasePending
	}
	return result
}
