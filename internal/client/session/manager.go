package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

var errNoSession = common.NewError(common.ErrUnauthorized, "not signed in")

// Manager owns the process-wide authentication state. It subscribes to a
// Provider once and mirrors its notifications; it never sets the session on
// its own.
type Manager struct {
	provider Provider
	logger   logging.Logger

	initOnce  sync.Once
	readyOnce sync.Once
	closeOnce sync.Once
	ready     chan struct{}

	mu          sync.RWMutex
	current     *Session
	loading     bool
	closed      bool
	unsubscribe func()
	b           broadcaster
}

func NewManager(provider Provider, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{
		provider: provider,
		logger:   logger,
		loading:  true,
		ready:    make(chan struct{}),
	}
}

// Initialize subscribes to the provider. Only the first call has an effect.
func (m *Manager) Initialize() {
	m.initOnce.Do(func() {
		unsubscribe := m.provider.Subscribe(m.onChange)

		m.mu.Lock()
		m.unsubscribe = unsubscribe
		m.mu.Unlock()
	})
}

func (m *Manager) onChange(s *Session) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.current = s
	m.loading = false
	listeners := m.b.snapshot()
	m.mu.Unlock()

	m.readyOnce.Do(func() { close(m.ready) })

	if s != nil {
		m.logger.Debug(context.Background(), "session changed", "user_id", s.ID)
	} else {
		m.logger.Debug(context.Background(), "session cleared")
	}

	deliver(listeners, s)
}

// Current returns the signed-in session, or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Loading reports whether the provider has not notified yet.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) Authenticated() bool {
	return m.Current() != nil
}

// WaitReady blocks until the first provider notification or until ctx is
// done.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe registers fn for every subsequent session change.
func (m *Manager) Subscribe(fn Listener) func() {
	return m.b.add(fn)
}

func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	return m.provider.SignIn(ctx, email, password)
}

func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	return m.provider.SignUp(ctx, email, password)
}

func (m *Manager) SignOut(ctx context.Context) error {
	return m.provider.SignOut(ctx)
}

// Token returns the current session's bearer credential. It fails with an
// ErrUnauthorized error when nobody is signed in.
func (m *Manager) Token(ctx context.Context) (string, error) {
	s := m.Current()
	if s == nil {
		return "", errNoSession
	}
	return s.Token(ctx)
}

// Close detaches the manager from the provider. Notifications that arrive
// afterwards are ignored.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		unsubscribe := m.unsubscribe
		m.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}
	})
}
