package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/timex"
)

// Development principal used when no identity provider is configured.
const (
	MockUserID      = "dev-user-123"
	MockEmail       = "dev@example.com"
	MockDisplayName = "Dev User"
	MockToken       = "mock-token-dev-123"

	DefaultMockDelay = 100 * time.Millisecond
)

// MockProvider is a deterministic stand-in for the identity provider. It
// starts signed in as the development principal, accepts any credentials and
// notifies synchronously from SignIn, SignUp and SignOut.
type MockProvider struct {
	clock timex.Clock
	delay time.Duration

	mu      sync.Mutex
	current *Session
	b       broadcaster
}

func NewMockProvider(clock timex.Clock, delay time.Duration) *MockProvider {
	if clock == nil {
		clock = timex.RealClock{}
	}
	if delay < 0 {
		delay = DefaultMockDelay
	}
	return &MockProvider{
		clock:   clock,
		delay:   delay,
		current: mockSession(MockEmail),
	}
}

func mockToken(context.Context) (string, error) {
	return MockToken, nil
}

func mockSession(email string) *Session {
	return New(MockUserID, email, MockDisplayName, mockToken)
}

// Subscribe registers fn and delivers the then-current session to fn alone
// once the configured delay has elapsed on the provider's clock.
func (p *MockProvider) Subscribe(fn Listener) func() {
	unsubscribe := p.b.add(fn)

	timer := p.clock.AfterFunc(p.delay, func() {
		p.mu.Lock()
		s := p.current
		p.mu.Unlock()
		fn(s)
	})

	return func() {
		timer.Stop()
		unsubscribe()
	}
}

func (p *MockProvider) set(s *Session) {
	p.mu.Lock()
	p.current = s
	listeners := p.b.snapshot()
	p.mu.Unlock()

	deliver(listeners, s)
}

func (p *MockProvider) SignIn(_ context.Context, email, _ string) error {
	p.set(mockSession(email))
	return nil
}

func (p *MockProvider) SignUp(ctx context.Context, email, password string) error {
	return p.SignIn(ctx, email, password)
}

func (p *MockProvider) SignOut(context.Context) error {
	p.set(nil)
	return nil
}

var _ Provider = (*MockProvider)(nil)
