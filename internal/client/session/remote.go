package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultRefreshSkew is how long before expiry an access token is renewed.
const DefaultRefreshSkew = 30 * time.Second

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// principal reads the identity carried by an access token. The signature is
// not checked here; the server verifies every call.
func principal(accessToken string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, common.WrapError(common.ErrServer, err, "malformed access token")
	}
	if claims.Subject == "" {
		return nil, common.NewError(common.ErrServer, "access token has no subject")
	}
	return claims, nil
}

// tokenKeeper holds one session's token pair and renews the access token
// shortly before it expires.
type tokenKeeper struct {
	auth  client.AuthClient
	store TokenStore
	clock timex.Clock
	skew  time.Duration

	mu   sync.Mutex
	pair models.TokenPair
}

func (k *tokenKeeper) token(ctx context.Context) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pair.ExpiresAt.IsZero() || k.clock.Now().Add(k.skew).Before(k.pair.ExpiresAt) {
		return k.pair.AccessToken, nil
	}

	pair, err := k.auth.Refresh(ctx, k.pair.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	k.pair = pair
	if err := k.store.Save(pair.RefreshToken); err != nil {
		return "", fmt.Errorf("persist refresh token: %w", err)
	}
	return pair.AccessToken, nil
}

func (k *tokenKeeper) refreshToken() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pair.RefreshToken
}

// RemoteProvider signs in against the identity service and keeps the
// refresh token in a TokenStore so the session survives restarts.
type RemoteProvider struct {
	auth   client.AuthClient
	store  TokenStore
	clock  timex.Clock
	logger logging.Logger
	skew   time.Duration

	// rounds serialises deliveries so every listener sees changes in order.
	// Listeners must not call back into the provider.
	rounds sync.Mutex

	mu       sync.Mutex
	b        broadcaster
	started  bool
	notified bool
	current  *Session
	keeper   *tokenKeeper
}

type RemoteOption func(*RemoteProvider)

func WithClock(c timex.Clock) RemoteOption {
	return func(p *RemoteProvider) {
		if c != nil {
			p.clock = c
		}
	}
}

func WithRefreshSkew(d time.Duration) RemoteOption {
	return func(p *RemoteProvider) { p.skew = d }
}

func WithLogger(l logging.Logger) RemoteOption {
	return func(p *RemoteProvider) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewRemoteProvider(auth client.AuthClient, store TokenStore, opts ...RemoteOption) *RemoteProvider {
	p := &RemoteProvider{
		auth:   auth,
		store:  store,
		clock:  timex.RealClock{},
		logger: logging.Nop(),
		skew:   DefaultRefreshSkew,
	}
	for _, o := range opts {
		o(p)
	}
	if p.store == nil {
		p.store = &MemoryTokenStore{}
	}
	return p
}

// Subscribe registers fn. The first subscription restores a stored session
// in the background and then notifies every listener; later subscriptions
// receive the current state before Subscribe returns once that has happened.
func (p *RemoteProvider) Subscribe(fn Listener) func() {
	p.rounds.Lock()
	defer p.rounds.Unlock()

	p.mu.Lock()
	unsubscribe := p.b.add(fn)
	first := !p.started
	p.started = true
	notified, current := p.notified, p.current
	p.mu.Unlock()

	switch {
	case first:
		go p.restore(context.Background())
	case notified:
		fn(current)
	}
	return unsubscribe
}

func (p *RemoteProvider) restore(ctx context.Context) {
	var (
		s      *Session
		keeper *tokenKeeper
	)

	refresh, err := p.store.Load()
	if err != nil {
		p.logger.Warn(ctx, "load stored session", "error", err)
	}
	if refresh != "" {
		pair, err := p.auth.Refresh(ctx, refresh)
		switch {
		case err == nil:
			s, keeper, err = p.sessionFor(pair)
			if err != nil {
				p.logger.Warn(ctx, "restore session", "error", err)
			}
		case errors.Is(err, common.ErrUnauthorized):
			p.logger.Info(ctx, "stored session expired")
			if err := p.store.Clear(); err != nil {
				p.logger.Warn(ctx, "clear stored session", "error", err)
			}
		default:
			p.logger.Warn(ctx, "restore session", "error", err)
		}
	}

	p.rounds.Lock()
	defer p.rounds.Unlock()

	p.mu.Lock()
	if p.notified {
		// A sign-in or sign-out finished first; it wins.
		p.mu.Unlock()
		return
	}
	p.setLocked(s, keeper)
	listeners := p.b.snapshot()
	p.mu.Unlock()

	deliver(listeners, s)
}

func (p *RemoteProvider) sessionFor(pair models.TokenPair) (*Session, *tokenKeeper, error) {
	claims, err := principal(pair.AccessToken)
	if err != nil {
		return nil, nil, err
	}
	if pair.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
		pair.ExpiresAt = claims.ExpiresAt.Time
	}
	if err := p.store.Save(pair.RefreshToken); err != nil {
		return nil, nil, fmt.Errorf("persist refresh token: %w", err)
	}

	k := &tokenKeeper{auth: p.auth, store: p.store, clock: p.clock, skew: p.skew, pair: pair}
	return New(claims.Subject, claims.Email, claims.Name, k.token), k, nil
}

func (p *RemoteProvider) setLocked(s *Session, k *tokenKeeper) {
	p.current = s
	p.keeper = k
	p.notified = true
}

func (p *RemoteProvider) publish(s *Session, k *tokenKeeper) {
	p.rounds.Lock()
	defer p.rounds.Unlock()

	p.mu.Lock()
	p.setLocked(s, k)
	listeners := p.b.snapshot()
	p.mu.Unlock()

	deliver(listeners, s)
}

func (p *RemoteProvider) signedIn(pair models.TokenPair) error {
	s, k, err := p.sessionFor(pair)
	if err != nil {
		return err
	}
	p.publish(s, k)
	return nil
}

func (p *RemoteProvider) SignIn(ctx context.Context, email, password string) error {
	pair, err := p.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return p.signedIn(pair)
}

func (p *RemoteProvider) SignUp(ctx context.Context, email, password string) error {
	pair, err := p.auth.SignUp(ctx, email, password, "")
	if err != nil {
		return err
	}
	return p.signedIn(pair)
}

// SignOut revokes the refresh token on the server and then forgets the
// local session. When revocation fails the session is kept, no listener is
// notified and the error is returned.
func (p *RemoteProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	k := p.keeper
	p.mu.Unlock()

	if k != nil {
		if err := p.auth.SignOut(ctx, k.refreshToken()); err != nil {
			p.logger.Warn(ctx, "revoke refresh token", "error", err)
			return err
		}
	}
	if err := p.store.Clear(); err != nil {
		p.logger.Warn(ctx, "clear stored session", "error", err)
	}

	p.publish(nil, nil)
	return nil
}

var _ Provider = (*RemoteProvider)(nil)
