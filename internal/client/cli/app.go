package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/config"
	"github.com/dmitrijs2005/diarykeeper/internal/client/dashboard"
	"github.com/dmitrijs2005/diarykeeper/internal/client/session"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Sessions is the part of session.Manager the CLI uses.
type Sessions interface {
	Current() *session.Session
	WaitReady(ctx context.Context) error
	Subscribe(fn session.Listener) func()
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}

type App struct {
	config   *config.Config
	sessions Sessions
	api      client.Client
	listing  *dashboard.Listing
	logger   logging.Logger
	reader   *bufio.Reader

	// mu serialises writes to out; AI results are printed from goroutines.
	mu   sync.Mutex
	out  io.Writer
	Mode Mode

	// bg tracks background AI requests.
	bg sync.WaitGroup
}

func NewApp(c *config.Config, sessions Sessions, api client.Client, logger logging.Logger) *App {
	return &App{
		config:   c,
		sessions: sessions,
		api:      api,
		listing:  dashboard.New(api, logger),
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

// Run waits for the session to settle, then runs the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.println("Welcome to diarykeeper (type 'help' for commands)")

	if err := a.sessions.WaitReady(ctx); err != nil {
		return err
	}

	unsubscribe := a.sessions.Subscribe(func(s *session.Session) {
		if s == nil {
			a.logger.Debug(ctx, "signed out")
			return
		}
		a.logger.Debug(ctx, "signed in", "user_id", s.ID)
	})
	defer unsubscribe()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	if s := a.sessions.Current(); s != nil {
		a.printf("Signed in as %s\n", s.Name())
		_ = a.List(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) getStatus() string {
	s := ""
	if cur := a.sessions.Current(); cur != nil {
		s = cur.Email + " "
	}
	if m := a.mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval and updates Mode
// until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.checkOnline(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
