package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) List(context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}

func (f *fakeExec) New(context.Context) error {
	f.calls = append(f.calls, "new")
	return nil
}

func (f *fakeExec) Open(_ context.Context, id string) error {
	f.calls = append(f.calls, "open:"+id)
	return nil
}

func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return nil
}

func (f *fakeExec) Status(context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func captureREPL(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_LoggedOut(t *testing.T) {
	printed := captureREPL(t)
	f := &fakeExec{}

	in := bufio.NewReader(strings.NewReader("help\nlist\nlogin\nexit\n"))
	runREPL(context.Background(), f, func() string { return "" }, in)

	assert.Equal(t, []string{"login"}, f.calls)
	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, "Available commands: register, login, exit")
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_LoggedInDispatch(t *testing.T) {
	captureREPL(t)
	f := &fakeExec{loggedIn: true}

	in := bufio.NewReader(strings.NewReader("l\nlist\nnew\nopen e1\ndelete e2\nopen\nstatus\n\nlogout\nquit\n"))
	runREPL(context.Background(), f, func() string { return "(x)" }, in)

	assert.Equal(t, []string{"list", "list", "new", "open:e1", "delete:e2", "open:", "status", "logout"}, f.calls)
}

func TestRunREPL_RegisterWhileSignedIn(t *testing.T) {
	printed := captureREPL(t)
	f := &fakeExec{loggedIn: true}

	in := bufio.NewReader(strings.NewReader("register\nfoo\n"))
	runREPL(context.Background(), f, func() string { return "" }, in)

	assert.Empty(t, f.calls)
	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, msgAlreadyInside)
	assert.Contains(t, out, "Unknown command: foo")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	captureREPL(t)
	f := &fakeExec{loggedIn: true}

	in := bufio.NewReader(strings.NewReader("list"))
	runREPL(context.Background(), f, func() string { return "" }, in)

	assert.Equal(t, []string{"list"}, f.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	printed := captureREPL(t)
	f := &fakeExec{}

	in := bufio.NewReader(strings.NewReader("exit\n"))
	runREPL(context.Background(), f, func() string { return "(online)" }, in)

	assert.Equal(t, "diary (online)> ", (*printed)[0])
}
