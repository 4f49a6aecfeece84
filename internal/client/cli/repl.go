package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	New(ctx context.Context) error
	Open(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Status(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until the
// user types "exit" or "quit" or input ends.
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - (l)ist         list entries, newest first
//	  - new            write a new entry
//	  - open [id]      open an entry in the editor
//	  - delete [id]    delete an entry
//	  - status         show whether the AI advisor is reachable
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("diary %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please log in first (type 'help' for commands)")
			}
		} else {
			switch cmd {
			case "help":
				printlnFn("Available commands: (l)ist, new, open <id>, delete <id>, status, logout, exit")
			case "l", "list":
				_ = a.List(ctx)
			case "new":
				_ = a.New(ctx)
			case "open":
				_ = a.Open(ctx, arg)
			case "delete":
				_ = a.Delete(ctx, arg)
			case "status":
				_ = a.Status(ctx)
			case "logout":
				_ = a.Logout(ctx)
			case "register", "login":
				printlnFn(msgAlreadyInside)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
		}

		if err != nil {
			return
		}
	}
}
