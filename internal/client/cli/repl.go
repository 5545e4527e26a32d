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
	isPrivileged() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Filter(ctx context.Context, label string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	Language(ctx context.Context, lang string) error
	About(ctx context.Context) error
	SetAbout(ctx context.Context) error
	ClearAbout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the gamefolio CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands are always available; mutating commands (add, edit,
// delete, setabout, clearabout) additionally appear once the credential
// gate has granted the privilege flag; handlers refuse on their own when
// it has not.
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gf %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isPrivileged() {
				printlnFn("Available commands: (l)ist, show, games <category>, categories, addcat, lang <en|nl>, about, add, edit, delete, setabout, clearabout, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, show, games <category>, categories, lang <en|nl>, about, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "games":
			if len(args) == 0 {
				printlnFn("Usage: games <category>")
				continue
			}
			_ = a.Filter(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "addcat":
			_ = a.AddCategory(ctx)

		case "lang":
			if len(args) == 0 {
				printlnFn("Usage: lang <en|nl>")
				continue
			}
			_ = a.Language(ctx, args[0])

		case "about":
			_ = a.About(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "setabout":
			_ = a.SetAbout(ctx)

		case "clearabout":
			_ = a.ClearAbout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
