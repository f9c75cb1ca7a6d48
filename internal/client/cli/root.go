package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.currentUser.Email, a.currentUser.Role)
}

// Root runs the interactive command loop. It reads a line, parses the first
// token as the command, and dispatches. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to wikictl (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "wikictl %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if a.dispatch(ctx, cmd, args) {
			return
		}
	}
}

// dispatch executes one command and reports whether the REPL should exit.
// Handler errors are printed, never propagated; the loop stays alive.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		a.help()

	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)

	case "whoami":
		err = a.Whoami(ctx)

	case "users":
		err = a.Users(ctx, strings.Join(args, " "))
	case "search":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: search <query>")
			return false
		}
		err = a.Search(ctx, strings.Join(args, " "))
	case "avatar":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: avatar <url>")
			return false
		}
		err = a.Avatar(ctx, args[0])

	case "docs":
		err = a.Docs(ctx)
	case "doc":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: doc <id>")
			return false
		}
		err = a.ShowDoc(ctx, args[0])
	case "newdoc":
		err = a.NewDoc(ctx)
	case "editdoc":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: editdoc <id>")
			return false
		}
		err = a.EditDoc(ctx, args[0])
	case "deldoc":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: deldoc <id>")
			return false
		}
		err = a.DeleteDoc(ctx, args[0])
	case "restore":
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: restore <docid> <revid>")
			return false
		}
		err = a.RestoreDoc(ctx, args[0], args[1])

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
	return false
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, users [query], search <query>, avatar <url>,")
		fmt.Fprintln(a.out, "  docs, doc <id>, newdoc, editdoc <id>, deldoc <id>, restore <docid> <revid>,")
		fmt.Fprintln(a.out, "  logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
