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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	ShowUser(ctx context.Context, args []string) error
	ShowUserByEmail(ctx context.Context, args []string) error
	ShowProfile(ctx context.Context, args []string) error
	VerifyEmail(ctx context.Context, args []string) error
	NewProfile(ctx context.Context, args []string) error
	EditUser(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop for the accountctl console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	user <id>        show a user by id
//	email <addr>     show a user by email
//	profile <id>     show the profile of a user
//	verify <addr>    check an email for format and availability
//	newprofile <id>  create a profile for an existing user (interactive)
//	edituser <id>    update account fields / password (interactive)
//	editprofile <id> update profile fields (interactive)
//	delete <id>      delete a user together with its profile
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("accounts> ")
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
			printlnFn("Available commands: user, email, profile, verify, newprofile, edituser, editprofile, delete, exit")

		case "user":
			_ = a.ShowUser(ctx, args)

		case "email":
			_ = a.ShowUserByEmail(ctx, args)

		case "profile":
			_ = a.ShowProfile(ctx, args)

		case "verify":
			_ = a.VerifyEmail(ctx, args)

		case "newprofile":
			_ = a.NewProfile(ctx, args)

		case "edituser":
			_ = a.EditUser(ctx, args)

		case "editprofile":
			_ = a.EditProfile(ctx, args)

		case "delete":
			_ = a.DeleteAccount(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
