// Package cli implements the interactive NoteKeeper shell: a small REPL
// over the auth and notes services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/services"
)

type App struct {
	auth   services.AuthService
	notes  services.NotesService
	reader *bufio.Reader
	out    io.Writer

	// sortOrder is the listing arrangement picked with the 'sort' command.
	// It lives for the session, like the sort choice on the original screen.
	sortOrder services.SortOrder
}

// NewApp wires the REPL to the given services, reading from stdin and
// writing to stdout.
func NewApp(auth services.AuthService, notes services.NotesService) *App {
	return &App{
		auth:      auth,
		notes:     notes,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		sortOrder: services.SortNewestFirst,
	}
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NoteKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin), a.out)
}

// statusLine renders the prompt suffix: the logged-in username, if any.
func (a *App) statusLine(ctx context.Context) string {
	account := a.auth.CurrentUser(ctx)
	if account == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", account.Username)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.CurrentUser(ctx) != nil
}
