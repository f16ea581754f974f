package cli

import (
	"context"
	"fmt"
)

// Users prints the diagnostic account listing. Passwords are stored in
// cleartext, so only usernames and ids are echoed here.
func (a *App) Users(ctx context.Context) error {
	accounts := a.auth.AllAccounts(ctx)
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No registered users")
		return nil
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%d  %s  %s\n", acc.ID, acc.CreatedAt.Format("2006-01-02"), acc.Username)
	}
	return nil
}
