package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	creds := models.Credentials{Username: username, Password: password}
	if err := creds.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.auth.Register(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "Registered! You can now log in.")
	return nil
}
