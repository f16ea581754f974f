package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/notekeeper/internal/cli"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// getPassword is a test seam for the terminal password prompt.
var getPassword = cli.GetPassword

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			password, err := getPassword(os.Stderr)
			if err != nil {
				return err
			}

			creds := models.Credentials{Username: username, Password: password}
			if err := creds.Validate(); err != nil {
				return err
			}

			if err := auth.Register(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Println("Registered! You can now log in.")
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := getPassword(os.Stderr)
			if err != nil {
				return err
			}

			account, err := auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", account.Username)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account := auth.CurrentUser(cmd.Context())
			if account == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (id %d)\n", account.Username, account.ID)
			return nil
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Diagnostic listing of every registered account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, acc := range auth.AllAccounts(cmd.Context()) {
				fmt.Printf("%d\t%s\t%s\n", acc.ID, acc.CreatedAt.Format("2006-01-02"), acc.Username)
			}
			return nil
		},
	}
}
