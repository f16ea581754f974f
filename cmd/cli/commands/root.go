// Package commands wires the NoteKeeper CLI: scriptable one-shot
// subcommands plus the interactive shell on the bare root command.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/notekeeper/internal/cli"
	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/dmitrijs2005/notekeeper/internal/filestore"
	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/services"
)

var (
	cfgPath  string
	dbPath   string
	imageDir string

	store *kvstore.SQLiteStore
	auth  services.AuthService
	notes services.NotesService
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notekeeper",
		Short: "Local notes with accounts and cover images",
		Long: `NoteKeeper keeps per-user note collections in a local SQLite-backed
key-value store. Run without arguments for the interactive shell, or use
the subcommands for scripting.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}
			if imageDir != "" {
				cfg.ImageDir = imageDir
			}

			log := logging.NewDefault()

			ctx := cmd.Context()
			store, err = kvstore.OpenSQLite(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}

			files, err := filestore.NewDiskStore(cfg.ImageDir, log)
			if err != nil {
				_ = store.Close()
				return err
			}

			auth = services.NewAuthService(store, log)
			notes = services.NewNotesService(store, files, auth, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if store != nil {
				_ = store.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.NewApp(auth, notes).Run(cmd.Context())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to JSON config file")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database")
	root.PersistentFlags().StringVar(&imageDir, "images", "", "durable image directory")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		addCmd(), listCmd(), editCmd(), deleteCmd(), usersCmd(),
	)

	return root
}
