// Package cli implements the passkeeper command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/euks-jp/passkeeper/internal/config"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/store"
)

var (
	verbose bool

	// mirrors of the flags parsed by the config package, registered so
	// cobra accepts them; the values it sees are unused
	flagDatabase string
	flagKey      string
	flagConfig   string

	logger logging.Logger
	st     *store.Store

	rootCmd = &cobra.Command{
		Use:           "passkeeper",
		Short:         "Local encrypted credential store",
		Long:          "Passkeeper keeps credentials in a local SQLite database with the secret column encrypted, and speaks the CSV format browser password managers export.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = logging.NewSlogLogger(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cfg := config.LoadConfig()

			s, err := store.Open(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			st = s
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st == nil {
				return nil
			}
			return st.Close()
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	pf.StringVarP(&flagDatabase, "database", "d", "", "path to the database file")
	pf.StringVarP(&flagKey, "key", "k", "", "16-byte encryption key")
	pf.StringVarP(&flagConfig, "config", "c", "", "path to a JSON config file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dedupeCmd)
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗"), err)
		return 1
	}
	return 0
}
