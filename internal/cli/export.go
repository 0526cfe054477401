package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/euks-jp/passkeeper/internal/transfer"
)

var (
	exportOut string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export all entries as CSV",
		Long: `Export every entry as CSV, secrets included in plaintext. Writes to
stdout unless --out names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if exportOut != "" {
				f, err := os.OpenFile(exportOut, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			n, err := transfer.NewExporter(st, logger).Run(cmd.Context(), w)
			if err != nil {
				return err
			}

			if exportOut != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s exported %d entries to %s\n",
					color.GreenString("✓"), n, exportOut)
				fmt.Fprintf(cmd.ErrOrStderr(), "%s the file contains plaintext secrets\n",
					color.YellowString("!"))
			}
			return nil
		},
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
}
