package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/euks-jp/passkeeper/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import entries from a CSV export",
	Long: `Import entries from a CSV file in the format browser password managers
export (name,url,username,password with an optional note column). Rows that
cannot be parsed are skipped and reported; the rest are saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()

		rep, err := transfer.NewImporter(st, logger).Run(cmd.Context(), f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s imported %d entries\n", color.GreenString("✓"), rep.Accepted)
		if rep.Skipped > 0 {
			fmt.Fprintf(out, "%s skipped %d malformed rows (run with -v for details)\n",
				color.YellowString("!"), rep.Skipped)
		}
		return nil
	},
}
