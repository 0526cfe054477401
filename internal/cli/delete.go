package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more entries",
	Long:  "Delete entries by id. Ids that no longer exist are silently skipped.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := parseID(a)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		removed, err := st.BulkDelete(cmd.Context(), ids)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %d of %d\n",
			color.GreenString("✓"), removed, len(ids))
		return nil
	},
}
