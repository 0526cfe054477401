package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		printEntries(cmd.OutOrStdout(), all)
		return nil
	},
}
