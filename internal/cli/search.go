package cli

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find entries by url or username",
	Long:  "Find entries whose url or username contains the term, matched case-insensitively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found, err := st.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printEntries(cmd.OutOrStdout(), found)
		return nil
	},
}
