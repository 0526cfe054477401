package cli

import (
	"github.com/spf13/cobra"
)

var (
	showReveal bool

	showCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := st.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), e, showReveal)
			return nil
		},
	}
)

func init() {
	showCmd.Flags().BoolVar(&showReveal, "reveal", false, "print the secret in plaintext")
}
