package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateName     string
	updateURL      string
	updateUsername string
	updatePassword string
	updateNotes    string

	updateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an entry",
		Long: `Update an entry. Only the flags you pass are changed; everything else
keeps its current value. Passing --password with no value prompts for the
secret without echo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := st.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				e.Name = updateName
			}
			if flags.Changed("url") {
				e.URL = updateURL
			}
			if flags.Changed("username") {
				e.Username = updateUsername
			}
			if flags.Changed("notes") {
				e.Notes = updateNotes
			}
			if flags.Changed("password") {
				secret := updatePassword
				if secret == "" {
					secret, err = promptSecret("new password: ")
					if err != nil {
						return err
					}
				}
				e.Password = secret
			}

			if err := st.Update(cmd.Context(), e); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s updated entry %d\n", color.GreenString("✓"), e.ID)
			return nil
		},
	}
)

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "display name")
	updateCmd.Flags().StringVar(&updateURL, "url", "", "site url")
	updateCmd.Flags().StringVarP(&updateUsername, "username", "u", "", "login name")
	updateCmd.Flags().StringVarP(&updatePassword, "password", "p", "", "secret (prompted when given empty)")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
}
