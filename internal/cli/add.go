package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/euks-jp/passkeeper/internal/models"
)

var (
	addName     string
	addUsername string
	addPassword string
	addNotes    string

	addCmd = &cobra.Command{
		Use:   "add <url>",
		Short: "Add a new entry",
		Long: `Add a new credential entry for a site.

When --password is omitted the secret is read from the terminal without echo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := addPassword
			if !cmd.Flags().Changed("password") {
				s, err := promptSecret("password: ")
				if err != nil {
					return err
				}
				secret = s
			}

			e := &models.Entry{
				Name:     addName,
				URL:      args[0],
				Username: addUsername,
				Password: secret,
				Notes:    addNotes,
			}
			if err := st.Create(cmd.Context(), e); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s added entry %d (%s)\n",
				color.GreenString("✓"), e.ID, e.Name)
			return nil
		},
	}
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name (defaults to the url)")
	addCmd.Flags().StringVarP(&addUsername, "username", "u", "", "login name")
	addCmd.Flags().StringVarP(&addPassword, "password", "p", "", "secret (prompted when omitted)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
}
