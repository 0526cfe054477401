package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/euks-jp/passkeeper/internal/dedup"
)

var (
	dedupeYes bool

	dedupeCmd = &cobra.Command{
		Use:   "dedupe",
		Short: "Find and remove duplicate entries",
		Long: `Group entries sharing the same url, username and secret, and delete all
but the newest of each group. The plan is printed first and nothing is
removed until you confirm (or pass --yes).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := st.FindDuplicateGroups(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintf(out, "%s no duplicates found\n", color.GreenString("✓"))
				return nil
			}

			printPlan(out, groups)

			candidates := dedup.CandidateIDs(groups)
			if !dedupeYes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("delete %d entries", len(candidates))) {
				fmt.Fprintln(out, "aborted, nothing deleted")
				return nil
			}

			removed, err := st.BulkDelete(cmd.Context(), candidates)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s removed %d duplicate entries\n", color.GreenString("✓"), removed)
			return nil
		},
	}
)

func printPlan(w io.Writer, groups []dedup.Group) {
	for i, g := range groups {
		first := g.Members[0].Entry
		fmt.Fprintf(w, "group %d: %s (%s), %d copies\n", i+1, first.URL, first.Username, len(g.Members))
		for _, m := range g.Members {
			tag := color.GreenString("KEEP  ")
			if m.DeleteByDefault {
				tag = color.RedString("DELETE")
			}
			fmt.Fprintf(w, "  %s  #%d %s  created %s\n",
				tag, m.Entry.ID, m.Entry.Name, m.Entry.CreatedAt.Local().Format(time.RFC3339))
		}
	}
}

func init() {
	dedupeCmd.Flags().BoolVarP(&dedupeYes, "yes", "y", false, "delete without asking")
}
