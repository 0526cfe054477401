package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/euks-jp/passkeeper/internal/models"
)

const secretMask = "********"

// printEntries renders a compact table. Secrets are never shown here;
// use `show --reveal` for a single entry.
func printEntries(w io.Writer, all []models.Entry) {
	if len(all) == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tURL\tUSERNAME")
	for _, e := range all {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.URL, e.Username)
	}
	tw.Flush()
}

func printEntry(w io.Writer, e *models.Entry, reveal bool) {
	secret := secretMask
	if reveal {
		secret = e.Password
		if secret == "" {
			secret = color.RedString("(unrecoverable)")
		}
	}
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("id:"), fmt.Sprint(e.ID))
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("name:"), e.Name)
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("url:"), e.URL)
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("username:"), e.Username)
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("password:"), secret)
	if e.Notes != "" {
		fmt.Fprintf(w, "%s  %s\n", color.CyanString("notes:"), e.Notes)
	}
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("created:"), e.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "%s  %s\n", color.CyanString("updated:"), e.UpdatedAt.Local().Format(time.RFC3339))
}
