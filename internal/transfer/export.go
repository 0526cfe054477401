package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/euks-jp/passkeeper/internal/csvx"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/models"
)

// Header is the column row written before the records. It matches the
// browser export convention so the file can be re-imported elsewhere.
const Header = "name,url,username,password,note"

// EntryLister is the slice of the store an export needs.
type EntryLister interface {
	List(ctx context.Context) ([]models.Entry, error)
}

// Exporter writes the full entry set as CSV.
type Exporter struct {
	store  EntryLister
	logger logging.Logger
}

func NewExporter(store EntryLister, logger logging.Logger) *Exporter {
	return &Exporter{store: store, logger: logger}
}

// Run writes the header and one record per entry to w, returning the number
// of entries written. Secrets go out in plaintext; the caller decides where
// the writer points.
func (ex *Exporter) Run(ctx context.Context, w io.Writer) (int, error) {
	all, err := ex.store.List(ctx)
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for i, e := range all {
		record := csvx.JoinFields([]string{e.Name, e.URL, e.Username, e.Password, e.Notes})
		if _, err := io.WriteString(w, record+"\n"); err != nil {
			return i, fmt.Errorf("writing record: %w", err)
		}
	}

	ex.logger.Info(ctx, "export finished", "entries", len(all))
	return len(all), nil
}
