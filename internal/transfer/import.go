// Package transfer moves entries between the store and the CSV interchange
// format that browser password managers export.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/euks-jp/passkeeper/internal/common"
	"github.com/euks-jp/passkeeper/internal/csvx"
	"github.com/euks-jp/passkeeper/internal/logging"
	"github.com/euks-jp/passkeeper/internal/models"
)

// EntrySaver is the slice of the store an import needs.
type EntrySaver interface {
	Create(ctx context.Context, e *models.Entry) error
}

// Report summarizes one import run.
type Report struct {
	RunID    uuid.UUID
	Accepted int
	Skipped  int
}

// Importer reads CSV records and saves them as entries.
type Importer struct {
	store  EntrySaver
	logger logging.Logger
}

func NewImporter(store EntrySaver, logger logging.Logger) *Importer {
	return &Importer{store: store, logger: logger}
}

// Run imports all records from r. Malformed rows are skipped and logged; an
// unavailable store aborts the run, since every remaining row would fail the
// same way. A partially applied run keeps what it already accepted.
func (im *Importer) Run(ctx context.Context, r io.Reader) (*Report, error) {
	rep := &Report{RunID: uuid.New()}
	log := im.logger.With("run_id", rep.RunID.String())

	reader := csvx.NewRecordReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		record, line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rep, fmt.Errorf("reading record: %w", err)
		}

		entry, err := entryFromRecord(record)
		if err != nil {
			rep.Skipped++
			log.Warn(ctx, "skipping malformed row", "line", line, "error", err)
			continue
		}

		if err := im.store.Create(ctx, entry); err != nil {
			if errors.Is(err, common.ErrorStorageUnavailable) {
				return rep, err
			}
			rep.Skipped++
			log.Warn(ctx, "skipping rejected row", "line", line, "error", err)
			continue
		}
		rep.Accepted++
	}

	log.Info(ctx, "import finished", "accepted", rep.Accepted, "skipped", rep.Skipped)
	return rep, nil
}

// entryFromRecord maps one CSV record to an entry. Field order follows the
// browser export convention: name, url, username, password, and optionally
// a notes column.
func entryFromRecord(record string) (*models.Entry, error) {
	fields := csvx.ParseLine(record)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: got %d fields, want at least 4", common.ErrorValidation, len(fields))
	}

	e := &models.Entry{
		Name:     strings.TrimSpace(fields[0]),
		URL:      strings.TrimSpace(fields[1]),
		Username: strings.TrimSpace(fields[2]),
		Password: fields[3],
	}
	if len(fields) >= 5 {
		e.Notes = strings.TrimSpace(fields[4])
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.Normalize()
	return e, nil
}
