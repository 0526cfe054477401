package csvx

import (
	"bufio"
	"io"
	"strings"
)

// RecordReader yields logical CSV records from an import source. The first
// line is a header and is skipped without validation. A record spans
// multiple physical lines while a quoted field is still open, so multi-line
// notes survive an export/import round trip. Blank lines between records are
// ignored.
type RecordReader struct {
	scanner       *bufio.Scanner
	headerSkipped bool
	line          int
}

// maxRecordSize bounds a single physical line; browser exports stay far
// below this.
const maxRecordSize = 1024 * 1024

func NewRecordReader(r io.Reader) *RecordReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	return &RecordReader{scanner: sc}
}

// Next returns the next logical record and the physical line number it
// started on. io.EOF signals a cleanly exhausted source.
func (r *RecordReader) Next() (string, int, error) {
	if !r.headerSkipped {
		r.headerSkipped = true
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", 0, err
			}
			return "", 0, io.EOF
		}
		r.line++
	}

	var record strings.Builder
	start := 0
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", 0, err
			}
			if record.Len() > 0 {
				// EOF with an unterminated quote; hand back what we have and
				// let the row-level validation reject it.
				return record.String(), start, nil
			}
			return "", 0, io.EOF
		}
		r.line++
		text := r.scanner.Text()

		if record.Len() == 0 {
			if strings.TrimSpace(text) == "" {
				continue
			}
			start = r.line
			record.WriteString(text)
		} else {
			record.WriteString("\n")
			record.WriteString(text)
		}

		if !openQuote(record.String()) {
			return record.String(), start, nil
		}
	}
}

// openQuote reports whether the text ends inside an unclosed quoted field.
// Escaped quotes toggle twice, so plain parity is enough.
func openQuote(s string) bool {
	open := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			open = !open
		}
	}
	return open
}
