// Package csvx implements the browser-compatible CSV line format used by
// password export files: comma-separated fields, optionally wrapped in
// double quotes, with doubled quotes as escapes. The format tolerates bare
// quotes and short rows, which encoding/csv rejects, so parsing is done by
// hand in a single pass.
package csvx

import "strings"

// ParseLine splits one logical CSV line into its fields. Quote state toggles
// on every unescaped double quote; inside quotes a doubled quote is a
// literal quote, and commas and newlines are field content rather than
// delimiters.
func ParseLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(c)
		}
	}
	fields = append(fields, field.String())

	return fields
}

// EscapeField is the inverse of ParseLine for a single field: the field is
// wrapped in double quotes, with inner quotes doubled, if and only if it
// contains a comma, a double quote or a line break. Everything else is
// emitted verbatim.
func EscapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// JoinFields escapes each field and joins them with commas, producing a line
// that ParseLine maps back to the original fields.
func JoinFields(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, ",")
}
