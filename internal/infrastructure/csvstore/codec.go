package csvstore

import "strings"

const (
	separator = ','
	escape    = '\\'
)

// escapeField protects commas inside a value. Other backslashes are written
// as-is, so a value ending in a backslash does not survive a round trip.
func escapeField(value string) string {
	return strings.ReplaceAll(value, string(separator), string([]rune{escape, separator}))
}

func joinRecord(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, string(separator))
}

// splitRecord splits a line on unescaped commas and unescapes \, back to ,
func splitRecord(line string) []string {
	var (
		fields  []string
		current strings.Builder
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == escape && i+1 < len(runes) && runes[i+1] == separator:
			current.WriteRune(separator)
			i++
		case r == separator:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, current.String())
}
