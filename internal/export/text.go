package export

import "github.com/entrelineas/diario/internal/journal"

// FormatText renders an entry in the plain text format. The section text
// lands in the output byte for byte.
func FormatText(date journal.Date, entry *journal.Entry) (string, error) {
	return renderEntry(TemplateText, date, entry)
}
