package export

import "github.com/entrelineas/diario/internal/journal"

// FormatMarkdown renders an entry as a markdown document with a title
// heading and one section heading per text block.
func FormatMarkdown(date journal.Date, entry *journal.Entry) (string, error) {
	return renderEntry(TemplateMarkdown, date, entry)
}
