package export

import "github.com/entrelineas/diario/internal/journal"

// FormatPDFInput renders the pandoc input document for an entry. The
// template opens with a metadata block carrying the document title; the
// body mirrors the classic printed layout with === section markers.
func FormatPDFInput(date journal.Date, entry *journal.Entry) (string, error) {
	return renderEntry(TemplatePDF, date, entry)
}
