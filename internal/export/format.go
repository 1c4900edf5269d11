package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// Format identifies an export output format.
type Format string

const (
	Text     Format = "txt"
	Markdown Format = "md"
	PDF      Format = "pdf"
)

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{Text, Markdown, PDF}
}

// ParseFormat normalizes a format argument. A leading dot is accepted so
// file extensions parse too.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "txt", "text":
		return Text, nil
	case "md", "markdown":
		return Markdown, nil
	case "pdf":
		return PDF, nil
	}
	return "", output.NewUserError(fmt.Sprintf("unknown export format %q (supported: txt, md, pdf)", s))
}

// FormatFromPath infers the format from a target filename extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", output.NewUserError(fmt.Sprintf("cannot infer format from %q: no file extension", path))
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// DefaultFilename returns the conventional export filename for a date.
func DefaultFilename(date journal.Date, f Format) string {
	return fmt.Sprintf("diario-%s.%s", date, f.Extension())
}
