package draft

import (
	"fmt"
	"strings"

	"github.com/entrelineas/diario/internal/journal"
)

// Section headings recognized by Parse. Render always emits both, in
// this order, even when a section has no text yet.
const (
	HeadingJournal = "Diario"
	HeadingPoetry  = "Poesía"
)

// Render lays out an entry as an editable draft buffer.
func Render(date journal.Date, entry *journal.Entry) string {
	var builder strings.Builder

	builder.WriteString("---\n")
	fmt.Fprintf(&builder, "date: %s\n", date)
	// Quoted so the # of the hex color is not read as a YAML comment.
	fmt.Fprintf(&builder, "color: %q\n", entry.EffectiveColor())
	builder.WriteString("---\n\n")

	writeSection(&builder, HeadingJournal, entry.Journal)
	writeSection(&builder, HeadingPoetry, entry.Poetry)

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

// writeSection writes one ## heading and its text.
func writeSection(builder *strings.Builder, heading, text string) {
	fmt.Fprintf(builder, "## %s\n\n", heading)
	if text != "" {
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}
}
