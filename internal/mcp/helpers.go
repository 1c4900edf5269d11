package mcp

import (
	"strings"

	"github.com/entrelineas/diario/internal/journal"
)

// resolveDate parses an ISO date, empty meaning today.
func resolveDate(value string) (journal.Date, error) {
	if value == "" {
		return journal.Today(), nil
	}
	return journal.ParseDate(value)
}

// toDateSummaries builds list_dates rows for the given dates.
func toDateSummaries(doc *journal.Document, dates []journal.Date) []DateSummary {
	result := make([]DateSummary, 0, len(dates))
	for _, date := range dates {
		entry := doc.Get(date)
		if entry == nil {
			continue
		}
		result = append(result, DateSummary{
			Date:    date.String(),
			Chars:   entry.Chars(),
			Preview: previewText(entry.Journal, 72),
		})
	}
	return result
}

// previewText returns the first non-blank line of text, truncated to
// max runes.
func previewText(text string, max int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > max {
			return string(runes[:max-1]) + "…"
		}
		return line
	}
	return ""
}
