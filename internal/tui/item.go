package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/entrelineas/diario/internal/journal"
)

// dateItem implements list.Item for one journal date.
type dateItem struct {
	date  journal.Date
	entry *journal.Entry
	today bool
}

func (it dateItem) Title() string {
	if it.today {
		return it.date.String() + "  (hoy)"
	}
	return it.date.String()
}

func (it dateItem) Description() string {
	if it.entry == nil || it.entry.IsEmpty() {
		return "sin texto"
	}
	return firstLine(it.entry.Journal)
}

func (it dateItem) FilterValue() string { return it.date.String() }

// firstLine returns the first non-empty line of text, for previews.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return "sin texto"
}

// dateItems builds the picker rows, newest date first.
func dateItems(doc *journal.Document) []list.Item {
	today := journal.Today()
	dates := doc.Dates()
	items := make([]list.Item, len(dates))
	for i, date := range dates {
		items[i] = dateItem{date: date, entry: doc.Get(date), today: date == today}
	}
	return items
}

// newDateList builds the date picker list. Size is applied once the
// first window size message arrives.
func newDateList(doc *journal.Document) list.Model {
	l := list.New(dateItems(doc), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Entradas disponibles"
	l.SetShowHelp(false)
	return l
}
