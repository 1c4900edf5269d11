package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrelineas/diario/internal/draft"
	"github.com/entrelineas/diario/internal/journal"
)

// editorChrome is the number of fixed rows around the two panes:
// header, section labels, blank separators, status line, and help.
const editorChrome = 8

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red
)

// spanishMonths holds the month names used by the entry header.
var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders a date the way the entry header shows it,
// e.g. "05 de enero de 2024".
func LongDate(date journal.Date) string {
	month := spanishMonths[int(date.Month())-1]
	return fmt.Sprintf("%02d de %s de %d", date.Day(), month, date.Year())
}

func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}
	if m.screen == screenEditor {
		return m.viewEditor()
	}
	return m.viewDates()
}

func (m Model) viewDates() string {
	footer := helpStyle.Render("↑/↓ moverse • / filtrar • enter abrir • t hoy • e editor • c fondo • x exportar • q salir")
	return m.dates.View() + "\n" + m.statusLine() + "\n" + footer
}

func (m Model) viewEditor() string {
	color := m.entry.EffectiveColor()
	sections := []string{
		headerStyle.Render("Entrada del " + LongDate(m.current)),
		"",
		sectionLabel(draft.HeadingJournal, color, m.focus == sectionJournal),
		m.journalPane.View(),
		"",
		sectionLabel(draft.HeadingPoetry, color, m.focus == sectionPoetry),
		m.poetryPane.View(),
		"",
		m.statusLine(),
		helpStyle.Render("tab sección • ctrl+s guardar • ctrl+o editor • ctrl+g fondo • ctrl+x exportar • esc volver"),
	}
	return strings.Join(sections, "\n")
}

// sectionLabel renders a pane title. The focused label carries the
// entry's background color, like the active tab it stands in for.
func sectionLabel(title, color string, focused bool) string {
	if !focused {
		return lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(title)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("235")).
		Render(title)
}

func (m Model) statusLine() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeErr {
		return errorStyle.Render(m.notice)
	}
	return noticeStyle.Render(m.notice)
}

// restyle tints the cursor line of both panes with the entry's
// background color, dark text on the pastel so it reads anywhere.
func (m *Model) restyle() {
	line := lipgloss.NewStyle().
		Background(lipgloss.Color(m.entry.EffectiveColor())).
		Foreground(lipgloss.Color("235"))
	m.journalPane.FocusedStyle.CursorLine = line
	m.poetryPane.FocusedStyle.CursorLine = line
}
