package tui

import (
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrelineas/diario/internal/draft"
)

// startEditor suspends the shell and hands the current entry to the
// configured editor as a draft buffer. The callback parses the buffer
// back once the editor exits.
func (m Model) startEditor() (tea.Model, tea.Cmd) {
	m.stashEntry()

	parts := strings.Fields(m.settings.ResolveEditor())
	if len(parts) == 0 {
		m.notice = "No hay editor configurado."
		m.noticeErr = true
		return m, nil
	}

	tmp, err := os.CreateTemp("", "diario-*.md")
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(draft.Render(m.current, m.entry)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		m.err = err
		return m, tea.Quit
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		m.err = err
		return m, tea.Quit
	}

	date := m.current
	args := append(parts[1:], tmpName)
	cmd := exec.Command(parts[0], args...)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer os.Remove(tmpName)
		if err != nil {
			return editorFinishedMsg{date: date, err: err}
		}
		data, err := os.ReadFile(tmpName)
		if err != nil {
			return editorFinishedMsg{date: date, err: err}
		}
		parsedDate, entry, err := draft.Parse(string(data))
		if err != nil {
			return editorFinishedMsg{date: date, err: err}
		}
		return editorFinishedMsg{date: parsedDate, entry: entry}
	})
}
