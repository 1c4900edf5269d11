package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
)

// Run loads the journal, seeds the missing days, and starts the shell
// in the alternate screen. It returns once the user quits.
func Run(storage *journal.FileStorage, settings config.Settings) error {
	doc, _, err := storage.LoadOrSeed(journal.NewSeeder(nil), settings.DefaultColor)
	if err != nil {
		return err
	}

	m := New(storage, doc, settings)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("running the journal shell: %w", err)
	}
	if final, ok := result.(Model); ok && final.err != nil {
		return final.err
	}
	return nil
}
