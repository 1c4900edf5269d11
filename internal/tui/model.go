package tui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/export"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/pandoc"
)

// screen identifies which view the shell is showing.
type screen int

const (
	screenDates screen = iota
	screenEditor
)

// section identifies the focused editor pane.
type section int

const (
	sectionJournal section = iota
	sectionPoetry
)

// Model is the bubbletea model for the journal shell. It owns the
// loaded document and writes it back through the storage on every
// save boundary: explicit save, date switch, color change, and quit.
type Model struct {
	storage  *journal.FileStorage
	doc      *journal.Document
	settings config.Settings

	screen screen
	dates  list.Model

	current     journal.Date
	entry       *journal.Entry
	journalPane textarea.Model
	poetryPane  textarea.Model
	focus       section

	notice    string
	noticeErr bool
	err       error
	quitting  bool

	width  int
	height int
	ready  bool
}

// New builds the shell over an already loaded document.
func New(storage *journal.FileStorage, doc *journal.Document, settings config.Settings) Model {
	m := Model{
		storage:  storage,
		doc:      doc,
		settings: settings,
		screen:   screenDates,
	}
	m.dates = newDateList(doc)
	m.journalPane = newPane("Escribe tu diario aquí...")
	m.poetryPane = newPane("Escribe tu poesía aquí...")
	return m
}

func newPane(placeholder string) textarea.Model {
	pane := textarea.New()
	pane.Placeholder = placeholder
	pane.CharLimit = 0
	pane.ShowLineNumbers = false
	return pane
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// savedMsg reports the outcome of a storage write.
type savedMsg struct {
	date   journal.Date
	notify bool
	err    error
}

// editorFinishedMsg carries the entry read back from the external editor.
type editorFinishedMsg struct {
	date  journal.Date
	entry *journal.Entry
	err   error
}

// exportedMsg reports a finished text export.
type exportedMsg struct {
	path string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if msg.notify {
			m.notice = fmt.Sprintf("Se guardó la entrada del %s.", msg.date)
			m.noticeErr = false
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case editorFinishedMsg:
		return m.finishEditor(msg)

	case exportedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("No se pudo exportar: %v", msg.err)
			m.noticeErr = true
			return m, nil
		}
		m.notice = fmt.Sprintf("Se exportó la entrada a %s.", msg.path)
		m.noticeErr = false
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		m.noticeErr = false
		switch m.screen {
		case screenDates:
			return m.updateDates(msg)
		case screenEditor:
			return m.updateEditor(msg)
		}
	}

	// Non-key messages (blink ticks) go to the active component.
	var cmd tea.Cmd
	switch m.screen {
	case screenDates:
		m.dates, cmd = m.dates.Update(msg)
	case screenEditor:
		switch m.focus {
		case sectionJournal:
			m.journalPane, cmd = m.journalPane.Update(msg)
		case sectionPoetry:
			m.poetryPane, cmd = m.poetryPane.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) updateDates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to the list.
	if m.dates.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.dates, cmd = m.dates.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.dates.SelectedItem().(dateItem); ok {
			return m.openEntry(item.date)
		}
		return m, nil
	case "t":
		return m.openToday()
	case "e":
		if item, ok := m.dates.SelectedItem().(dateItem); ok {
			opened, _ := m.openEntry(item.date)
			return opened.startEditor()
		}
		return m, nil
	case "c":
		if item, ok := m.dates.SelectedItem().(dateItem); ok {
			if entry := m.doc.Get(item.date); entry != nil {
				entry.Color = nextColor(entry.EffectiveColor())
				m.notice = fmt.Sprintf("Color de fondo: %s", entry.Color)
				return m, m.saveCmd(item.date, false)
			}
		}
		return m, nil
	case "x":
		if item, ok := m.dates.SelectedItem().(dateItem); ok {
			if entry := m.doc.Get(item.date); entry != nil {
				return m, m.exportCmd(item.date, entry.Clone())
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.dates, cmd = m.dates.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stashEntry()
		m.quitting = true
		return m, m.saveCmd(m.current, false)
	case "esc":
		m.stashEntry()
		m.screen = screenDates
		m.dates.SetItems(dateItems(m.doc))
		m.selectDate(m.current)
		return m, m.saveCmd(m.current, false)
	case "tab":
		return m, m.switchSection()
	case "ctrl+s":
		m.stashEntry()
		return m, m.saveCmd(m.current, true)
	case "ctrl+o":
		return m.startEditor()
	case "ctrl+g":
		m.syncEntry()
		m.entry.Color = nextColor(m.entry.EffectiveColor())
		m.restyle()
		m.doc.Put(m.current, m.entry.Clone())
		m.notice = fmt.Sprintf("Color de fondo: %s", m.entry.Color)
		return m, m.saveCmd(m.current, false)
	case "ctrl+x":
		m.stashEntry()
		return m, tea.Batch(m.saveCmd(m.current, false), m.exportCmd(m.current, m.entry.Clone()))
	}

	var cmd tea.Cmd
	switch m.focus {
	case sectionJournal:
		m.journalPane, cmd = m.journalPane.Update(msg)
	case sectionPoetry:
		m.poetryPane, cmd = m.poetryPane.Update(msg)
	}
	return m, cmd
}

// openEntry switches to the editor screen for the given date.
func (m Model) openEntry(date journal.Date) (Model, tea.Cmd) {
	entry := m.doc.Get(date)
	if entry == nil {
		entry = m.doc.Ensure(date, m.settings.DefaultColor)
		m.dates.SetItems(dateItems(m.doc))
	}
	m.current = date
	m.entry = entry.Clone()
	m.focus = sectionJournal
	m.applyEntry()
	m.poetryPane.Blur()
	cmd := m.journalPane.Focus()
	m.screen = screenEditor
	m.resize()
	return m, cmd
}

// openToday jumps to today's entry, creating it when the document was
// seeded before midnight.
func (m Model) openToday() (Model, tea.Cmd) {
	today := journal.Today()
	if m.doc.Get(today) == nil {
		m.doc.Ensure(today, m.settings.DefaultColor)
		m.dates.SetItems(dateItems(m.doc))
	}
	m.selectDate(today)
	return m.openEntry(today)
}

func (m Model) finishEditor(msg editorFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = fmt.Sprintf("No se pudo leer el borrador: %v", msg.err)
		m.noticeErr = true
		return m, nil
	}
	if msg.entry == nil {
		return m, nil
	}
	// The draft metadata names the date, so an edited date wins.
	m.current = msg.date
	m.entry = msg.entry.Clone()
	m.doc.Put(msg.date, msg.entry)
	m.dates.SetItems(dateItems(m.doc))
	m.applyEntry()
	return m, m.saveCmd(msg.date, false)
}

// stashEntry folds the pane contents back into the working entry and
// the document.
func (m *Model) stashEntry() {
	m.syncEntry()
	m.doc.Put(m.current, m.entry.Clone())
}

func (m *Model) syncEntry() {
	m.entry.Journal = journal.TrimText(m.journalPane.Value())
	m.entry.Poetry = journal.TrimText(m.poetryPane.Value())
}

// applyEntry refreshes the panes from the working entry.
func (m *Model) applyEntry() {
	m.journalPane.SetValue(m.entry.Journal)
	m.poetryPane.SetValue(m.entry.Poetry)
	m.restyle()
}

func (m *Model) switchSection() tea.Cmd {
	if m.focus == sectionJournal {
		m.focus = sectionPoetry
		m.journalPane.Blur()
		return m.poetryPane.Focus()
	}
	m.focus = sectionJournal
	m.poetryPane.Blur()
	return m.journalPane.Focus()
}

func (m *Model) selectDate(date journal.Date) {
	for i, item := range m.dates.Items() {
		if it, ok := item.(dateItem); ok && it.date == date {
			m.dates.Select(i)
			return
		}
	}
}

func (m *Model) resize() {
	m.dates.SetSize(m.width, m.height-2)

	paneWidth := m.width - 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := (m.height - editorChrome) / 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	m.journalPane.SetWidth(paneWidth)
	m.journalPane.SetHeight(paneHeight)
	m.poetryPane.SetWidth(paneWidth)
	m.poetryPane.SetHeight(paneHeight)
}

// saveCmd persists the document in the background.
func (m Model) saveCmd(date journal.Date, notify bool) tea.Cmd {
	storage, doc := m.storage, m.doc
	return func() tea.Msg {
		return savedMsg{date: date, notify: notify, err: storage.Save(doc)}
	}
}

// exportCmd writes the entry as plain text next to the configured
// export directory, or the working directory when none is set.
func (m Model) exportCmd(date journal.Date, entry *journal.Entry) tea.Cmd {
	dir := m.settings.ExportDir
	return func() tea.Msg {
		path := filepath.Join(dir, export.DefaultFilename(date, export.Text))
		conv := pandoc.NewConverter(nil, nil)
		err := export.ExportEntry(context.Background(), conv, date, entry, export.Text, path, true)
		if err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}
