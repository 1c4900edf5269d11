// Package tui implements the interactive terminal shell for diario: a
// date picker over the journal document and a two-pane editor for the
// Diario and Poesía sections of an entry.
//
// The shell mirrors the journal workflow: picking a date opens its
// entry, switching away or quitting saves silently, and an explicit
// save confirms with a notification. Storage writes run as bubbletea
// commands so the update logic stays testable without a terminal.
package tui
