// Package main provides the entry point for the diario CLI.
package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	File         string `json:"file"`
	FileExists   bool   `json:"file_exists"`
	Schema       string `json:"schema"`
	EntryCount   int    `json:"entry_count"`
	FirstDate    string `json:"first_date,omitempty"`
	LastDate     string `json:"last_date,omitempty"`
	Today        string `json:"today"`
	TodayWritten bool   `json:"today_written"`
	TodayChars   int    `json:"today_chars"`
	ConfigDir    string `json:"config_dir"`
	HasSettings  bool   `json:"has_settings"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return newStatusCmdInternal(nil)
}

// newStatusCmdInternal creates the status command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newStatusCmdInternal(storage *journal.FileStorage) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show journal file and entry state",
		Long: `Show where the journal lives and what it holds: data file path,
entry count, date span, and whether today has written text.

Examples:
  diario status          # Human-readable overview
  diario status --json   # Structured output for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, storage)
		},
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, storage *journal.FileStorage) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	storage, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	result := gatherStatus(storage, doc)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"file":          result.File,
			"file_exists":   result.FileExists,
			"schema":        result.Schema,
			"entry_count":   result.EntryCount,
			"first_date":    result.FirstDate,
			"last_date":     result.LastDate,
			"today":         result.Today,
			"today_written": result.TodayWritten,
			"today_chars":   result.TodayChars,
			"config_dir":    result.ConfigDir,
			"has_settings":  result.HasSettings,
			"suggested_commands": []string{
				"diario list",
				"diario show",
			},
		})
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(storage *journal.FileStorage, doc *journal.Document) *statusResult {
	today := journal.Today()

	result := &statusResult{
		File:       storage.Path(),
		FileExists: storage.Exists(),
		Schema:     doc.Schema,
		EntryCount: doc.Count(),
		Today:      today.String(),
		ConfigDir:  config.Dir(),
	}

	if first, last, ok := doc.Span(); ok {
		result.FirstDate = first.String()
		result.LastDate = last.String()
	}

	if entry := doc.Get(today); entry != nil {
		result.TodayWritten = !entry.IsEmpty()
		result.TodayChars = entry.Chars()
	}

	if _, err := os.Stat(config.SettingsPath()); err == nil {
		result.HasSettings = true
	}

	return result
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Journal")
	printer.KeyValue("File", status.File)
	printer.KeyValue("Exists", formatBool(status.FileExists))
	printer.KeyValue("Schema", status.Schema)
	printer.KeyValue("Entries", strconv.Itoa(status.EntryCount))
	if status.FirstDate != "" {
		printer.KeyValue("Span", status.FirstDate+" .. "+status.LastDate)
	}

	printer.Section("Today")
	printer.KeyValue("Date", status.Today)
	printer.KeyValue("Written", formatBool(status.TodayWritten))
	if status.TodayChars > 0 {
		printer.KeyValue("Chars", strconv.Itoa(status.TodayChars))
	}

	printer.Section("Config")
	printer.KeyValue("Directory", status.ConfigDir)
	printer.KeyValue("Settings", formatBool(status.HasSettings))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
