// Package main provides the entry point for the diario CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// initResult tracks what the init command created.
type initResult struct {
	File            string `json:"file"`
	Created         bool   `json:"created"`
	Seeded          int    `json:"seeded"`
	EntryCount      int    `json:"entry_count"`
	SettingsFile    string `json:"settings_file"`
	SettingsCreated bool   `json:"settings_created"`
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	return newInitCmdInternal(nil)
}

// newInitCmdInternal creates the init command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newInitCmdInternal(storage *journal.FileStorage) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create and seed the journal",
		Long: `Create the journal data file and the settings file.

Every date from 2024-01-01 through today that has no entry yet gets a
placeholder of a few random lines, so the calendar starts populated.
The command is idempotent - running it again only fills in dates that
appeared since the last run.

Examples:
  diario init           # First-time setup
  diario init --json    # Structured result`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, storage)
		},
	}
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, storage *journal.FileStorage) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	storage, err := resolveStorage(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	existed := storage.Exists()

	doc, added, err := storage.LoadOrSeed(journal.NewSeeder(nil), settings.DefaultColor)
	if err != nil {
		printer.Error(err)
		return err
	}

	settingsCreated, err := ensureSettingsFile(settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	result := &initResult{
		File:            storage.Path(),
		Created:         !existed,
		Seeded:          added,
		EntryCount:      doc.Count(),
		SettingsFile:    config.SettingsPath(),
		SettingsCreated: settingsCreated,
	}

	return outputInitResult(printer, result)
}

// ensureSettingsFile writes the settings file if it does not exist yet.
func ensureSettingsFile(settings config.Settings) (created bool, err error) {
	path := config.SettingsPath()
	if _, statErr := os.Stat(path); statErr == nil {
		return false, nil
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return false, output.NewSystemErrorWithCause("failed to check the settings file", statErr)
	}

	if err := settings.Save(path); err != nil {
		return false, output.NewSystemErrorWithCause("failed to write the settings file", err)
	}
	return true, nil
}

// outputInitResult reports what init did.
func outputInitResult(printer *output.Printer, result *initResult) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"file":             result.File,
			"created":          result.Created,
			"seeded":           result.Seeded,
			"entry_count":      result.EntryCount,
			"settings_file":    result.SettingsFile,
			"settings_created": result.SettingsCreated,
		})
	}

	switch {
	case result.Created:
		printer.Print("Created %s with %d seeded entries.\n", result.File, result.Seeded)
	case result.Seeded > 0:
		printer.Print("Seeded %d new entries in %s.\n", result.Seeded, result.File)
	default:
		printer.Print("Journal already initialized at %s.\n", result.File)
	}

	if result.SettingsCreated {
		printer.Print("Created %s.\n", result.SettingsFile)
	}
	return nil
}
