// Package main provides the entry point for the diario CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/pandoc"
)

// runStorageChecks performs checks on the data directory and file.
func runStorageChecks(storage *journal.FileStorage, flags *doctorFlags) []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkDataDirWritable(storage))
	checks = append(checks, checkFileParses(storage))
	checks = append(checks, checkStrayTempFiles(storage, flags))
	return checks
}

// checkDataDirWritable verifies the data directory accepts writes.
func checkDataDirWritable(storage *journal.FileStorage) checkResult {
	dir := filepath.Dir(storage.Path())

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return checkResult{
			Name:    "Data Directory",
			Status:  checkFail,
			Message: "cannot create " + dir + ": " + err.Error(),
			Hint:    "Check permissions on the parent directory",
		}
	}

	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return checkResult{
			Name:    "Data Directory",
			Status:  checkFail,
			Message: dir + " is not writable: " + err.Error(),
			Hint:    "Check permissions on " + dir,
		}
	}
	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)

	return checkResult{
		Name:    "Data Directory",
		Status:  checkPass,
		Message: dir + " is writable",
	}
}

// checkFileParses verifies the data file loads as a known document.
func checkFileParses(storage *journal.FileStorage) checkResult {
	if !storage.Exists() {
		return checkResult{
			Name:    "Data File",
			Status:  checkWarn,
			Message: storage.Path() + " not created yet",
			Hint:    "Run 'diario init' to create and seed it",
		}
	}

	doc, err := storage.Load()
	if err != nil {
		return checkResult{
			Name:    "Data File",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or restore " + storage.Path(),
		}
	}

	if doc.Legacy {
		return checkResult{
			Name:    "Data File",
			Status:  checkWarn,
			Message: "legacy layout without a schema envelope",
			Hint:    "Run 'diario init' to upgrade the file in place",
		}
	}

	return checkResult{
		Name:    "Data File",
		Status:  checkPass,
		Message: strconv.Itoa(doc.Count()) + " entries parse cleanly",
	}
}

// checkStrayTempFiles looks for leftovers of interrupted saves.
func checkStrayTempFiles(storage *journal.FileStorage, flags *doctorFlags) checkResult {
	dir := filepath.Dir(storage.Path())
	matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*.json"))
	if err != nil || len(matches) == 0 {
		return checkResult{
			Name:    "Temp Files",
			Status:  checkPass,
			Message: "no stray temp files",
		}
	}

	if flags.fix {
		removed := 0
		for _, match := range matches {
			if os.Remove(match) == nil {
				removed++
			}
		}
		if removed == len(matches) {
			return checkResult{
				Name:    "Temp Files",
				Status:  checkPass,
				Message: fmt.Sprintf("removed %d stray temp file(s) (auto-fixed)", removed),
			}
		}
	}

	return checkResult{
		Name:    "Temp Files",
		Status:  checkWarn,
		Message: fmt.Sprintf("%d stray temp file(s) from interrupted saves", len(matches)),
		Hint:    "Run 'diario doctor --fix' or remove .tmp-*.json from " + dir,
	}
}

// runContentChecks performs checks on the entries themselves.
func runContentChecks(storage *journal.FileStorage) []checkResult {
	doc, err := storage.Load()
	if err != nil {
		return []checkResult{{
			Name:    "Entry Content",
			Status:  checkWarn,
			Message: "could not load the journal: " + err.Error(),
		}}
	}

	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkEntryColors(doc))
	checks = append(checks, checkTodayEntry(doc))
	return checks
}

// checkEntryColors verifies every stored color is a valid hex value.
func checkEntryColors(doc *journal.Document) checkResult {
	var invalid []string
	for _, date := range doc.Dates() {
		entry := doc.Get(date)
		if entry != nil && entry.Validate() != nil {
			invalid = append(invalid, date.String())
		}
	}

	if len(invalid) > 0 {
		return checkResult{
			Name:    "Entry Colors",
			Status:  checkWarn,
			Message: fmt.Sprintf("%d entry(ies) have an invalid color (first: %s)", len(invalid), invalid[0]),
			Hint:    "Run 'diario color <hex> --date " + invalid[0] + "' to repaint",
		}
	}

	return checkResult{
		Name:    "Entry Colors",
		Status:  checkPass,
		Message: "all entry colors are valid",
	}
}

// checkTodayEntry reports whether today has written text.
func checkTodayEntry(doc *journal.Document) checkResult {
	entry := doc.Get(journal.Today())
	if entry == nil || entry.IsEmpty() {
		return checkResult{
			Name:    "Today",
			Status:  checkWarn,
			Message: "no written text for today",
			Hint:    "Run 'diario write' or open diario",
		}
	}

	return checkResult{
		Name:    "Today",
		Status:  checkPass,
		Message: strconv.Itoa(entry.Chars()) + " characters written today",
	}
}

// runToolChecks performs checks on external tools and configuration.
func runToolChecks(cmd *cobra.Command, conv *pandoc.Converter) []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkPandoc(cmd, conv))
	checks = append(checks, checkEditor())
	checks = append(checks, checkSettings())
	return checks
}

// checkPandoc reports whether PDF export is available.
func checkPandoc(cmd *cobra.Command, conv *pandoc.Converter) checkResult {
	if !conv.Available() {
		return checkResult{
			Name:    "Pandoc",
			Status:  checkWarn,
			Message: "not found (PDF export disabled)",
			Hint:    pandoc.InstallHint,
		}
	}

	version, err := conv.Version(cmd.Context())
	if err != nil {
		return checkResult{
			Name:    "Pandoc",
			Status:  checkWarn,
			Message: "found, but version probe failed: " + err.Error(),
		}
	}

	return checkResult{
		Name:    "Pandoc",
		Status:  checkPass,
		Message: version + " found",
	}
}

// checkEditor verifies the resolved editor exists in PATH.
func checkEditor() checkResult {
	settings, _ := config.LoadSettings()

	argv := strings.Fields(settings.ResolveEditor())
	if len(argv) == 0 {
		return checkResult{
			Name:    "Editor",
			Status:  checkWarn,
			Message: "no editor configured",
			Hint:    "Set editor in settings.yaml or export $EDITOR",
		}
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		return checkResult{
			Name:    "Editor",
			Status:  checkWarn,
			Message: argv[0] + " not found in PATH",
			Hint:    "Set editor in settings.yaml or export $EDITOR",
		}
	}

	return checkResult{
		Name:    "Editor",
		Status:  checkPass,
		Message: argv[0] + " found",
	}
}

// checkSettings verifies the settings file parses.
func checkSettings() checkResult {
	path := config.SettingsPath()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return checkResult{
			Name:    "Settings",
			Status:  checkPass,
			Message: "no settings file (defaults apply)",
		}
	}

	if _, err := config.LoadSettings(); err != nil {
		return checkResult{
			Name:    "Settings",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or delete " + path,
		}
	}

	return checkResult{
		Name:    "Settings",
		Status:  checkPass,
		Message: "loaded from " + path,
	}
}
