// Package main provides the entry point for the diario CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
	"github.com/entrelineas/diario/internal/pandoc"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version string         `json:"version"`
	Storage []checkResult  `json:"storage"`
	Content []checkResult  `json:"content"`
	Tools   []checkResult  `json:"tools"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	fix   bool
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	return newDoctorCmdInternal(nil, nil)
}

// newDoctorCmdInternal creates the doctor command with optional storage and
// converter injection. Nil arguments select the real implementations.
func newDoctorCmdInternal(storage *journal.FileStorage, conv *pandoc.Converter) *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check journal health and suggest fixes",
		Long: `Check the journal installation health and suggest fixes.

Runs health checks across three categories:
  STORAGE - data directory, file parsing, leftover temp files
  CONTENT - entry colors and today's entry
  TOOLS   - pandoc, editor, and settings

Each check reports pass, warn, or fail with a hint where one applies.

Examples:
  diario doctor              # Run all health checks
  diario doctor --fix        # Also remove stray temp files
  diario doctor --quiet      # Only show warnings and failures
  diario doctor --json       # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, storage, conv, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "Auto-fix what can be fixed (stray temp files)")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, storage *journal.FileStorage, conv *pandoc.Converter, flags *doctorFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	storage, err := resolveStorage(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}
	if conv == nil {
		conv = pandoc.NewConverter(nil, nil)
	}

	result := gatherDoctorChecks(cmd, storage, conv, flags)

	if printer.IsJSON() {
		return outputDoctorJSON(printer, result)
	}

	outputDoctorHuman(printer, result, flags.quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(cmd *cobra.Command, storage *journal.FileStorage, conv *pandoc.Converter, flags *doctorFlags) *doctorResult {
	result := &doctorResult{
		Version: version,
		Storage: runStorageChecks(storage, flags),
		Content: runContentChecks(storage),
		Tools:   runToolChecks(cmd, conv),
		Summary: &doctorSummary{},
	}

	allChecks := append(append(result.Storage, result.Content...), result.Tools...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// outputDoctorJSON outputs the doctor result as JSON.
func outputDoctorJSON(printer *output.Printer, result *doctorResult) error {
	data := map[string]any{
		"version": result.Version,
		"storage": result.Storage,
		"content": result.Content,
		"tools":   result.Tools,
		"summary": map[string]any{
			"passed":   result.Summary.Passed,
			"warnings": result.Summary.Warnings,
			"failed":   result.Summary.Failed,
		},
	}
	return printer.WriteJSON(data)
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("diario doctor v%s\n", result.Version)

	printCheckSection(printer, "STORAGE", result.Storage, quiet)
	printCheckSection(printer, "CONTENT", result.Content, quiet)
	printCheckSection(printer, "TOOLS", result.Tools, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	// In quiet mode, skip sections with only passing checks
	if quiet {
		hasNonPass := false
		for _, check := range checks {
			if check.Status != checkPass {
				hasNonPass = true
				break
			}
		}
		if !hasNonPass {
			return
		}
	}

	printer.Println()
	printer.Println(title)

	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}

		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     %s %s\n", hintPrefix(), check.Hint)
		}
	}
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}

// hintPrefix returns the prefix for hint lines.
func hintPrefix() string {
	return "->"
}
