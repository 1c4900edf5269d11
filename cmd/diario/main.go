// Package main provides the entry point for the diario CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/envfile"
	"github.com/entrelineas/diario/internal/output"
	"github.com/entrelineas/diario/internal/tui"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// Commands read the flag instead of sharing a global so they stay
// independently testable.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the diario CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diario",
		Short: "A daily journal and poetry log",
		Long: `Diario - a daily journal and poetry log kept in one JSON file.

Every day gets one entry with a diary section, a poetry section, and a
background color. Running diario with no arguments opens the full-screen
journal; the subcommands work on the same document for scripts and
pipelines, and 'diario serve' exposes it to MCP-capable agents.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'diario --help' for usage")
				printer.Error(err)
				return err
			}
			// A terminal gets the journal shell; pipes get help
			if output.IsTTY(cmd.OutOrStdout()) {
				return runShell(cmd)
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for machine-local overrides.
	// Environment variables already set always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, never")
	cmd.PersistentFlags().String("file", "", "Journal data file (default: resolved from the data directory)")

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// runShell opens the full-screen journal UI on the resolved document.
func runShell(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), false, useColor(cmd))

	storage, err := resolveStorage(cmd, nil)
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

	return tui.Run(storage, settings)
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local      (per-directory override, gitignored)
//  2. $CWD/.env            (per-directory)
//  3. ~/.config/diario/env (global fallback)
func loadEnvFiles() {
	_ = envfile.LoadAll(".env.local", ".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "data", Title: "Data Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "integration", Title: "Integration Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Journal commands: day-to-day writing and reading
	addGroupedCommand(cmd, newShowCmd(), "journal")
	addGroupedCommand(cmd, newWriteCmd(), "journal")
	addGroupedCommand(cmd, newEditCmd(), "journal")
	addGroupedCommand(cmd, newColorCmd(), "journal")

	// Data commands: the document as a whole
	addGroupedCommand(cmd, newListCmd(), "data")
	addGroupedCommand(cmd, newExportCmd(), "data")
	addGroupedCommand(cmd, newStatusCmd(), "data")
	addGroupedCommand(cmd, newInitCmd(), "data")

	// Integration commands: health and agents
	addGroupedCommand(cmd, newDoctorCmd(), "integration")
	addGroupedCommand(cmd, newServeCmd(), "integration")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
