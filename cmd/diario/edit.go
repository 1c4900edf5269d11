// Package main provides the entry point for the diario CLI.
package main

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/draft"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// editorRunner launches an editor command on a file and waits for it.
// Injectable so tests can simulate an editing session.
type editorRunner func(ctx context.Context, argv []string, path string) error

// defaultEditorRunner runs the real editor attached to the terminal.
func defaultEditorRunner(ctx context.Context, argv []string, path string) error {
	args := append(argv[1:], path) //nolint:gocritic // argv stays intact for retries
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// newEditCmd creates the edit command.
func newEditCmd() *cobra.Command {
	return newEditCmdInternal(nil, nil)
}

// newEditCmdInternal creates the edit command with optional storage and
// editor injection. Nil arguments select the real implementations.
func newEditCmdInternal(storage *journal.FileStorage, runEditor editorRunner) *cobra.Command {
	if runEditor == nil {
		runEditor = defaultEditorRunner
	}

	return &cobra.Command{
		Use:   "edit [<date>]",
		Short: "Edit a day's entry in your editor",
		Long: `Open a day's entry in your editor as a Markdown draft with a Diario
and a Poesía section, and save the result back when the editor exits.

The editor is resolved from the settings file, then $DIARIO_EDITOR,
then $EDITOR, then vi. Changing the date in the draft's front matter
files the text under the new date.

Examples:
  diario edit               # Today's entry
  diario edit 2024-03-01    # A specific day
  diario edit ayer          # Yesterday`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, storage, runEditor, args)
		},
	}
}

// runEdit executes the edit command.
func runEdit(cmd *cobra.Command, storage *journal.FileStorage, runEditor editorRunner, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date, err := dateFromArgs(args)
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

	argv := strings.Fields(settings.ResolveEditor())
	if len(argv) == 0 {
		userErr := output.NewUserError("no editor configured; set editor in settings.yaml or $EDITOR")
		printer.Error(userErr)
		return userErr
	}

	storage, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry := doc.Ensure(date, "")
	buffer := draft.Render(date, entry)

	edited, err := editInTempFile(cmd.Context(), runEditor, argv, buffer)
	if err != nil {
		printer.Error(err)
		return err
	}

	if edited == buffer {
		return outputEditNoChanges(printer, date)
	}

	parsedDate, parsedEntry, err := draft.Parse(edited)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc.Put(parsedDate, parsedEntry)
	if err := storage.Save(doc); err != nil {
		printer.Error(err)
		return err
	}

	return outputEditSuccess(printer, parsedDate, parsedEntry)
}

// editInTempFile writes the draft to a temp file, runs the editor on it,
// and returns the edited content.
func editInTempFile(ctx context.Context, runEditor editorRunner, argv []string, buffer string) (string, error) {
	tmp, err := os.CreateTemp("", "diario-*.md")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to create the draft file", err)
	}
	path := tmp.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := tmp.WriteString(buffer); err != nil {
		_ = tmp.Close()
		return "", output.NewSystemErrorWithCause("failed to write the draft file", err)
	}
	if err := tmp.Close(); err != nil {
		return "", output.NewSystemErrorWithCause("failed to close the draft file", err)
	}

	if err := runEditor(ctx, argv, path); err != nil {
		return "", output.NewSystemErrorWithCause("editor "+argv[0]+" failed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to read the edited draft", err)
	}
	return string(data), nil
}

// outputEditNoChanges reports an editing session that changed nothing.
func outputEditNoChanges(printer *output.Printer, date journal.Date) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":  date.String(),
			"saved": false,
		})
	}
	printer.Print("No changes to %s.\n", date)
	return nil
}

// outputEditSuccess reports the saved entry.
func outputEditSuccess(printer *output.Printer, date journal.Date, entry *journal.Entry) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":  date.String(),
			"saved": true,
			"chars": entry.Chars(),
		})
	}
	printer.Print("Saved %s.\n", date)
	return nil
}
