// Package main provides the entry point for the diario CLI.
package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// writeFlags holds all flag values for the write command.
type writeFlags struct {
	date    string
	poetry  bool
	replace bool
}

// newWriteCmd creates the write command.
func newWriteCmd() *cobra.Command {
	return newWriteCmdInternal(nil)
}

// newWriteCmdInternal creates the write command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newWriteCmdInternal(storage *journal.FileStorage) *cobra.Command {
	var (
		dateFlag    string
		poetryFlag  bool
		replaceFlag bool
	)

	cmd := &cobra.Command{
		Use:   "write <text...>",
		Short: "Add text to a day's entry",
		Long: `Add text to the journal section of a day's entry, or to the poetry
section with --poetry. Text is appended on a new line by default;
--replace overwrites the section instead. A single '-' argument reads
the text from stdin.

Examples:
  diario write "Hoy caminé hasta el río."
  diario write --poetry "y el agua se llevó la tarde"
  diario write --date ayer "Se me olvidó anotarlo."
  diario write --replace "Borrón y cuenta nueva."
  cat nota.txt | diario write -`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, storage, args, writeFlags{
				date:    dateFlag,
				poetry:  poetryFlag,
				replace: replaceFlag,
			})
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Entry date (default: today)")
	cmd.Flags().BoolVar(&poetryFlag, "poetry", false, "Write to the poetry section instead of the journal")
	cmd.Flags().BoolVar(&replaceFlag, "replace", false, "Replace the section instead of appending")

	return cmd
}

// runWrite executes the write command.
func runWrite(cmd *cobra.Command, storage *journal.FileStorage, args []string, flags writeFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date, err := parseDateArg(flags.date)
	if err != nil {
		printer.Error(err)
		return err
	}

	text, err := readWriteText(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	storage, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry := doc.Ensure(date, "")
	section := applySectionText(entry, text, flags)

	if err := storage.Save(doc); err != nil {
		printer.Error(err)
		return err
	}

	return outputWriteSuccess(printer, date, entry, section, flags.replace)
}

// readWriteText joins the positional arguments into the text to write.
// A single "-" argument reads stdin instead.
func readWriteText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", output.NewSystemErrorWithCause("failed to read stdin", err)
		}
		text := journal.TrimText(string(data))
		if text == "" {
			return "", output.NewUserError("stdin was empty; nothing to write")
		}
		return text, nil
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", output.NewUserError("no text given; pass text or '-' to read from stdin")
	}
	return text, nil
}

// applySectionText writes the text into the selected section and returns
// the section name. Appends join with a newline.
func applySectionText(entry *journal.Entry, text string, flags writeFlags) string {
	target := &entry.Journal
	section := "journal"
	if flags.poetry {
		target = &entry.Poetry
		section = "poetry"
	}

	switch {
	case flags.replace, *target == "":
		*target = text
	default:
		*target = *target + "\n" + text
	}
	return section
}

// outputWriteSuccess reports the write in the active output mode.
func outputWriteSuccess(printer *output.Printer, date journal.Date, entry *journal.Entry, section string, replaced bool) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":     date.String(),
			"section":  section,
			"replaced": replaced,
			"chars":    entry.Chars(),
		})
	}

	verb := "Appended to"
	if replaced {
		verb = "Replaced"
	}
	printer.Print("%s the %s section of %s.\n", verb, section, date)
	return nil
}
