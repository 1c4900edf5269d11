// Package main provides the entry point for the diario CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/draft"
	"github.com/entrelineas/diario/internal/export"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// showResult is the JSON form of a single entry.
type showResult struct {
	Date    string `json:"date"`
	Journal string `json:"journal"`
	Poetry  string `json:"poetry"`
	Color   string `json:"color"`
	Chars   int    `json:"chars"`
}

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return newShowCmdInternal(nil)
}

// newShowCmdInternal creates the show command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newShowCmdInternal(storage *journal.FileStorage) *cobra.Command {
	var renderFlag bool

	cmd := &cobra.Command{
		Use:   "show [<date>]",
		Short: "Display one day's entry",
		Long: `Display the journal and poetry text of a single day.

The date argument accepts YYYY-MM-DD, today/hoy, yesterday/ayer, or -N
for N days ago. Without an argument, today's entry is shown.

Examples:
  diario show                  # Today's entry
  diario show 2024-03-01       # A specific day
  diario show ayer             # Yesterday
  diario show -7 --render      # A week ago, as rendered Markdown
  diario show --json           # Today's entry as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, storage, args, renderFlag)
		},
	}

	cmd.Flags().BoolVar(&renderFlag, "render", false, "Render the entry as styled Markdown")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, storage *journal.FileStorage, args []string, render bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date, err := dateFromArgs(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	_, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry := doc.Get(date)
	if entry == nil {
		userErr := output.NewUserError(fmt.Sprintf("no entry for %s", date))
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(showResult{
			Date:    date.String(),
			Journal: entry.Journal,
			Poetry:  entry.Poetry,
			Color:   entry.EffectiveColor(),
			Chars:   entry.Chars(),
		})
	}

	if render {
		return outputShowRendered(printer, date, entry)
	}

	outputShowHuman(printer, date, entry)
	return nil
}

// outputShowHuman prints the entry with section headers.
func outputShowHuman(printer *output.Printer, date journal.Date, entry *journal.Entry) {
	printer.Println(date.String())

	printer.Section(draft.HeadingJournal)
	printer.Println(textOrPlaceholder(entry.Journal))

	printer.Section(draft.HeadingPoetry)
	printer.Println(textOrPlaceholder(entry.Poetry))

	printer.Println()
	printer.KeyValue("Color", entry.EffectiveColor())
	printer.KeyValue("Chars", strconv.Itoa(entry.Chars()))
}

// outputShowRendered prints the entry's Markdown form through glamour.
func outputShowRendered(printer *output.Printer, date journal.Date, entry *journal.Entry) error {
	content, err := export.FormatEntry(export.Markdown, date, entry)
	if err != nil {
		printer.Error(err)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to build the Markdown renderer", err)
		printer.Error(sysErr)
		return sysErr
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to render the entry", err)
		printer.Error(sysErr)
		return sysErr
	}

	printer.Print("%s", rendered)
	return nil
}

// textOrPlaceholder substitutes a marker for empty sections.
func textOrPlaceholder(text string) string {
	if text == "" {
		return "(sin texto)"
	}
	return text
}
