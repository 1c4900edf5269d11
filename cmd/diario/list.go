// Package main provides the entry point for the diario CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// listFlags holds all flag values for the list command.
type listFlags struct {
	since    string
	until    string
	limit    int
	nonEmpty bool
}

// listRow is the JSON form of one listed date.
type listRow struct {
	Date    string `json:"date"`
	Chars   int    `json:"chars"`
	Preview string `json:"preview,omitempty"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return newListCmdInternal(nil)
}

// newListCmdInternal creates the list command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newListCmdInternal(storage *journal.FileStorage) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entry dates, newest first",
		Long: `List the dates that have entries, newest first, with a character
count and the first line of the journal text.

Examples:
  diario list                        # Every date
  diario list --since 2024-03-01     # From March onward
  diario list --limit 7              # The last week of entries
  diario list --non-empty            # Only days with written text
  diario list --json                 # Structured output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, storage, flags)
		},
	}

	cmd.Flags().StringVar(&flags.since, "since", "", "Only dates at or after this date")
	cmd.Flags().StringVar(&flags.until, "until", "", "Only dates at or before this date")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Maximum number of dates (0 = no limit)")
	cmd.Flags().BoolVar(&flags.nonEmpty, "non-empty", false, "Skip days with no written text")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, storage *journal.FileStorage, flags *listFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	_, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	dates, err := filterListDates(doc, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	rows := buildListRows(doc, dates)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"dates": rows,
			"count": len(rows),
		})
	}

	outputListHuman(printer, rows)
	return nil
}

// filterListDates applies the since/until/non-empty/limit filters.
func filterListDates(doc *journal.Document, flags *listFlags) ([]journal.Date, error) {
	dates := doc.Dates()

	if flags.since != "" {
		cutoff, err := parseDateArg(flags.since)
		if err != nil {
			return nil, err
		}
		dates = journal.FilterDatesSince(dates, cutoff)
	}
	if flags.until != "" {
		cutoff, err := parseDateArg(flags.until)
		if err != nil {
			return nil, err
		}
		dates = journal.FilterDatesUntil(dates, cutoff)
	}
	if flags.nonEmpty {
		dates = journal.FilterNonEmpty(doc, dates)
	}
	return journal.LimitDates(dates, flags.limit), nil
}

// buildListRows collects the display data for each date.
func buildListRows(doc *journal.Document, dates []journal.Date) []listRow {
	rows := make([]listRow, 0, len(dates))
	for _, date := range dates {
		entry := doc.Get(date)
		if entry == nil {
			continue
		}
		rows = append(rows, listRow{
			Date:    date.String(),
			Chars:   entry.Chars(),
			Preview: previewLine(entry.Journal, 48),
		})
	}
	return rows
}

// outputListHuman prints the rows as a table.
func outputListHuman(printer *output.Printer, rows []listRow) {
	if len(rows) == 0 {
		printer.Println("No entries.")
		return
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{row.Date, strconv.Itoa(row.Chars), row.Preview})
	}
	printer.Table([]string{"Date", "Chars", "Preview"}, tableRows)
}

// previewLine returns the first non-blank line of text, truncated to max runes.
func previewLine(text string, max int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > max {
			return string(runes[:max-1]) + "…"
		}
		return line
	}
	return ""
}
