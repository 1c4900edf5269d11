// Package main provides the entry point for the diario CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// newColorCmd creates the color command.
func newColorCmd() *cobra.Command {
	return newColorCmdInternal(nil)
}

// newColorCmdInternal creates the color command with optional storage injection.
// If storage is nil, the real storage is resolved when the command runs.
func newColorCmdInternal(storage *journal.FileStorage) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "color [<hex>]",
		Short: "Show or set a day's background color",
		Long: `Show or set the background color of a day's entry.

Without an argument the current color is printed. With a #rgb or
#rrggbb value the color is stored on the entry and the journal shell
paints that day with it.

Examples:
  diario color                      # Today's color
  diario color "#f3f7ee"            # Paint today sage
  diario color --date ayer          # Yesterday's color
  diario color "#eef4f8" --date 2024-03-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColor(cmd, storage, args, dateFlag)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Entry date (default: today)")

	return cmd
}

// runColor executes the color command.
func runColor(cmd *cobra.Command, storage *journal.FileStorage, args []string, dateFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date, err := parseDateArg(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	storage, doc, err := loadDocument(cmd, storage)
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(args) == 0 {
		return outputCurrentColor(printer, doc, date)
	}

	return setEntryColor(printer, storage, doc, date, args[0])
}

// outputCurrentColor prints the entry's effective color.
func outputCurrentColor(printer *output.Printer, doc *journal.Document, date journal.Date) error {
	entry := doc.Get(date)
	if entry == nil {
		userErr := output.NewUserError(fmt.Sprintf("no entry for %s", date))
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"date":  date.String(),
			"color": entry.EffectiveColor(),
		})
	}
	printer.Println(entry.EffectiveColor())
	return nil
}

// setEntryColor stores a new color on the entry and saves the document.
func setEntryColor(printer *output.Printer, storage *journal.FileStorage, doc *journal.Document, date journal.Date, color string) error {
	if !journal.IsValidColor(color) {
		userErr := output.NewUserError(fmt.Sprintf("color %q is not a #rgb or #rrggbb hex color", color))
		printer.Error(userErr)
		return userErr
	}

	entry := doc.Ensure(date, "")
	entry.Color = color

	if err := storage.Save(doc); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":  date.String(),
			"color": color,
		})
	}
	printer.Print("Set the color of %s to %s\n", date, color)
	return nil
}
