// Package main provides the entry point for the diario CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/export"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
	"github.com/entrelineas/diario/internal/pandoc"
)

// exportFlags holds all flag values for the export command.
type exportFlags struct {
	format   string
	out      string
	toStdout bool
	force    bool
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(nil, nil)
}

// newExportCmdInternal creates the export command with optional storage and
// converter injection. Nil arguments select the real implementations.
func newExportCmdInternal(storage *journal.FileStorage, conv *pandoc.Converter) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [<date>]",
		Short: "Export one day's entry to a file",
		Long: `Export a day's entry as plain text, Markdown, or PDF.

PDF export renders through the external pandoc tool; txt and md are
written directly. Without --out the file is named diario-<date>.<ext>
and lands in the configured export directory (or the working
directory).

Examples:
  diario export                       # Today as diario-<date>.txt
  diario export 2024-03-01 --format md
  diario export --format pdf --out marzo.pdf
  diario export ayer --stdout         # Print instead of writing
  diario export --out diario.txt --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, storage, conv, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "Export format: txt, md, or pdf (default: txt, or inferred from --out)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file path")
	cmd.Flags().BoolVar(&flags.toStdout, "stdout", false, "Print the export to stdout instead of writing a file")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite the output file if it exists")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, storage *journal.FileStorage, conv *pandoc.Converter, args []string, flags *exportFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date, err := dateFromArgs(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	format, err := resolveExportFormat(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.toStdout && flags.out != "" {
		userErr := output.NewUserError("cannot use both --stdout and --out")
		printer.Error(userErr)
		return userErr
	}
	if flags.toStdout && format == export.PDF {
		userErr := output.NewUserError("pdf export needs a file; use --out instead of --stdout")
		printer.Error(userErr)
		return userErr
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

	if flags.toStdout {
		content, err := export.FormatEntry(format, date, entry)
		if err != nil {
			printer.Error(err)
			return err
		}
		printer.Print("%s", content)
		return nil
	}

	path, err := resolveExportPath(date, format, flags.out)
	if err != nil {
		printer.Error(err)
		return err
	}

	if conv == nil {
		conv = pandoc.NewConverter(nil, nil)
	}

	if err := export.ExportEntry(cmd.Context(), conv, date, entry, format, path, flags.force); err != nil {
		printer.Error(err)
		return err
	}

	return outputExportSuccess(printer, date, format, path)
}

// resolveExportFormat picks the export format from the flags.
// An explicit --format wins; otherwise the --out extension decides,
// and plain text is the final default.
func resolveExportFormat(flags *exportFlags) (export.Format, error) {
	if flags.format != "" {
		return export.ParseFormat(flags.format)
	}
	if flags.out != "" {
		if format, err := export.FormatFromPath(flags.out); err == nil {
			return format, nil
		}
	}
	return export.Text, nil
}

// resolveExportPath returns the output file path. Without --out the
// default filename lands in the configured export directory.
func resolveExportPath(date journal.Date, format export.Format, outFlag string) (string, error) {
	if outFlag != "" {
		return outFlag, nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return "", output.NewUserError(err.Error())
	}

	name := export.DefaultFilename(date, format)
	if settings.ExportDir != "" {
		return filepath.Join(settings.ExportDir, name), nil
	}
	return name, nil
}

// outputExportSuccess reports the written file.
func outputExportSuccess(printer *output.Printer, date journal.Date, format export.Format, path string) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":   date.String(),
			"format": string(format),
			"path":   path,
		})
	}
	printer.Print("Exported %s to %s\n", date, path)
	return nil
}
