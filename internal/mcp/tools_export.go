package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entrelineas/diario/internal/export"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/pandoc"
)

// ExportEntryInput is the input for the export_entry tool.
type ExportEntryInput struct {
	Date   string `json:"date,omitempty"   jsonschema:"entry date in YYYY-MM-DD form, empty for today"`
	Format string `json:"format,omitempty" jsonschema:"txt, md, or pdf (default txt)"`
	Out    string `json:"out,omitempty"    jsonschema:"output path (default diario-<date>.<ext> in the working directory)"`
	Force  bool   `json:"force,omitempty"  jsonschema:"overwrite the target when it already exists"`
}

// ExportEntryOutput is the output for the export_entry tool.
type ExportEntryOutput struct {
	Path   string `json:"path"   jsonschema:"the file written"`
	Format string `json:"format" jsonschema:"the format used"`
}

func handleExportEntry(storage *journal.FileStorage) mcp.ToolHandlerFor[ExportEntryInput, ExportEntryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportEntryInput) (*mcp.CallToolResult, ExportEntryOutput, error) {
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, ExportEntryOutput{}, err
		}

		formatValue := input.Format
		if formatValue == "" {
			formatValue = string(export.Text)
		}
		format, err := export.ParseFormat(formatValue)
		if err != nil {
			return nil, ExportEntryOutput{}, err
		}

		doc, err := storage.Load()
		if err != nil {
			return nil, ExportEntryOutput{}, fmt.Errorf("loading journal: %w", err)
		}
		entry := doc.Get(date)
		if entry == nil {
			return nil, ExportEntryOutput{}, fmt.Errorf("no entry for %s", date)
		}

		path := input.Out
		if path == "" {
			path = export.DefaultFilename(date, format)
		}

		conv := pandoc.NewConverter(nil, nil)
		if err := export.ExportEntry(ctx, conv, date, entry, format, path, input.Force); err != nil {
			return nil, ExportEntryOutput{}, err
		}

		out := ExportEntryOutput{
			Path:   path,
			Format: string(format),
		}
		return nil, out, nil
	}
}
