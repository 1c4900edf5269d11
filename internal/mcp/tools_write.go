package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entrelineas/diario/internal/journal"
)

// WriteEntryInput is the input for the write_entry tool.
type WriteEntryInput struct {
	Date    string `json:"date,omitempty"    jsonschema:"entry date in YYYY-MM-DD form, empty for today"`
	Journal string `json:"journal,omitempty" jsonschema:"journal text to write"`
	Poetry  string `json:"poetry,omitempty"  jsonschema:"poetry text to write"`
	Append  bool   `json:"append,omitempty"  jsonschema:"append to the existing text instead of replacing it"`
	Color   string `json:"color,omitempty"   jsonschema:"background color as #rgb or #rrggbb"`
}

// WriteEntryOutput is the output for the write_entry tool.
type WriteEntryOutput struct {
	Date  string `json:"date"  jsonschema:"the date written"`
	Saved bool   `json:"saved" jsonschema:"whether the journal file was written"`
	Chars int    `json:"chars" jsonschema:"character count of the entry after the write"`
}

func handleWriteEntry(storage *journal.FileStorage) mcp.ToolHandlerFor[WriteEntryInput, WriteEntryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WriteEntryInput) (*mcp.CallToolResult, WriteEntryOutput, error) {
		if err := validateWriteInput(input); err != nil {
			return nil, WriteEntryOutput{}, err
		}

		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, WriteEntryOutput{}, err
		}

		doc, err := storage.Load()
		if err != nil {
			return nil, WriteEntryOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		entry := doc.Ensure(date, "")
		applyText(&entry.Journal, input.Journal, input.Append)
		applyText(&entry.Poetry, input.Poetry, input.Append)
		if input.Color != "" {
			entry.Color = input.Color
		}

		if err := storage.Save(doc); err != nil {
			return nil, WriteEntryOutput{}, fmt.Errorf("saving journal: %w", err)
		}

		out := WriteEntryOutput{
			Date:  date.String(),
			Saved: true,
			Chars: entry.Chars(),
		}
		return nil, out, nil
	}
}

// validateWriteInput checks that the call changes something and that a
// given color is a real hex color.
func validateWriteInput(input WriteEntryInput) error {
	if input.Journal == "" && input.Poetry == "" && input.Color == "" {
		return errors.New("nothing to write: provide journal, poetry, or color")
	}
	if input.Color != "" && !journal.IsValidColor(input.Color) {
		return fmt.Errorf("color %q is not a #rgb or #rrggbb color", input.Color)
	}
	return nil
}

// applyText replaces or appends one section's text in place. Empty
// input leaves the section untouched.
func applyText(target *string, text string, appendTo bool) {
	if text == "" {
		return
	}
	if appendTo && *target != "" {
		*target = *target + "\n" + text
		return
	}
	*target = text
}
