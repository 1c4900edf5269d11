package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entrelineas/diario/internal/journal"
)

// --- show_entry tool ---

// ShowEntryInput is the input for the show_entry tool.
type ShowEntryInput struct {
	Date string `json:"date,omitempty" jsonschema:"entry date in YYYY-MM-DD form, empty for today"`
}

// ShowEntryOutput is the output for the show_entry tool.
type ShowEntryOutput struct {
	Date    string `json:"date"    jsonschema:"entry date"`
	Journal string `json:"journal" jsonschema:"journal section text"`
	Poetry  string `json:"poetry"  jsonschema:"poetry section text"`
	Color   string `json:"color"   jsonschema:"background color as a hex value"`
}

func handleShowEntry(storage *journal.FileStorage) mcp.ToolHandlerFor[ShowEntryInput, ShowEntryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowEntryInput) (*mcp.CallToolResult, ShowEntryOutput, error) {
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, ShowEntryOutput{}, err
		}

		doc, err := storage.Load()
		if err != nil {
			return nil, ShowEntryOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		entry := doc.Get(date)
		if entry == nil {
			return nil, ShowEntryOutput{}, fmt.Errorf("no entry for %s", date)
		}

		out := ShowEntryOutput{
			Date:    date.String(),
			Journal: entry.Journal,
			Poetry:  entry.Poetry,
			Color:   entry.EffectiveColor(),
		}
		return nil, out, nil
	}
}

// --- list_dates tool ---

// ListDatesInput is the input for the list_dates tool.
type ListDatesInput struct {
	Since    string `json:"since,omitempty"     jsonschema:"keep dates on or after this date (YYYY-MM-DD)"`
	Until    string `json:"until,omitempty"     jsonschema:"keep dates on or before this date (YYYY-MM-DD)"`
	Limit    int    `json:"limit,omitempty"     jsonschema:"maximum number of dates to return"`
	NonEmpty bool   `json:"non_empty,omitempty" jsonschema:"only dates whose entry has text"`
}

// DateSummary is one row of the list_dates output.
type DateSummary struct {
	Date    string `json:"date"              jsonschema:"entry date"`
	Chars   int    `json:"chars"             jsonschema:"combined character count of both sections"`
	Preview string `json:"preview,omitempty" jsonschema:"first line of the journal text"`
}

// ListDatesOutput is the output for the list_dates tool.
type ListDatesOutput struct {
	Dates []DateSummary `json:"dates" jsonschema:"matching dates, newest first"`
	Count int           `json:"count" jsonschema:"number of matching dates"`
}

func handleListDates(storage *journal.FileStorage) mcp.ToolHandlerFor[ListDatesInput, ListDatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
		doc, err := storage.Load()
		if err != nil {
			return nil, ListDatesOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		dates := doc.Dates()
		if input.Since != "" {
			cutoff, parseErr := journal.ParseDate(input.Since)
			if parseErr != nil {
				return nil, ListDatesOutput{}, parseErr
			}
			dates = journal.FilterDatesSince(dates, cutoff)
		}
		if input.Until != "" {
			cutoff, parseErr := journal.ParseDate(input.Until)
			if parseErr != nil {
				return nil, ListDatesOutput{}, parseErr
			}
			dates = journal.FilterDatesUntil(dates, cutoff)
		}
		if input.NonEmpty {
			dates = journal.FilterNonEmpty(doc, dates)
		}
		dates = journal.LimitDates(dates, input.Limit)

		out := ListDatesOutput{
			Dates: toDateSummaries(doc, dates),
			Count: len(dates),
		}
		return nil, out, nil
	}
}
