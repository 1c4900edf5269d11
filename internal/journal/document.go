package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SchemaVersion is the current schema version for journal documents.
const SchemaVersion = "diario.journal/v1"

// ErrUnknownSchema is returned when a data file declares a schema this
// version does not understand.
var ErrUnknownSchema = errors.New("unknown journal schema")

// ValidationError is returned when document or entry validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// AsValidationError checks if err is or wraps a ValidationError.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

// Document is the whole journal: a schema marker plus the date-keyed entry
// map persisted as a single JSON file.
type Document struct {
	Schema  string          `json:"schema"`
	Entries map[Date]*Entry `json:"entries"`

	// Legacy is set when the document was read from a bare date map with
	// no schema envelope. Not persisted; the next save writes the current
	// schema.
	Legacy bool `json:"-"`
}

// NewDocument returns an empty document with the current schema.
func NewDocument() *Document {
	return &Document{
		Schema:  SchemaVersion,
		Entries: make(map[Date]*Entry),
	}
}

// Get returns the entry for the given date, or nil if absent.
func (doc *Document) Get(date Date) *Entry {
	return doc.Entries[date]
}

// Ensure returns the entry for the date, creating an empty one with the
// given color at first access.
func (doc *Document) Ensure(date Date, color string) *Entry {
	if entry := doc.Entries[date]; entry != nil {
		return entry
	}
	entry := NewEntry(color)
	doc.Entries[date] = entry
	return entry
}

// Put stores the entry under the date.
func (doc *Document) Put(date Date, entry *Entry) {
	doc.Entries[date] = entry
}

// Count returns the number of entries.
func (doc *Document) Count() int {
	return len(doc.Entries)
}

// Dates returns all entry dates, most recent first.
func (doc *Document) Dates() []Date {
	dates := make([]Date, 0, len(doc.Entries))
	for date := range doc.Entries {
		dates = append(dates, date)
	}
	SortDatesDescending(dates)
	return dates
}

// Span returns the earliest and latest entry dates.
// ok is false when the document is empty.
func (doc *Document) Span() (first, last Date, ok bool) {
	for date := range doc.Entries {
		if !ok {
			first, last, ok = date, date, true
			continue
		}
		if date.Before(first) {
			first = date
		}
		if date.After(last) {
			last = date
		}
	}
	return first, last, ok
}

// Validate checks the schema marker and every entry.
// Returns a ValidationError naming each offending field.
func (doc *Document) Validate() error {
	var fields []string
	if doc.Schema != SchemaVersion {
		fields = append(fields, "schema")
	}

	// Walk entries in date order so the error message is stable.
	dates := make([]Date, 0, len(doc.Entries))
	for date := range doc.Entries {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for _, date := range dates {
		if err := doc.Entries[date].Validate(); err != nil {
			fields = append(fields, fmt.Sprintf("entries[%s].color", date))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{
			Fields:  fields,
			Message: "invalid journal document",
		}
	}
	return nil
}

// ToJSON serializes the document with stable, indented formatting.
// Map keys marshal as ISO dates, so entries land in chronological order.
func (doc *Document) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing journal to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// FromJSON deserializes a document. Bare date maps written before the
// schema envelope existed are detected and upgraded in memory, with the
// Legacy flag set so callers can mention it.
func FromJSON(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing journal JSON: %w", err)
	}
	if _, hasSchema := probe["schema"]; !hasSchema {
		return fromLegacyJSON(probe)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing journal JSON: %w", err)
	}
	if doc.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, doc.Schema)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[Date]*Entry)
	}
	return &doc, nil
}

// fromLegacyJSON upgrades the original flat {date: {journal, poetry}} form.
func fromLegacyJSON(raw map[string]json.RawMessage) (*Document, error) {
	doc := NewDocument()
	doc.Legacy = true
	for key, value := range raw {
		date, err := ParseDate(key)
		if err != nil {
			return nil, fmt.Errorf("legacy journal key %q: %w", key, err)
		}
		var entry Entry
		if err := json.Unmarshal(value, &entry); err != nil {
			return nil, fmt.Errorf("legacy journal entry %s: %w", key, err)
		}
		doc.Entries[date] = &entry
	}
	return doc, nil
}
