package journal

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultColor is the background color for entries that never had one set.
const DefaultColor = "#fffef5"

// colorPattern matches 3- or 6-digit hex colors, the forms a color chooser
// produces.
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Entry is one day's journal and poetry text plus the background color
// preference for that day.
type Entry struct {
	Journal string `json:"journal"`
	Poetry  string `json:"poetry"`
	Color   string `json:"color,omitempty"`
}

// NewEntry returns an empty entry with the given background color.
// An empty color falls back to DefaultColor.
func NewEntry(color string) *Entry {
	if color == "" {
		color = DefaultColor
	}
	return &Entry{Color: color}
}

// IsValidColor reports whether s is a #rgb or #rrggbb hex color.
func IsValidColor(s string) bool { return colorPattern.MatchString(s) }

// TrimText strips trailing whitespace from section text, the way the
// editor panes do on save.
func TrimText(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// EffectiveColor returns the entry color, or DefaultColor when unset.
func (e *Entry) EffectiveColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}

// IsEmpty reports whether both text sections are blank.
func (e *Entry) IsEmpty() bool {
	return strings.TrimSpace(e.Journal) == "" && strings.TrimSpace(e.Poetry) == ""
}

// Chars returns the combined character count of both sections.
func (e *Entry) Chars() int {
	return utf8.RuneCountInString(e.Journal) + utf8.RuneCountInString(e.Poetry)
}

// Clone returns a copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

// Validate checks the entry fields. Only the color carries syntax; the
// text sections may legitimately be empty.
func (e *Entry) Validate() error {
	if e.Color != "" && !IsValidColor(e.Color) {
		return &ValidationError{
			Fields:  []string{"color"},
			Message: "invalid entry fields",
		}
	}
	return nil
}
