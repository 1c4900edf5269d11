package journal

import (
	"strings"
	"testing"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry("#aabbcc")
	if entry.Color != "#aabbcc" {
		t.Errorf("Color = %q, want %q", entry.Color, "#aabbcc")
	}
	if entry.Journal != "" || entry.Poetry != "" {
		t.Error("new entry should have empty text sections")
	}

	fallback := NewEntry("")
	if fallback.Color != DefaultColor {
		t.Errorf("Color = %q, want default %q", fallback.Color, DefaultColor)
	}
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  bool
	}{
		{name: "six digit lowercase", color: "#fffef5", want: true},
		{name: "six digit uppercase", color: "#FFFEF5", want: true},
		{name: "three digit", color: "#fab", want: true},
		{name: "missing hash", color: "fffef5", want: false},
		{name: "wrong length", color: "#ffff", want: false},
		{name: "non-hex characters", color: "#gggggg", want: false},
		{name: "empty", color: "", want: false},
		{name: "named color", color: "ivory", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidColor(tt.color); got != tt.want {
				t.Errorf("IsValidColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestTrimText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing newline", input: "una línea\n", want: "una línea"},
		{name: "trailing spaces and newlines", input: "verso  \n\n", want: "verso"},
		{name: "leading whitespace kept", input: "  sangría\n", want: "  sangría"},
		{name: "interior newlines kept", input: "uno\ndos\n", want: "uno\ndos"},
		{name: "only whitespace", input: " \n\t", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimText(tt.input); got != tt.want {
				t.Errorf("TrimText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEntry_EffectiveColor(t *testing.T) {
	withColor := &Entry{Color: "#112233"}
	if got := withColor.EffectiveColor(); got != "#112233" {
		t.Errorf("EffectiveColor() = %q, want %q", got, "#112233")
	}

	withoutColor := &Entry{}
	if got := withoutColor.EffectiveColor(); got != DefaultColor {
		t.Errorf("EffectiveColor() = %q, want default %q", got, DefaultColor)
	}
}

func TestEntry_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{name: "both empty", entry: Entry{}, want: true},
		{name: "whitespace only", entry: Entry{Journal: " \n", Poetry: "\t"}, want: true},
		{name: "journal text", entry: Entry{Journal: "hoy escribí"}, want: false},
		{name: "poetry text", entry: Entry{Poetry: "verso corto"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_Chars(t *testing.T) {
	// Accented characters count as one each.
	entry := &Entry{Journal: "café", Poetry: "día"}
	if got := entry.Chars(); got != 7 {
		t.Errorf("Chars() = %d, want 7", got)
	}
}

func TestEntry_Clone(t *testing.T) {
	original := &Entry{Journal: "texto", Poetry: "verso", Color: "#fffef5"}
	clone := original.Clone()

	clone.Journal = "otro texto"
	if original.Journal != "texto" {
		t.Error("modifying clone changed the original")
	}
	if clone.Poetry != original.Poetry || clone.Color != original.Color {
		t.Error("clone should copy all fields")
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{name: "valid with color", entry: Entry{Color: "#fffef5"}, wantErr: false},
		{name: "valid without color", entry: Entry{Journal: "texto"}, wantErr: false},
		{name: "empty text is valid", entry: Entry{Color: "#fab"}, wantErr: false},
		{name: "malformed color", entry: Entry{Color: "blanco"}, wantErr: true},
		{name: "color missing hash", entry: Entry{Color: "fffef5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var valErr *ValidationError
				if !AsValidationError(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
					return
				}
				if !strings.Contains(valErr.Error(), "color") {
					t.Errorf("error %q should name the color field", valErr.Error())
				}
			}
		})
	}
}
