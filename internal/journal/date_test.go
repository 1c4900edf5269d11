package journal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "canonical form",
			input: "2024-01-02",
			want:  "2024-01-02",
		},
		{
			name:  "single digit month and day",
			input: "2024-1-2",
			want:  "2024-01-02",
		},
		{
			name:  "end of year",
			input: "2025-12-31",
			want:  "2025-12-31",
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  "2024-02-29",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday-ish",
			wantErr: true,
		},
		{
			name:    "slashes not accepted",
			input:   "2024/01/02",
			wantErr: true,
		},
		{
			name:    "time component not accepted",
			input:   "2024-01-02T10:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	// Day 32 rolls into February, same as time.Date.
	got := NewDate(2024, time.January, 32)
	if got.String() != "2024-02-01" {
		t.Errorf("NewDate(2024, January, 32) = %q, want %q", got, "2024-02-01")
	}
}

func TestDate_Add(t *testing.T) {
	tests := []struct {
		name string
		date Date
		days int
		want string
	}{
		{
			name: "next day",
			date: MustDate("2024-01-01"),
			days: 1,
			want: "2024-01-02",
		},
		{
			name: "previous day",
			date: MustDate("2024-01-01"),
			days: -1,
			want: "2023-12-31",
		},
		{
			name: "across leap day",
			date: MustDate("2024-02-28"),
			days: 2,
			want: "2024-03-01",
		},
		{
			name: "zero days",
			date: MustDate("2024-06-15"),
			days: 0,
			want: "2024-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Add(tt.days); got.String() != tt.want {
				t.Errorf("%s.Add(%d) = %q, want %q", tt.date, tt.days, got, tt.want)
			}
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	earlier := MustDate("2024-01-01")
	later := MustDate("2024-01-02")

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date should not be before or after itself")
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if MustDate("2024-01-01").IsZero() {
		t.Error("real date should not report IsZero")
	}
}

func TestDate_TextRoundTrip(t *testing.T) {
	original := MustDate("2024-03-09")

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "2024-03-09" {
		t.Errorf("MarshalText() = %q, want %q", text, "2024-03-09")
	}

	var restored Date
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if restored != original {
		t.Errorf("round-trip changed date: got %v, want %v", restored, original)
	}
}

func TestDate_AsJSONMapKey(t *testing.T) {
	// Map keys marshal through MarshalText and come out sorted, so ISO
	// dates land in chronological order.
	m := map[Date]int{
		MustDate("2024-01-02"): 2,
		MustDate("2023-12-31"): 1,
		MustDate("2024-01-10"): 3,
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"2023-12-31":1,"2024-01-02":2,"2024-01-10":3}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var restored map[Date]int
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(restored) != 3 || restored[MustDate("2024-01-02")] != 2 {
		t.Errorf("Unmarshal() = %v, want original map back", restored)
	}
}

func TestToday(t *testing.T) {
	now := time.Now()
	today := Today()
	if today.Year() != now.Year() || today.Month() != now.Month() || today.Day() != now.Day() {
		t.Errorf("Today() = %v, want current date %v", today, now.Format(DateFormat))
	}
}
