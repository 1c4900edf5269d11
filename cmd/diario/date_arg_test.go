package main

import (
	"testing"

	"github.com/entrelineas/diario/internal/journal"
)

func TestParseDateArg(t *testing.T) {
	today := journal.Today()

	tests := []struct {
		name    string
		input   string
		want    journal.Date
		wantErr bool
	}{
		{"empty means today", "", today, false},
		{"today keyword", "today", today, false},
		{"hoy keyword", "hoy", today, false},
		{"yesterday keyword", "yesterday", today.Add(-1), false},
		{"ayer keyword", "ayer", today.Add(-1), false},
		{"one day ago", "-1", today.Add(-1), false},
		{"a week ago", "-7", today.Add(-7), false},
		{"iso date", "2024-03-09", journal.MustDate("2024-03-09"), false},
		{"unpadded month and day", "2024-3-9", journal.MustDate("2024-03-09"), false},
		{"not a date", "marzo", journal.Date{}, true},
		{"bad month", "2024-13-01", journal.Date{}, true},
		{"double dash", "--3", journal.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateArg(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDateArg(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseDateArg(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateFromArgs(t *testing.T) {
	got, err := dateFromArgs(nil)
	if err != nil {
		t.Fatalf("dateFromArgs(nil) error = %v", err)
	}
	if got != journal.Today() {
		t.Errorf("dateFromArgs(nil) = %s, want today", got)
	}

	got, err = dateFromArgs([]string{"2024-03-09"})
	if err != nil {
		t.Fatalf("dateFromArgs() error = %v", err)
	}
	if got != journal.MustDate("2024-03-09") {
		t.Errorf("dateFromArgs() = %s, want 2024-03-09", got)
	}

	if _, err := dateFromArgs([]string{"nunca"}); err == nil {
		t.Error("dateFromArgs() with a malformed date should error")
	}
}
