package draft

import (
	"strings"
	"testing"

	"github.com/entrelineas/diario/internal/journal"
)

func TestRender(t *testing.T) {
	date := journal.MustDate("2024-01-01")
	entry := &journal.Entry{Journal: "texto del día", Poetry: "verso corto", Color: "#aabbcc"}

	got := Render(date, entry)
	want := "---\n" +
		"date: 2024-01-01\n" +
		"color: \"#aabbcc\"\n" +
		"---\n\n" +
		"## Diario\n\n" +
		"texto del día\n\n" +
		"## Poesía\n\n" +
		"verso corto\n"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_EmptyEntry(t *testing.T) {
	date := journal.MustDate("2024-01-01")

	got := Render(date, journal.NewEntry(""))
	want := "---\n" +
		"date: 2024-01-01\n" +
		"color: \"#fffef5\"\n" +
		"---\n\n" +
		"## Diario\n\n" +
		"## Poesía\n"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_DefaultsColor(t *testing.T) {
	got := Render(journal.MustDate("2024-01-01"), &journal.Entry{Journal: "x"})
	if want := "color: \"#fffef5\"\n"; !strings.Contains(got, want) {
		t.Errorf("Render() missing %q in:\n%s", want, got)
	}
}
