package tui

import (
	"strings"

	"github.com/entrelineas/diario/internal/journal"
)

// palette holds the background colors the color key cycles through.
// The first one is the seeded default.
var palette = []string{
	journal.DefaultColor, // warm paper
	"#f3f7ee",            // sage
	"#eef4f8",            // mist
	"#f8f0ee",            // clay
	"#f5eef8",            // lilac
	"#f2f2e9",            // linen
}

// nextColor returns the palette color after current. A color outside
// the palette restarts the cycle.
func nextColor(current string) string {
	for i, color := range palette {
		if strings.EqualFold(color, current) {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
