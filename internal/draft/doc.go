// Package draft renders entries as editable text buffers and parses the
// edited result back.
//
// A draft is what $EDITOR opens for `diario edit` and for the editor
// binding in the calendar view: a YAML metadata block with the date and
// background color, followed by one ## section per text block.
//
//	---
//	date: 2024-01-01
//	color: "#fffef5"
//	---
//
//	## Diario
//
//	texto del día...
//
//	## Poesía
//
//	verso del día...
//
// Parsing slices section text straight from the buffer bytes, so spacing
// and blank lines inside a section survive the round trip. Blank lines
// framing a section are layout, not content.
package draft
