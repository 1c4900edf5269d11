// Package export renders journal entries to the txt, md, and pdf formats.
//
// Every format is driven by a template: a markdown file with YAML
// frontmatter metadata and {{variable}} placeholders in the body. The
// built-in templates are embedded in the binary; a file with the same
// name under the config templates directory overrides them.
//
// # Formats
//
//   - txt: plain text, the entry sections carried over byte for byte
//   - md:  markdown with one heading per section
//   - pdf: rendered through the external pandoc binary
//
// # Template Variables
//
// Templates see these variables:
//
//	{{date}}     entry date as YYYY-MM-DD
//	{{journal}}  journal section text
//	{{poetry}}   poetry section text
//	{{color}}    entry background color
//
// Example txt output:
//
//	Diario y poesía - 2024-01-01
//
//	=== Diario ===
//	El cielo estaba cubierto de nubes suaves.
//
//	=== Poesía ===
//	La luna borda silencios de plata.
//
// # File Naming
//
// The conventional export filename is diario-<date>.<format>, for
// example diario-2024-01-01.txt.
package export
