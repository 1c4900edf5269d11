package draft

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// metadata is the draft frontmatter block.
type metadata struct {
	Date  string `yaml:"date"`
	Color string `yaml:"color"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(&frontmatter.Extender{}),
)

// Parse reads a draft buffer back into a date and entry.
// Returns a user error describing what is malformed, never a partial entry.
func Parse(buffer string) (journal.Date, *journal.Entry, error) {
	source := []byte(NormalizeBuffer(buffer))

	pctx := parser.NewContext()
	doc := markdown.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	data := frontmatter.Get(pctx)
	if data == nil {
		return journal.Date{}, nil, output.NewUserError("draft is missing its metadata block (---\\ndate: ...\\n---)")
	}
	var meta metadata
	if err := data.Decode(&meta); err != nil {
		return journal.Date{}, nil, output.NewUserError("draft metadata is not valid YAML: " + err.Error())
	}
	if meta.Date == "" {
		return journal.Date{}, nil, output.NewUserError("draft metadata is missing the date")
	}
	date, err := journal.ParseDate(meta.Date)
	if err != nil {
		return journal.Date{}, nil, output.NewUserError(err.Error())
	}
	if meta.Color != "" && !journal.IsValidColor(meta.Color) {
		return journal.Date{}, nil, output.NewUserError(fmt.Sprintf("draft metadata color %q is not a #rgb or #rrggbb color", meta.Color))
	}

	journalText, poetryText, err := splitSections(doc, source)
	if err != nil {
		return journal.Date{}, nil, err
	}

	entry := journal.NewEntry(meta.Color)
	entry.Journal = journalText
	entry.Poetry = poetryText
	return date, entry, nil
}

// headingMark locates one level-2 heading in the source.
type headingMark struct {
	title     string
	textStop  int // end of the heading text
	lineStart int // start of the heading line
}

// splitSections extracts the raw text between the two section headings.
// Goldmark locates the headings; the text is sliced from the source bytes.
// The first Diario heading and the first Poesía heading after it are the
// section markers; any other heading is ordinary content.
func splitSections(doc ast.Node, source []byte) (journalText, poetryText string, err error) {
	var headings []headingMark
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		heading, ok := child.(*ast.Heading)
		if !ok || heading.Level != 2 || heading.Lines().Len() == 0 {
			continue
		}
		seg := heading.Lines().At(0)
		headings = append(headings, headingMark{
			title:     strings.TrimSpace(string(seg.Value(source))),
			textStop:  seg.Stop,
			lineStart: lineStartBefore(source, seg.Start),
		})
	}

	journalIdx, poetryIdx := -1, -1
	for i, h := range headings {
		if journalIdx < 0 && h.title == HeadingJournal {
			journalIdx = i
			continue
		}
		if journalIdx >= 0 && poetryIdx < 0 && h.title == HeadingPoetry {
			poetryIdx = i
		}
	}
	if journalIdx < 0 {
		return "", "", output.NewUserError(fmt.Sprintf("draft is missing the ## %s section", HeadingJournal))
	}
	if poetryIdx < 0 {
		return "", "", output.NewUserError(fmt.Sprintf("draft is missing the ## %s section (after ## %s)", HeadingPoetry, HeadingJournal))
	}

	journalText = sectionText(source, headings[journalIdx].textStop, headings[poetryIdx].lineStart)
	poetryText = sectionText(source, headings[poetryIdx].textStop, len(source))
	return journalText, poetryText, nil
}

// sectionText returns the source bytes between the end of a heading line
// and the given stop offset, with framing blank lines removed.
func sectionText(source []byte, from, to int) string {
	if from > len(source) {
		from = len(source)
	}
	if to > len(source) {
		to = len(source)
	}
	if from >= to {
		return ""
	}
	if nl := bytes.IndexByte(source[from:to], '\n'); nl >= 0 {
		from += nl + 1
	} else {
		from = to
	}
	raw := strings.TrimLeft(string(source[from:to]), "\n")
	return journal.TrimText(raw)
}

// lineStartBefore returns the offset of the start of the line containing pos.
func lineStartBefore(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	if nl := bytes.LastIndexByte(source[:pos], '\n'); nl >= 0 {
		return nl + 1
	}
	return 0
}
