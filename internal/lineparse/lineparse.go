// Package lineparse splits raw text lines into bordered cells.
//
// A dialect supplies a border pattern (for example `(?:\|\|+)|(?:\|)` for
// pipe tables, where a run of pipes is one border token). The parser records
// the border text on each side of every cell so downstream grammars can
// detect multi-character borders, which signal column spans.
package lineparse

import (
	"regexp"
	"strings"
)

// Cell is a single tokenized cell with the border text that flanked it.
type Cell struct {
	// Text is the raw cell content between borders, spaces included.
	Text string

	// LeftBorder is the border run on the left of the cell ("" at line start).
	LeftBorder string

	// RightBorder is the border run on the right of the cell ("" at line end).
	RightBorder string
}

// Line is the tokenized form of one raw text line.
type Line struct {
	// Cells are the tokenized cells in order.
	Cells []Cell
}

// Texts returns the raw text of every cell, for grammar predicates.
func (l *Line) Texts() []string {
	texts := make([]string, len(l.Cells))
	for i, c := range l.Cells {
		texts[i] = c.Text
	}
	return texts
}

// Parser tokenizes lines using a border pattern.
type Parser struct {
	border *regexp.Regexp
}

// NewParser creates a parser for the given border pattern.
// The pattern must be a valid regular expression; an invalid pattern is a
// programming error in the dialect definition and panics.
func NewParser(pattern string) *Parser {
	return &Parser{border: regexp.MustCompile(pattern)}
}

// Parse tokenizes one line. A line without any border match degrades to a
// single borderless cell holding the whole line; Parse never fails.
func (p *Parser) Parse(line string) *Line {
	locs := p.border.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return &Line{Cells: []Cell{{Text: line}}}
	}

	var cells []Cell

	// Text before the first border is a cell only when it has content.
	if lead := line[:locs[0][0]]; strings.TrimSpace(lead) != "" {
		cells = append(cells, Cell{
			Text:        lead,
			RightBorder: line[locs[0][0]:locs[0][1]],
		})
	}

	for i := 0; i < len(locs)-1; i++ {
		cells = append(cells, Cell{
			Text:        line[locs[i][1]:locs[i+1][0]],
			LeftBorder:  line[locs[i][0]:locs[i][1]],
			RightBorder: line[locs[i+1][0]:locs[i+1][1]],
		})
	}

	// Text after the last border is a cell only when it has content.
	last := locs[len(locs)-1]
	if trail := line[last[1]:]; strings.TrimSpace(trail) != "" {
		cells = append(cells, Cell{
			Text:       trail,
			LeftBorder: line[last[0]:last[1]],
		})
	}

	if len(cells) == 0 {
		// Borders with nothing between them, e.g. a bare "|".
		cells = []Cell{{Text: "", LeftBorder: line[locs[0][0]:locs[0][1]]}}
	}

	return &Line{Cells: cells}
}
