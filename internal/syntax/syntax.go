// Package syntax provides the plumbing shared by table dialects: the
// Syntax descriptor, the line-to-row parser, border separator rows and the
// structural edit operations.
//
// A dialect (see the markdown and pandoc subpackages) contributes a border
// pattern, a Grammar that classifies tokenized lines, and a Driver that
// implements its edit operations.
package syntax

import (
	"strings"

	"github.com/dshills/tablestorm/internal/lineparse"
	"github.com/dshills/tablestorm/internal/table"
)

// Grammar classifies tokenized lines into typed rows and columns.
// Implementations must never fail: a line that matches no specialized rule
// classifies as a data row, the universal fallback.
type Grammar interface {
	// CreateRow picks the row variant for a tokenized line.
	CreateRow(t *table.Table, ln *lineparse.Line) table.Row

	// CreateColumn builds a column of the row's variant from one cell,
	// applying dialect rules such as colspan detection.
	CreateColumn(row table.Row, cell lineparse.Cell) table.Column
}

// Syntax describes one table dialect: its name, tokenizer, border
// characters, grammar and edit operations.
type Syntax struct {
	// Name is the human-readable dialect name.
	Name string

	// Line tokenizes raw lines with the dialect's border pattern.
	Line *lineparse.Parser

	// Borders are the characters the dialect renders with.
	Borders table.Borders

	// DefaultAlign applies to data columns with no explicit alignment.
	DefaultAlign table.Alignment

	// SpacesInsideBorder pads data cells with a space on each side.
	SpacesInsideBorder bool

	// Grammar classifies lines for this dialect.
	Grammar Grammar

	// Driver implements the dialect's structural edit operations.
	Driver Driver
}

// NewTable creates an empty table carrying this dialect's render properties.
func (s *Syntax) NewTable() *table.Table {
	return table.New(
		table.WithBorders(s.Borders),
		table.WithDefaultAlignment(s.DefaultAlign),
		table.WithSpacesInsideBorder(s.SpacesInsideBorder),
	)
}

// Parse builds a packed table from a region of raw lines. Parsing is
// best-effort and never fails: unclassifiable lines become data rows.
// The indentation of the first line is kept and re-emitted on render.
func (s *Syntax) Parse(lines []string) *table.Table {
	tbl := s.NewTable()
	if len(lines) > 0 {
		tbl.SetPrefix(indentOf(lines[0]))
	}
	for _, raw := range lines {
		ln := s.Line.Parse(strings.TrimRight(raw, " \t"))
		row := s.Grammar.CreateRow(tbl, ln)
		for _, cell := range ln.Cells {
			row.Append(s.Grammar.CreateColumn(row, cell))
		}
		tbl.AddRow(row)
	}
	tbl.Pack()
	return tbl
}

// indentOf returns the leading whitespace of a line.
func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
