package syntax

import (
	"strings"

	"github.com/dshills/tablestorm/internal/table"
)

// minSeparatorLen is the narrowest separator cell, "---" or "===".
const minSeparatorLen = 3

// SeparatorColumn is one cell of a plain horizontal rule in a grid dialect,
// filled with '-' or '='.
type SeparatorColumn struct {
	table.ColumnBase
	sep string
}

// NewSeparatorColumn creates a separator cell filled with sep.
func NewSeparatorColumn(sep string) *SeparatorColumn {
	return &SeparatorColumn{ColumnBase: table.NewColumnBase(), sep: sep}
}

// Text returns the narrowest form of the cell.
func (c *SeparatorColumn) Text() string {
	return strings.Repeat(c.sep, minSeparatorLen)
}

// MinLen returns the fixed separator minimum.
func (c *SeparatorColumn) MinLen() int { return minSeparatorLen }

// TotalMinLen returns the fixed separator minimum.
func (c *SeparatorColumn) TotalMinLen() int { return minSeparatorLen }

// Render fills the resolved width with the separator character.
func (c *SeparatorColumn) Render() string {
	return strings.Repeat(c.sep, c.TotalWidth())
}

// SeparatorRow is a plain horizontal rule without alignment markers.
// A '=' rule separates header from body.
type SeparatorRow struct {
	table.RowBase
	sep string
}

// NewSeparatorRow creates an empty separator row filled with sep
// ("-" or "=").
func NewSeparatorRow(t *table.Table, sep string) *SeparatorRow {
	return &SeparatorRow{RowBase: table.NewRowBase(t), sep: sep}
}

// Separator returns the fill character.
func (r *SeparatorRow) Separator() string { return r.sep }

// IsSeparator reports true.
func (r *SeparatorRow) IsSeparator() bool { return true }

// IsHeaderSeparator reports whether this is a double ('=') rule.
func (r *SeparatorRow) IsHeaderSeparator() bool { return r.sep == "=" }

// CreateColumn builds a separator cell; the cell text only ever restates
// the fill character.
func (r *SeparatorRow) CreateColumn(string) table.Column {
	return NewSeparatorColumn(r.sep)
}

// NewEmptyColumn builds a separator cell.
func (r *SeparatorRow) NewEmptyColumn() table.Column {
	return NewSeparatorColumn(r.sep)
}

// Render serializes the rule with the dialect's hline border characters.
func (r *SeparatorRow) Render() string {
	b := r.Table().Borders()
	return r.RenderWith(b.HlineOut, b.HlineIn)
}
