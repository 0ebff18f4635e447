package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column is one logical cell of a row. A column with colspan n merges n
// visual positions; the spanned positions are held by pseudo columns.
type Column interface {
	// Text returns the trimmed cell content.
	Text() string

	// MinLen returns the minimum width of one visual position of the column.
	MinLen() int

	// TotalMinLen returns the minimum width across the whole span, including
	// the colspan-1 border characters absorbed by the span.
	TotalMinLen() int

	// Render produces the cell text padded to the resolved span width.
	Render() string

	// AlignFollow reports the alignment this column imposes on the data
	// columns sharing its position, AlignNone for non-alignment columns.
	AlignFollow() Alignment

	// Pseudo reports whether this column only holds a spanned position open.
	Pseudo() bool

	Colspan() int
	SetColspan(int)
	Width() int
	SetWidth(int)
	TotalWidth() int
	Align() Alignment
	SetAlign(Alignment)
	Header() bool
	SetHeader(bool)
	AddPseudo(Column)
}

// ColumnBase carries the state shared by every column variant. Variants
// embed it and implement Text, MinLen, TotalMinLen and Render themselves.
type ColumnBase struct {
	colspan int
	width   int
	align   Alignment
	header  bool
	pseudos []Column
}

// NewColumnBase returns a base with colspan 1.
func NewColumnBase() ColumnBase {
	return ColumnBase{colspan: 1}
}

// Colspan returns the number of visual positions the column merges.
func (c *ColumnBase) Colspan() int { return c.colspan }

// SetColspan sets the span; values below 1 are clamped to 1.
func (c *ColumnBase) SetColspan(n int) {
	if n < 1 {
		n = 1
	}
	c.colspan = n
}

// Width returns the resolved width of the column's own visual position.
func (c *ColumnBase) Width() int { return c.width }

// SetWidth assigns the resolved width for the column's own position.
func (c *ColumnBase) SetWidth(w int) { c.width = w }

// TotalWidth returns the rendered width of the whole span: the column's own
// width plus the widths assigned to its pseudo columns.
func (c *ColumnBase) TotalWidth() int {
	total := c.width
	for _, p := range c.pseudos {
		total += p.Width()
	}
	return total
}

// Align returns the alignment propagated onto this column.
func (c *ColumnBase) Align() Alignment { return c.align }

// SetAlign sets the propagated alignment.
func (c *ColumnBase) SetAlign(a Alignment) { c.align = a }

// Header reports whether the column belongs to a header row.
func (c *ColumnBase) Header() bool { return c.header }

// SetHeader marks the column as part of a header row.
func (c *ColumnBase) SetHeader(h bool) { c.header = h }

// AlignFollow returns AlignNone; alignment column variants override it.
func (c *ColumnBase) AlignFollow() Alignment { return AlignNone }

// Pseudo returns false; PseudoColumn overrides it.
func (c *ColumnBase) Pseudo() bool { return false }

// AddPseudo registers a pseudo column occupying one of this span's positions.
func (c *ColumnBase) AddPseudo(p Column) { c.pseudos = append(c.pseudos, p) }

// DataColumn is the universal cell variant holding ordinary text.
type DataColumn struct {
	ColumnBase
	tbl  *Table
	text string
}

// NewDataColumn creates a data column owned by a row of t.
func NewDataColumn(t *Table, text string) *DataColumn {
	return &DataColumn{ColumnBase: NewColumnBase(), tbl: t, text: strings.TrimSpace(text)}
}

// Text returns the trimmed cell content.
func (c *DataColumn) Text() string { return c.text }

// TotalMinLen is the display width of the text plus inner padding plus the
// border characters absorbed by the span.
func (c *DataColumn) TotalMinLen() int {
	return runewidth.StringWidth(c.text) + 2*c.tbl.padWidth() + (c.Colspan() - 1)
}

// MinLen distributes the span minimum over its visual positions, rounding up.
func (c *DataColumn) MinLen() int {
	return ceilDiv(c.TotalMinLen(), c.Colspan())
}

// Render pads the text to the span's resolved width, honoring header
// centering, propagated alignment and the table default, in that order.
func (c *DataColumn) Render() string {
	pad := c.tbl.padWidth()
	inner := c.TotalWidth() - 2*pad

	align := c.Align()
	if c.Header() {
		align = AlignCenter
	} else if align == AlignNone {
		align = c.tbl.DefaultAlignment()
	}

	space := strings.Repeat(" ", pad)
	return space + alignText(c.text, inner, align) + space
}

// PseudoColumn holds open a visual position claimed by a spanning column.
// It renders nothing; the row's border characters between the master and its
// pseudo columns are what produce the multi-character span border.
type PseudoColumn struct {
	ColumnBase
	master Column
}

// NewPseudoColumn creates a placeholder for one position of master's span.
func NewPseudoColumn(master Column) *PseudoColumn {
	return &PseudoColumn{ColumnBase: NewColumnBase(), master: master}
}

// Master returns the spanning column this placeholder belongs to.
func (c *PseudoColumn) Master() Column { return c.master }

// Text returns the empty string.
func (c *PseudoColumn) Text() string { return "" }

// MinLen mirrors the master so every spanned position reserves its share.
func (c *PseudoColumn) MinLen() int { return c.master.MinLen() }

// TotalMinLen mirrors the master.
func (c *PseudoColumn) TotalMinLen() int { return c.master.TotalMinLen() }

// Render returns the empty string; the master renders across the span.
func (c *PseudoColumn) Render() string { return "" }

// Pseudo reports true.
func (c *PseudoColumn) Pseudo() bool { return true }

// alignText pads text with spaces to the given display width. Text already
// at or beyond the width is returned unchanged.
func alignText(text string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// ceilDiv divides rounding up, for distributing span widths over positions.
func ceilDiv(n, d int) int {
	if d <= 0 {
		return n
	}
	return (n + d - 1) / d
}
