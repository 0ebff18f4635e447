package table

import "strings"

// Row is one line of the table. Variants differ in what they are
// (data, separator, alignment) and in how their columns render.
type Row interface {
	// IsData reports whether the row holds ordinary cell text.
	IsData() bool

	// IsSeparator reports whether the row is a horizontal rule.
	IsSeparator() bool

	// IsHeaderSeparator reports whether the row separates header from body.
	IsHeaderSeparator() bool

	// IsAlign reports whether the row carries alignment markers.
	IsAlign() bool

	// Columns returns the row's columns, pseudo columns included.
	Columns() []Column

	// Append adds a column, expanding colspan with pseudo columns.
	Append(Column)

	// CreateColumn builds this row's column variant from raw cell text.
	CreateColumn(text string) Column

	// NewEmptyColumn builds the placeholder used when packing pads the row.
	NewEmptyColumn() Column

	// Render serializes the row to one line of text, borders included.
	Render() string
}

// RowBase carries the state and defaults shared by every row variant.
type RowBase struct {
	tbl  *Table
	cols []Column
}

// NewRowBase returns a base bound to its owning table.
func NewRowBase(t *Table) RowBase {
	return RowBase{tbl: t}
}

// Table returns the owning table.
func (r *RowBase) Table() *Table { return r.tbl }

// Columns returns the row's columns, pseudo columns included.
func (r *RowBase) Columns() []Column { return r.cols }

// Append adds a column. A column with colspan n is followed by n-1 pseudo
// columns so the row's column slice counts visual positions.
func (r *RowBase) Append(c Column) {
	r.cols = append(r.cols, c)
	for i := 1; i < c.Colspan(); i++ {
		p := NewPseudoColumn(c)
		c.AddPseudo(p)
		r.cols = append(r.cols, p)
	}
}

// IsData reports false; DataRow overrides it.
func (r *RowBase) IsData() bool { return false }

// IsSeparator reports false; separator variants override it.
func (r *RowBase) IsSeparator() bool { return false }

// IsHeaderSeparator reports false; header separator variants override it.
func (r *RowBase) IsHeaderSeparator() bool { return false }

// IsAlign reports false; alignment variants override it.
func (r *RowBase) IsAlign() bool { return false }

// RenderWith joins the rendered columns with the given border characters:
// outer at both ends, inner before every column after the first. Pseudo
// columns render empty, so a span's extra positions collapse into adjacent
// border characters (the multi-pipe span signal on re-render).
func (r *RowBase) RenderWith(outer, inner string) string {
	var b strings.Builder
	b.WriteString(r.tbl.Prefix())
	b.WriteString(outer)
	for i, c := range r.cols {
		if i != 0 {
			b.WriteString(inner)
		}
		b.WriteString(c.Render())
	}
	b.WriteString(outer)
	return b.String()
}

// DataRow is the universal row variant and the fallback for any line the
// grammar cannot classify.
type DataRow struct {
	RowBase
}

// NewDataRow creates an empty data row owned by t.
func NewDataRow(t *Table) *DataRow {
	return &DataRow{RowBase: NewRowBase(t)}
}

// IsData reports true.
func (r *DataRow) IsData() bool { return true }

// CreateColumn builds a data column from raw cell text.
func (r *DataRow) CreateColumn(text string) Column {
	return NewDataColumn(r.Table(), text)
}

// NewEmptyColumn builds an empty data column.
func (r *DataRow) NewEmptyColumn() Column {
	return NewDataColumn(r.Table(), "")
}

// Render serializes the row using the data border character.
func (r *DataRow) Render() string {
	v := r.Table().Borders().Vline
	return r.RenderWith(v, v)
}
