package table

import "strings"

// Borders holds the border characters a dialect renders with.
type Borders struct {
	// Vline separates cells in data rows.
	Vline string

	// HlineOut starts and ends separator rows.
	HlineOut string

	// HlineIn separates cells in separator rows.
	HlineIn string
}

// PipeBorders are the borders of pipe-delimited dialects.
func PipeBorders() Borders {
	return Borders{Vline: "|", HlineOut: "|", HlineIn: "|"}
}

// GridBorders are the borders of plus/dash grid dialects.
func GridBorders() Borders {
	return Borders{Vline: "|", HlineOut: "+", HlineIn: "+"}
}

// Option configures a Table.
type Option func(*Table)

// WithBorders sets the border characters.
func WithBorders(b Borders) Option {
	return func(t *Table) { t.borders = b }
}

// WithDefaultAlignment sets the alignment used by data columns that carry
// no explicit or propagated alignment.
func WithDefaultAlignment(a Alignment) Option {
	return func(t *Table) { t.defaultAlign = a }
}

// WithSpacesInsideBorder controls the single padding space between border
// and cell text in data rows.
func WithSpacesInsideBorder(on bool) Option {
	return func(t *Table) { t.spacesInside = on }
}

// WithPrefix sets the indentation emitted before every rendered line.
func WithPrefix(prefix string) Option {
	return func(t *Table) { t.prefix = prefix }
}

// Table is a fully parsed table: an ordered list of rows plus the dialect
// properties needed to render them. It is built per edit command and
// discarded after rendering.
type Table struct {
	rows         []Row
	borders      Borders
	defaultAlign Alignment
	spacesInside bool
	prefix       string
}

// New creates an empty table. Without options it renders pipe borders with
// padded cells and left alignment.
func New(opts ...Option) *Table {
	t := &Table{
		borders:      PipeBorders(),
		spacesInside: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Borders returns the border characters.
func (t *Table) Borders() Borders { return t.borders }

// DefaultAlignment returns the fallback alignment for data columns.
func (t *Table) DefaultAlignment() Alignment { return t.defaultAlign }

// SpacesInsideBorder reports whether data cells are padded with spaces.
func (t *Table) SpacesInsideBorder() bool { return t.spacesInside }

// Prefix returns the indentation emitted before every rendered line.
func (t *Table) Prefix() string { return t.prefix }

// SetPrefix sets the rendered indentation.
func (t *Table) SetPrefix(p string) { t.prefix = p }

// padWidth is the inner padding width of data cells, 1 or 0.
func (t *Table) padWidth() int {
	if t.spacesInside {
		return 1
	}
	return 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Row returns the row at index i.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns the rows in order.
func (t *Table) Rows() []Row { return t.rows }

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.rows = append(t.rows, r)
}

// InsertRow inserts a row at index i, clamping i into [0, RowCount].
func (t *Table) InsertRow(i int, r Row) {
	if i < 0 {
		i = 0
	}
	if i > len(t.rows) {
		i = len(t.rows)
	}
	t.rows = append(t.rows, nil)
	copy(t.rows[i+1:], t.rows[i:])
	t.rows[i] = r
}

// InsertEmptyRow inserts an empty data row at index i and repacks.
func (t *Table) InsertEmptyRow(i int) {
	t.InsertRow(i, NewDataRow(t))
	t.Pack()
}

// columnCount returns the maximum visual column count over all rows.
func (t *Table) columnCount() int {
	max := 0
	for _, r := range t.rows {
		if n := len(r.Columns()); n > max {
			max = n
		}
	}
	return max
}

// Pack normalizes the table: pads every row to the shared column count,
// resolves widths, propagates alignment and flags header rows. Every
// structural change must be followed by Pack before rendering.
func (t *Table) Pack() {
	if len(t.rows) == 0 {
		return
	}

	count := t.columnCount()
	if count == 0 {
		t.rows = nil
		return
	}

	for _, r := range t.rows {
		for len(r.Columns()) < count {
			r.Append(r.NewEmptyColumn())
		}
	}

	// Pass one: fold the minimum width of every position across all rows.
	widths := make([]int, count)
	for _, r := range t.rows {
		for i, c := range r.Columns() {
			if m := c.MinLen(); m > widths[i] {
				widths[i] = m
			}
		}
	}

	// Pass two: assign the shared widths.
	for _, r := range t.rows {
		for i, c := range r.Columns() {
			c.SetWidth(widths[i])
		}
	}

	t.packAlignment(count)
	t.packHeader()
}

// packAlignment propagates alignment markers in document order: each
// alignment row's follows apply to the data rows below it, until the next
// alignment row that expresses any alignment. A markerless alignment row
// (such as a freshly inserted separator) leaves the carried follows
// untouched, so editing never strips alignment the table already uses.
func (t *Table) packAlignment(count int) {
	follows := make([]Alignment, count)
	for _, r := range t.rows {
		if r.IsAlign() {
			if expressed := rowFollows(r, count); expressed != nil {
				follows = expressed
			}
			continue
		}
		if !r.IsData() {
			continue
		}
		for i, c := range r.Columns() {
			c.SetAlign(follows[i])
		}
	}
}

// rowFollows collects an alignment row's per-position follows, or nil when
// the row expresses no alignment at all.
func rowFollows(r Row, count int) []Alignment {
	follows := make([]Alignment, count)
	expressed := false
	for i, c := range r.Columns() {
		follows[i] = c.AlignFollow()
		if follows[i] != AlignNone {
			expressed = true
		}
	}
	if !expressed {
		return nil
	}
	return follows
}

// packHeader flags data columns above the first header separator so they
// render centered.
func (t *Table) packHeader() {
	sep := -1
	for i, r := range t.rows {
		if r.IsHeaderSeparator() {
			sep = i
			break
		}
	}
	for i, r := range t.rows {
		if !r.IsData() {
			continue
		}
		header := sep > 0 && i < sep
		for _, c := range r.Columns() {
			c.SetHeader(header)
		}
	}
}

// RenderLines renders every row to its own line.
func (t *Table) RenderLines() []string {
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = r.Render()
	}
	return lines
}

// Render renders the table as newline-joined text.
func (t *Table) Render() string {
	return strings.Join(t.RenderLines(), "\n")
}
