// Package markdown implements the MultiMarkdown table dialect: pipe
// borders, a colon-marked alignment row, and column spans signaled by
// multi-pipe borders.
package markdown

import (
	"regexp"
	"strings"

	"github.com/dshills/tablestorm/internal/config"
	"github.com/dshills/tablestorm/internal/lineparse"
	"github.com/dshills/tablestorm/internal/syntax"
	"github.com/dshills/tablestorm/internal/table"
)

// borderPattern matches a run of pipes as one border token, so a cell's
// right border length carries its colspan.
const borderPattern = `(?:\|\|+)|(?:\|)`

// alignCellRE recognizes a pure alignment cell such as ":---:" or "--".
var alignCellRE = regexp.MustCompile(`^\s*([:]?[-]+[:]?)\s*$`)

// New builds the MultiMarkdown dialect with the given options; nil means
// defaults.
func New(opts *config.Options) *syntax.Syntax {
	if opts == nil {
		opts = config.Default()
	}
	return &syntax.Syntax{
		Name:               "MultiMarkdown",
		Line:               lineparse.NewParser(borderPattern),
		Borders:            opts.ApplyBorders(table.PipeBorders()),
		DefaultAlign:       opts.DefaultAlignment,
		SpacesInsideBorder: opts.SpacesInsideBorder,
		Grammar:            grammar{},
		Driver:             Driver{},
	}
}

// grammar classifies tokenized lines for the dialect.
type grammar struct{}

// CreateRow classifies a line as an alignment row only when every cell is a
// pure alignment cell; anything else is a data row.
func (grammar) CreateRow(t *table.Table, ln *lineparse.Line) table.Row {
	if isAlignRow(ln.Texts()) {
		return NewAlignRow(t)
	}
	return table.NewDataRow(t)
}

// CreateColumn builds the row's column variant and applies the colspan
// signaled by a multi-pipe right border.
func (grammar) CreateColumn(row table.Row, cell lineparse.Cell) table.Column {
	col := row.CreateColumn(cell.Text)
	if len(cell.RightBorder) > 1 {
		col.SetColspan(len(cell.RightBorder))
	}
	return col
}

// isAlignRow reports whether every cell matches the alignment pattern.
func isAlignRow(texts []string) bool {
	if len(texts) == 0 {
		return false
	}
	for _, s := range texts {
		if !alignCellRE.MatchString(s) {
			return false
		}
	}
	return true
}

// AlignRow is the dialect's alignment row. It doubles as the header
// separator.
type AlignRow struct {
	table.RowBase
}

// NewAlignRow creates an empty alignment row owned by t.
func NewAlignRow(t *table.Table) *AlignRow {
	return &AlignRow{RowBase: table.NewRowBase(t)}
}

// IsSeparator reports true.
func (r *AlignRow) IsSeparator() bool { return true }

// IsHeaderSeparator reports true.
func (r *AlignRow) IsHeaderSeparator() bool { return true }

// IsAlign reports true.
func (r *AlignRow) IsAlign() bool { return true }

// CreateColumn builds an alignment column from raw cell text.
func (r *AlignRow) CreateColumn(text string) table.Column {
	return NewAlignColumn(text)
}

// NewEmptyColumn builds an alignment column expressing no alignment.
func (r *AlignRow) NewEmptyColumn() table.Column {
	return NewAlignColumn("-")
}

// Render serializes the row with the data border character; MultiMarkdown
// alignment rows use pipes like data rows do.
func (r *AlignRow) Render() string {
	v := r.Table().Borders().Vline
	return r.RenderWith(v, v)
}

// AlignColumn is one cell of an alignment row.
type AlignColumn struct {
	table.ColumnBase
	text   string
	follow table.Alignment
}

// NewAlignColumn parses an alignment cell. The alignment the cell imposes
// on its data column follows the original MultiMarkdown rule: a cell
// containing exactly two colons anywhere is Center (so a bare "::" counts),
// otherwise a leading colon is Left and a trailing colon is Right.
func NewAlignColumn(text string) *AlignColumn {
	c := &AlignColumn{ColumnBase: table.NewColumnBase(), text: strings.TrimSpace(text)}
	switch {
	case strings.Count(c.text, ":") == 2:
		c.follow = table.AlignCenter
	case strings.HasPrefix(c.text, ":"):
		c.follow = table.AlignLeft
	case strings.HasSuffix(c.text, ":"):
		c.follow = table.AlignRight
	default:
		c.follow = table.AlignNone
	}
	return c
}

// Text returns the trimmed cell content.
func (c *AlignColumn) Text() string { return c.text }

// AlignFollow returns the alignment imposed on the data column.
func (c *AlignColumn) AlignFollow() table.Alignment { return c.follow }

// TotalMinLen fits " :-: " plus one absorbed border character per spanned
// position.
func (c *AlignColumn) TotalMinLen() int {
	return 5 + c.Colspan() - 1
}

// MinLen distributes the span minimum over its positions, rounding up.
func (c *AlignColumn) MinLen() int {
	cs := c.Colspan()
	return (c.TotalMinLen() + cs - 1) / cs
}

// Render emits the padded alignment cell over the span's resolved width:
// a space, the lead marker, a dash fill, the trail marker, a space.
func (c *AlignColumn) Render() string {
	lead, trail := "-", "-"
	switch c.follow {
	case table.AlignCenter:
		lead, trail = ":", ":"
	case table.AlignLeft:
		lead = ":"
	case table.AlignRight:
		trail = ":"
	}
	fill := c.TotalWidth() - 4
	if fill < 0 {
		fill = 0
	}
	return " " + lead + strings.Repeat("-", fill) + trail + " "
}

// Driver implements the dialect's structural edit operations.
type Driver struct{}

// InsertSingleHline inserts an alignment row after pos.Row; the cursor
// stays at pos.
func (Driver) InsertSingleHline(t *table.Table, pos table.Pos) (syntax.Result, error) {
	return syntax.InsertHline(t, pos, newAlignRow, syntax.MsgSingleHlineInserted)
}

// InsertHlineAndMove inserts an alignment row after pos.Row and moves the
// cursor to the data row below it, creating that row when needed.
func (Driver) InsertHlineAndMove(t *table.Table, pos table.Pos) (syntax.Result, error) {
	return syntax.InsertHlineAndMove(t, pos, newAlignRow, syntax.MsgSingleHlineInserted)
}

func newAlignRow(t *table.Table) table.Row {
	return NewAlignRow(t)
}
