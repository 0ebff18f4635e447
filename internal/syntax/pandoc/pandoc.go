// Package pandoc implements the Pandoc grid table dialect: plus/dash and
// plus/equals rules between pipe-bordered data rows, with optional colon
// alignment markers on the rules.
package pandoc

import (
	"regexp"
	"strings"

	"github.com/dshills/tablestorm/internal/config"
	"github.com/dshills/tablestorm/internal/lineparse"
	"github.com/dshills/tablestorm/internal/syntax"
	"github.com/dshills/tablestorm/internal/table"
)

// borderPattern matches both the data border '|' and the rule border '+'.
const borderPattern = `[+|]`

// Separator cell patterns, with optional alignment colons at either end.
var (
	singleCellRE = regexp.MustCompile(`^\s*:?[-]+:?\s*$`)
	doubleCellRE = regexp.MustCompile(`^\s*:?[=]+:?\s*$`)
)

// New builds the Pandoc grid dialect with the given options; nil means
// defaults.
func New(opts *config.Options) *syntax.Syntax {
	if opts == nil {
		opts = config.Default()
	}
	return &syntax.Syntax{
		Name:               "Pandoc",
		Line:               lineparse.NewParser(borderPattern),
		Borders:            opts.ApplyBorders(table.GridBorders()),
		DefaultAlign:       opts.DefaultAlignment,
		SpacesInsideBorder: opts.SpacesInsideBorder,
		Grammar:            grammar{},
		Driver:             Driver{},
	}
}

// grammar classifies tokenized lines for the dialect.
type grammar struct{}

// CreateRow classifies rule lines by their fill character. A rule carrying
// at least one colon becomes an alignment row; a rule without any colon
// stays a plain separator so tables that never express alignment keep
// their plain form.
func (grammar) CreateRow(t *table.Table, ln *lineparse.Line) table.Row {
	texts := ln.Texts()
	switch {
	case allMatch(texts, singleCellRE):
		if hasColon(texts) {
			return NewAlignRow(t, "-")
		}
		return syntax.NewSeparatorRow(t, "-")
	case allMatch(texts, doubleCellRE):
		if hasColon(texts) {
			return NewAlignRow(t, "=")
		}
		return syntax.NewSeparatorRow(t, "=")
	default:
		return table.NewDataRow(t)
	}
}

// CreateColumn builds the row's column variant; the grid dialect has no
// colspan signal.
func (grammar) CreateColumn(row table.Row, cell lineparse.Cell) table.Column {
	return row.CreateColumn(cell.Text)
}

// allMatch reports whether every cell matches the pattern.
func allMatch(texts []string, re *regexp.Regexp) bool {
	if len(texts) == 0 {
		return false
	}
	for _, s := range texts {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}

// hasColon reports whether any cell carries an alignment marker.
func hasColon(texts []string) bool {
	for _, s := range texts {
		if strings.Contains(s, ":") {
			return true
		}
	}
	return false
}

// AlignRow is a rule row carrying alignment markers. It keeps its fill
// character so single and double rules survive a round trip.
type AlignRow struct {
	table.RowBase
	sep string
}

// NewAlignRow creates an empty alignment rule filled with sep ("-" or "=").
func NewAlignRow(t *table.Table, sep string) *AlignRow {
	return &AlignRow{RowBase: table.NewRowBase(t), sep: sep}
}

// Separator returns the fill character.
func (r *AlignRow) Separator() string { return r.sep }

// IsSeparator reports true.
func (r *AlignRow) IsSeparator() bool { return true }

// IsHeaderSeparator reports true.
func (r *AlignRow) IsHeaderSeparator() bool { return true }

// IsAlign reports true.
func (r *AlignRow) IsAlign() bool { return true }

// CreateColumn builds an alignment cell from raw rule text.
func (r *AlignRow) CreateColumn(text string) table.Column {
	return NewAlignColumn(text)
}

// NewEmptyColumn builds a markerless cell of this rule's fill character.
func (r *AlignRow) NewEmptyColumn() table.Column {
	return NewAlignColumn(strings.Repeat(r.sep, 3))
}

// Render serializes the rule with the grid's hline border characters.
func (r *AlignRow) Render() string {
	b := r.Table().Borders()
	return r.RenderWith(b.HlineOut, b.HlineIn)
}

// AlignColumn is one cell of an alignment rule, such as ":---" or "==:".
type AlignColumn struct {
	table.ColumnBase
	text   string
	follow table.Alignment
}

// NewAlignColumn parses an alignment rule cell. Unlike MultiMarkdown this
// checks only the leading and trailing character for colons.
func NewAlignColumn(text string) *AlignColumn {
	c := &AlignColumn{ColumnBase: table.NewColumnBase(), text: strings.TrimSpace(text)}
	lead := strings.HasPrefix(c.text, ":")
	trail := strings.HasSuffix(c.text, ":")
	switch {
	case lead && trail:
		c.follow = table.AlignCenter
	case lead:
		c.follow = table.AlignLeft
	case trail:
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

// fill returns the rule's fill character, derived from the cell text.
func (c *AlignColumn) fill() string {
	if strings.Contains(c.text, "=") {
		return "="
	}
	return "-"
}

// MinLen returns the fixed rule minimum, "---".
func (c *AlignColumn) MinLen() int { return 3 }

// TotalMinLen returns the fixed rule minimum.
func (c *AlignColumn) TotalMinLen() int { return 3 }

// Render emits the cell over its resolved width with no outer padding,
// degrading to a plain fill when the width cannot hold the colon markers.
func (c *AlignColumn) Render() string {
	w := c.TotalWidth()
	b := c.fill()
	switch c.follow {
	case table.AlignCenter:
		if w <= 2 {
			return strings.Repeat(b, w)
		}
		return ":" + strings.Repeat(b, w-2) + ":"
	case table.AlignLeft:
		if w <= 1 {
			return strings.Repeat(b, w)
		}
		return ":" + strings.Repeat(b, w-1)
	case table.AlignRight:
		if w <= 1 {
			return strings.Repeat(b, w)
		}
		return strings.Repeat(b, w-1) + ":"
	default:
		return strings.Repeat(b, w)
	}
}

// Driver implements the dialect's structural edit operations. Separator
// insertion preserves alignment capability: when any existing row carries
// alignment markers the inserted rule is itself alignment-capable, so the
// table is not silently downgraded.
type Driver struct{}

// InsertSingleHline inserts a single ('-') rule after pos.Row; the cursor
// stays at pos.
func (Driver) InsertSingleHline(t *table.Table, pos table.Pos) (syntax.Result, error) {
	return syntax.InsertHline(t, pos, makeRule(t, "-"), syntax.MsgSingleHlineInserted)
}

// InsertDoubleHline inserts a double ('=') rule after pos.Row; the cursor
// stays at pos.
func (Driver) InsertDoubleHline(t *table.Table, pos table.Pos) (syntax.Result, error) {
	return syntax.InsertHline(t, pos, makeRule(t, "="), syntax.MsgDoubleHlineInserted)
}

// InsertHlineAndMove inserts a plain single rule after pos.Row and moves
// the cursor to the data row below it, creating that row when needed. The
// inserted rule never carries alignment markers.
func (Driver) InsertHlineAndMove(t *table.Table, pos table.Pos) (syntax.Result, error) {
	plain := func(tbl *table.Table) table.Row {
		return syntax.NewSeparatorRow(tbl, "-")
	}
	return syntax.InsertHlineAndMove(t, pos, plain, syntax.MsgSingleHlineInserted)
}

// makeRule builds the rule factory for insertion, alignment-capable when
// the table already expresses alignment.
func makeRule(t *table.Table, sep string) syntax.RowMaker {
	hasAlign := false
	for _, r := range t.Rows() {
		if r.IsAlign() {
			hasAlign = true
			break
		}
	}
	return func(tbl *table.Table) table.Row {
		if hasAlign {
			return NewAlignRow(tbl, sep)
		}
		return syntax.NewSeparatorRow(tbl, sep)
	}
}
