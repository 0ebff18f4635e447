package syntax

import (
	"testing"

	"github.com/dshills/tablestorm/internal/lineparse"
	"github.com/dshills/tablestorm/internal/table"
)

// plainGrammar classifies everything as data, the universal fallback.
type plainGrammar struct{}

func (plainGrammar) CreateRow(t *table.Table, _ *lineparse.Line) table.Row {
	return table.NewDataRow(t)
}

func (plainGrammar) CreateColumn(row table.Row, cell lineparse.Cell) table.Column {
	return row.CreateColumn(cell.Text)
}

func pipeSyntax() *Syntax {
	return &Syntax{
		Name:               "plain",
		Line:               lineparse.NewParser(`\|`),
		Borders:            table.PipeBorders(),
		SpacesInsideBorder: true,
		Grammar:            plainGrammar{},
	}
}

func TestParseBuildsPackedTable(t *testing.T) {
	s := pipeSyntax()
	tbl := s.Parse([]string{
		"| a | bb |",
		"| ccc | d |",
	})

	if tbl.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.RowCount())
	}
	want := []string{
		"| a   | bb |",
		"| ccc | d  |",
	}
	for i, line := range tbl.RenderLines() {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestParseKeepsIndentPrefix(t *testing.T) {
	s := pipeSyntax()
	tbl := s.Parse([]string{
		"  | a |",
		"  | b |",
	})

	if tbl.Prefix() != "  " {
		t.Errorf("expected prefix %q, got %q", "  ", tbl.Prefix())
	}
	for i, line := range tbl.RenderLines() {
		if line != "  | a |" && line != "  | b |" {
			t.Errorf("line %d: expected indented line, got %q", i, line)
		}
	}
}

func TestParseMalformedLineDegradesToDataRow(t *testing.T) {
	s := pipeSyntax()
	tbl := s.Parse([]string{
		"| a | b |",
		"no borders at all",
	})

	if tbl.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.RowCount())
	}
	if !tbl.Row(1).IsData() {
		t.Error("expected borderless line to fall back to a data row")
	}
	// The borderless line becomes a single cell padded to the table grid.
	if got := len(tbl.Row(1).Columns()); got != 2 {
		t.Errorf("expected padded row with 2 columns, got %d", got)
	}
}

func TestSeparatorRowRendering(t *testing.T) {
	tbl := table.New(table.WithBorders(table.GridBorders()))

	data := table.NewDataRow(tbl)
	data.Append(data.CreateColumn(" alpha "))
	data.Append(data.CreateColumn(" b "))
	tbl.AddRow(data)
	tbl.AddRow(NewSeparatorRow(tbl, "-"))
	tbl.Pack()

	lines := tbl.RenderLines()
	want := []string{
		"| alpha | b |",
		"+-------+---+",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestSeparatorRowHeaderKind(t *testing.T) {
	tbl := table.New()
	single := NewSeparatorRow(tbl, "-")
	double := NewSeparatorRow(tbl, "=")

	if !single.IsSeparator() || single.IsHeaderSeparator() {
		t.Error("expected '-' row to be a plain separator")
	}
	if !double.IsSeparator() || !double.IsHeaderSeparator() {
		t.Error("expected '=' row to be a header separator")
	}
	if single.IsAlign() || double.IsAlign() {
		t.Error("expected plain separators to carry no alignment")
	}
}

func TestInsertHlineOutOfRange(t *testing.T) {
	tbl := table.New()
	data := table.NewDataRow(tbl)
	data.Append(data.CreateColumn("a"))
	tbl.AddRow(data)

	maker := func(t *table.Table) table.Row { return NewSeparatorRow(t, "-") }

	_, err := InsertHline(tbl, table.Pos{Row: 5}, maker, MsgSingleHlineInserted)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
	_, err = InsertHlineAndMove(tbl, table.Pos{Row: -1}, maker, MsgSingleHlineInserted)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
}
