package markdown

import (
	"errors"
	"testing"

	"github.com/dshills/tablestorm/internal/config"
	"github.com/dshills/tablestorm/internal/syntax"
	"github.com/dshills/tablestorm/internal/table"
)

func TestAlignColumnFollow(t *testing.T) {
	tests := []struct {
		cell string
		want table.Alignment
	}{
		{":---:", table.AlignCenter},
		{":---", table.AlignLeft},
		{"---:", table.AlignRight},
		{"---", table.AlignNone},
		{" :-: ", table.AlignCenter},
		// The colon count rule, not a prefix/suffix check: a bare "::" is
		// two colons and therefore Center.
		{"::", table.AlignCenter},
		// Three colons miss the Center count, so the leading colon wins.
		{":-:-:", table.AlignLeft},
	}
	for _, tt := range tests {
		if got := NewAlignColumn(tt.cell).AlignFollow(); got != tt.want {
			t.Errorf("cell %q: expected %v, got %v", tt.cell, tt.want, got)
		}
	}
}

func TestAlignColumnSpanMinLen(t *testing.T) {
	c := NewAlignColumn(":-:")
	c.SetColspan(2)

	if got := c.TotalMinLen(); got != 6 {
		t.Errorf("expected total min len 6, got %d", got)
	}
	if got := c.MinLen(); got != 3 {
		t.Errorf("expected min len 3, got %d", got)
	}
}

func TestAlignRowClassification(t *testing.T) {
	s := New(nil)

	tbl := s.Parse([]string{"| :--- | ---: |"})
	if !tbl.Row(0).IsAlign() {
		t.Error("expected an all-separator line to classify as alignment row")
	}

	tbl = s.Parse([]string{"| :--- | data |"})
	if tbl.Row(0).IsAlign() {
		t.Error("expected a line with one data cell to classify as data row")
	}
	if !tbl.Row(0).IsData() {
		t.Error("expected fallback to data row")
	}
}

func TestColspanFromMultiPipeBorder(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| h1 || b |",
		"| a | bb | c |",
	})

	cols := tbl.Row(0).Columns()
	if len(cols) != 3 {
		t.Fatalf("expected 3 visual columns, got %d", len(cols))
	}
	if got := cols[0].Colspan(); got != 2 {
		t.Errorf("expected colspan 2, got %d", got)
	}
	if !cols[1].Pseudo() {
		t.Error("expected spanned position to hold a pseudo column")
	}

	lines := tbl.RenderLines()
	want := []string{
		"| h1    || b |",
		"| a | bb | c |",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestParseRenderAlignedTable(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| Name | Age |",
		"| :--- | ---: |",
		"| Alice | 30 |",
	})

	want := []string{
		"| Name  | Age |",
		"| :---- | --: |",
		"| Alice |  30 |",
	}
	lines := tbl.RenderLines()
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := New(nil)
	first := s.Parse([]string{
		"| Name | Age |",
		"| :--- | ---: |",
		"| Alice | 30 |",
	}).RenderLines()

	second := s.Parse(first).RenderLines()
	if len(first) != len(second) {
		t.Fatalf("expected stable line count, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d: expected %q, got %q", i, first[i], second[i])
		}
	}
}

func TestInsertSingleHlineKeepsDataAlignment(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| a | b |",
		"| :-- | --: |",
		"| x | y |",
	})

	if _, err := s.Driver.InsertSingleHline(tbl, table.Pos{Row: 2}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	lines := tbl.RenderLines()
	if lines[2] != "| x   |   y |" {
		t.Errorf("expected data row to keep its alignment, got %q", lines[2])
	}
}

func TestInsertSingleHline(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| a | b |",
		"| c | d |",
		"| e | f |",
	})

	res, err := s.Driver.InsertSingleHline(tbl, table.Pos{Row: 1, Field: 1})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if tbl.RowCount() != 4 {
		t.Errorf("expected 4 rows, got %d", tbl.RowCount())
	}
	if !tbl.Row(2).IsSeparator() {
		t.Error("expected separator at index 2")
	}
	if res.Pos != (table.Pos{Row: 1, Field: 1}) {
		t.Errorf("expected cursor to stay at (1, 1), got %v", res.Pos)
	}
	if res.Message != syntax.MsgSingleHlineInserted {
		t.Errorf("unexpected status message %q", res.Message)
	}
}

func TestInsertHlineAndMoveAtLastRow(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| a | b |",
		"| c | d |",
		"| e | f |",
	})

	res, err := s.Driver.InsertHlineAndMove(tbl, table.Pos{Row: 2})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if tbl.RowCount() != 5 {
		t.Errorf("expected 5 rows, got %d", tbl.RowCount())
	}
	if !tbl.Row(3).IsSeparator() {
		t.Error("expected separator at index 3")
	}
	if !tbl.Row(4).IsData() {
		t.Error("expected appended data row at index 4")
	}
	if res.Pos != (table.Pos{Row: 4, Field: 0}) {
		t.Errorf("expected cursor (4, 0), got %v", res.Pos)
	}
}

func TestInsertHlineAndMoveAvoidsAdjacentSeparators(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{
		"| a | b |",
		"| --- | --- |",
		"| c | d |",
	})

	res, err := s.Driver.InsertHlineAndMove(tbl, table.Pos{Row: 0})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// New separator at 1, fresh data row at 2, the old separator pushed to 3.
	if !tbl.Row(1).IsSeparator() {
		t.Error("expected inserted separator at index 1")
	}
	if !tbl.Row(2).IsData() {
		t.Error("expected fresh data row at index 2")
	}
	if !tbl.Row(3).IsSeparator() {
		t.Error("expected original separator pushed to index 3")
	}
	if res.Pos != (table.Pos{Row: 2, Field: 0}) {
		t.Errorf("expected cursor (2, 0), got %v", res.Pos)
	}
}

func TestDriverOutOfRange(t *testing.T) {
	s := New(nil)
	tbl := s.Parse([]string{"| a |"})

	_, err := s.Driver.InsertSingleHline(tbl, table.Pos{Row: 3})
	if !errors.Is(err, table.ErrPosOutOfRange) {
		t.Errorf("expected ErrPosOutOfRange, got %v", err)
	}
}

func TestDefaultAlignmentFromOptions(t *testing.T) {
	opts := config.Default()
	opts.DefaultAlignment = table.AlignRight
	s := New(opts)

	tbl := s.Parse([]string{
		"| a | bb |",
		"| ccc | d |",
	})
	if want := "|   a | bb |"; tbl.RenderLines()[0] != want {
		t.Errorf("expected %q, got %q", want, tbl.RenderLines()[0])
	}
}
