package syntax

import "github.com/dshills/tablestorm/internal/table"

// Status messages returned by the edit operations.
const (
	MsgSingleHlineInserted = "Single separator row inserted"
	MsgDoubleHlineInserted = "Double separator row inserted"
)

// Result is the outcome of an edit operation: a status message for the host
// editor to display and the cursor position after the edit.
type Result struct {
	// Message is a human-readable status line.
	Message string

	// Pos is the cursor position after the operation.
	Pos table.Pos
}

// Driver implements a dialect's structural edit operations. Operations
// mutate the table, repack it, and report the new cursor position. A
// position outside the table's rows fails with table.ErrPosOutOfRange.
type Driver interface {
	// InsertSingleHline inserts the dialect's separator row after pos.Row.
	// The cursor stays at pos.
	InsertSingleHline(t *table.Table, pos table.Pos) (Result, error)

	// InsertHlineAndMove inserts a separator row after pos.Row and ensures
	// an editable data row follows it, creating one when the table ends or
	// the next row is itself a separator. The cursor moves to the first
	// field of that data row.
	InsertHlineAndMove(t *table.Table, pos table.Pos) (Result, error)
}

// RowMaker builds a dialect's separator row for insertion.
type RowMaker func(*table.Table) table.Row

// InsertHline is the shared single-separator insertion: the new row goes
// after pos.Row and the cursor does not move past it.
func InsertHline(t *table.Table, pos table.Pos, build RowMaker, msg string) (Result, error) {
	if err := pos.CheckRow(t); err != nil {
		return Result{}, err
	}
	t.InsertRow(pos.Row+1, build(t))
	t.Pack()
	return Result{Message: msg, Pos: pos}, nil
}

// InsertHlineAndMove is the shared separator-then-advance insertion. After
// inserting the separator it looks two rows below the original position:
// a separator there gets an empty data row inserted before it (two adjacent
// separators are never produced), and a table that ends there gets an empty
// data row appended. The cursor lands on that row's first field.
func InsertHlineAndMove(t *table.Table, pos table.Pos, build RowMaker, msg string) (Result, error) {
	if err := pos.CheckRow(t); err != nil {
		return Result{}, err
	}
	t.InsertRow(pos.Row+1, build(t))
	t.Pack()
	if pos.Row+2 < t.RowCount() {
		if t.Row(pos.Row + 2).IsSeparator() {
			t.InsertEmptyRow(pos.Row + 2)
		}
	} else {
		t.InsertEmptyRow(pos.Row + 2)
	}
	return Result{Message: msg, Pos: table.Pos{Row: pos.Row + 2, Field: 0}}, nil
}
