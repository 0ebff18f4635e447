package table

import (
	"errors"
	"fmt"
)

// ErrPosOutOfRange indicates a position outside the table's row bounds.
var ErrPosOutOfRange = errors.New("table position out of range")

// Pos identifies a cursor location inside a table: a row index and a field
// index within that row. It is passed by value between the host editor and
// the edit operations.
type Pos struct {
	// Row is the zero-based row index.
	Row int

	// Field is the zero-based field index within the row.
	Field int
}

// String returns the position in (row, field) form.
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Field)
}

// CheckRow validates that the position's row index is within t's bounds.
func (p Pos) CheckRow(t *Table) error {
	if p.Row < 0 || p.Row >= t.RowCount() {
		return fmt.Errorf("row %d of %d: %w", p.Row, t.RowCount(), ErrPosOutOfRange)
	}
	return nil
}
