// Package table provides the in-memory table model shared by all dialects.
//
// A Table owns an ordered list of Rows; a Row owns an ordered list of
// Columns. Columns carry a colspan: a column spanning n visual positions is
// followed by n-1 pseudo columns that hold the spanned positions open so
// every row presents the same grid.
//
// Pack normalizes the model after parsing or editing:
//   - every row is padded to the table's maximum visual column count
//   - column widths are resolved in two passes (fold minimum widths per
//     position across rows, then assign the shared result)
//   - alignment expressed by alignment rows is propagated onto data columns
//   - data rows above the header separator are flagged as header rows
//
// After Pack, rendering any row yields a line of the same visual width.
package table
