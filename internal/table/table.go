package table

import "fmt"

// Table is a tidy table: canonical column names plus row-major cell
// values. Every row has exactly len(Cols) cells.
type Table struct {
	Cols []string
	Rows [][]Value
}

// New creates an empty table with the given column names.
func New(cols ...string) *Table {
	return &Table{Cols: cols}
}

// ColIndex returns the position of a column by canonical name, or -1
// if the table has no such column.
func (t *Table) ColIndex(name string) int {
	for i, c := range t.Cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the ordered values of a column by canonical name.
// Returns nil if the column does not exist.
func (t *Table) Column(name string) []Value {
	idx := t.ColIndex(name)
	if idx < 0 {
		return nil
	}
	col := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col
}

// AppendRow adds a row to the table. The row must match the column count.
func (t *Table) AppendRow(row []Value) error {
	if len(row) != len(t.Cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Cols))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// AddColumn appends a new column with the given values. The value count
// must match the current row count.
func (t *Table) AddColumn(name string, values []Value) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.Rows))
	}
	t.Cols = append(t.Cols, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}
