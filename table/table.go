package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one line of the source, in field order. Rows within a Table may
// have different widths.
type Row []Cell

// Table is the full sequence of rows in file order.
type Table []Row

// IndexError reports a cell position outside the table.
type IndexError struct {
	Row int
	Col int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("table: no cell at (%d,%d)", e.Row, e.Col)
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t)
}

// Cell returns the cell at row r, column c.
func (t Table) Cell(r, c int) (Cell, error) {
	if r < 0 || r >= len(t) || c < 0 || c >= len(t[r]) {
		return Cell{}, &IndexError{Row: r, Col: c}
	}
	return t[r][c], nil
}

// Number returns the cell at row r, column c as a float64.
func (t Table) Number(r, c int) (float64, error) {
	cell, err := t.Cell(r, c)
	if err != nil {
		return 0, err
	}
	if !cell.IsNumeric() {
		return 0, &CellTypeError{Row: r, Col: c, Value: cell.s}
	}
	v, _ := cell.Number()
	return v, nil
}

// FromStrings builds a Table by normalizing and coercing every field.
func FromStrings(records [][]string) Table {
	t := make(Table, 0, len(records))
	for _, record := range records {
		t = append(t, rowFromStrings(record))
	}
	return t
}

func rowFromStrings(record []string) Row {
	row := make(Row, len(record))
	for i, field := range record {
		row[i] = NormalizeAndCoerce(field)
	}
	return row
}

// Strings returns the printed form of each cell.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// WriteCSV writes the table as comma-separated text.
func (t Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	for _, row := range t {
		if err := writer.Write(row.Strings()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Print writes a readable dump of the table, one row per line. Text cells
// are quoted so that "3" and 3 can be told apart.
func (t Table) Print(w io.Writer) error {
	for _, row := range t {
		parts := make([]string, len(row))
		for i, c := range row {
			if c.Kind() == KindText {
				parts[i] = fmt.Sprintf("%q", c.s)
			} else {
				parts[i] = c.String()
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
