// Package table loads delimited text into rows of typed cells.
//
// Every field read from a file goes through the same two steps: it is
// normalized (surrounding whitespace trimmed, interior spaces replaced with
// underscores) and then coerced to the most specific of three kinds. Integers
// are tried first, then floating-point numbers; anything else stays text.
//
// # Cells
//
// A Cell is a tagged value. Callers switch on its Kind rather than guessing:
//
//	c := table.NormalizeAndCoerce(" 3 ")
//	switch c.Kind() {
//	case table.KindInt:
//	    n, _ := c.Int()
//	case table.KindFloat:
//	    f, _ := c.Float()
//	case table.KindText:
//	    s, _ := c.Text()
//	}
//
// Number widens either numeric kind to float64 and reports a *CellTypeError
// for text.
//
// # Loading
//
// Load a CSV file with default options:
//
//	t, err := table.LoadCSV("4000.csv", nil)
//
// Or pick the reader by file extension (.xlsx goes through excelize):
//
//	t, err := table.Load("positions.xlsx")
//
// Rows keep whatever width the source line had; nothing is validated at load
// time. The first row conventionally holds labels.
//
// # CSV Options
//
//	opts := &table.CSVOptions{
//	    Delimiter: ';',
//	    Comment:   '#',
//	    SkipRows:  2,
//	}
//	t, err := table.LoadCSVFromReader(r, opts)
package table
