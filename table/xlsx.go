package table

import (
	"errors"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned for a workbook without worksheets.
var ErrNoSheets = errors.New("table: workbook has no sheets")

// LoadXLSX loads a table from one worksheet of an Excel workbook. An empty
// sheet name selects the first sheet. Cells are read in their displayed form
// and go through the same normalization and coercion as CSV fields.
func LoadXLSX(filename, sheet string) (Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrNoSheets)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	log.Printf("[Loader] read %d rows from %s (sheet %s)", len(rows), filename, sheet)

	return FromStrings(rows), nil
}
