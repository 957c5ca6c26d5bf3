package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	Comment   rune // Lines starting with this rune are skipped (default: none)
	SkipRows  int  // Number of records to drop before the first row
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// Load reads a table from filename, choosing the reader by extension.
// .xlsx files are read from their first sheet; anything else is CSV.
func Load(filename string) (Table, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return LoadXLSX(filename, "")
	}
	return LoadCSV(filename, nil)
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	t, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Printf("[Loader] read %d rows from %s", len(t), filename)
	return t, nil
}

// LoadCSVFromReader loads a table from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.Comment = opts.Comment
	// Rows keep their own width and stray quotes are taken literally.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return Table{}, nil
			}
			return nil, fmt.Errorf("parse csv: %w", err)
		}
	}

	t := Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		t = append(t, rowFromStrings(record))
	}

	return t, nil
}

// SaveCSV writes a table to a CSV file.
func SaveCSV(t Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
