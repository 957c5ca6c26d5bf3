// Package table provides typed rows loaded from delimited text.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which value a Cell holds.
type Kind uint8

const (
	// KindText is a string cell. The zero Cell is an empty text cell.
	KindText Kind = iota
	// KindInt is a signed 64-bit integer cell.
	KindInt
	// KindFloat is a 64-bit floating-point cell.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// Cell is one field of a row after normalization and coercion.
type Cell struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer cell.
func Int(v int64) Cell {
	return Cell{kind: KindInt, i: v}
}

// Float returns a floating-point cell.
func Float(v float64) Cell {
	return Cell{kind: KindFloat, f: v}
}

// Text returns a text cell.
func Text(v string) Cell {
	return Cell{kind: KindText, s: v}
}

// Kind reports which value the cell holds.
func (c Cell) Kind() Kind {
	return c.kind
}

// Int returns the integer value and whether the cell is an integer.
func (c Cell) Int() (int64, bool) {
	return c.i, c.kind == KindInt
}

// Float returns the floating-point value and whether the cell is a float.
func (c Cell) Float() (float64, bool) {
	return c.f, c.kind == KindFloat
}

// Text returns the string value and whether the cell is text.
func (c Cell) Text() (string, bool) {
	return c.s, c.kind == KindText
}

// IsNumeric reports whether the cell is an integer or a float.
func (c Cell) IsNumeric() bool {
	return c.kind == KindInt || c.kind == KindFloat
}

// Number returns the cell as a float64. Text cells yield a *CellTypeError
// whose position is unknown (-1, -1).
func (c Cell) Number() (float64, error) {
	switch c.kind {
	case KindInt:
		return float64(c.i), nil
	case KindFloat:
		return c.f, nil
	default:
		return 0, &CellTypeError{Row: -1, Col: -1, Value: c.s}
	}
}

// Equal reports whether two cells hold the same kind and value.
// Float NaN cells are never equal, as with ==.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindInt:
		return c.i == o.i
	case KindFloat:
		return c.f == o.f
	default:
		return c.s == o.s
	}
}

// String returns the printed form of the cell. Coerce(c.String()) yields a
// cell of the same kind and value.
func (c Cell) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return formatFloat(c.f)
	default:
		return c.s
	}
}

// formatFloat always marks the value as a float so that it never reads back
// as an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// CellTypeError reports a text cell where a number was required.
type CellTypeError struct {
	Row   int
	Col   int
	Value string
}

func (e *CellTypeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("table: cell %q is not numeric", e.Value)
	}
	return fmt.Sprintf("table: cell (%d,%d) %q is not numeric", e.Row, e.Col, e.Value)
}
