package timeseries

import (
	"errors"
	"fmt"

	"github.com/sartorproj/dailyplot/table"
	"gonum.org/v1/gonum/floats"
)

// Column positions of the position track within each body row.
const (
	TimeColumn = iota
	XColumn
	YColumn
	ZColumn

	trackWidth
)

// ErrEmptyTable is returned when a table has no label row.
var ErrEmptyTable = errors.New("timeseries: table has no rows")

// ShortRowError reports a body row without the time, X, Y and Z columns.
type ShortRowError struct {
	Row   int
	Width int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("timeseries: row %d has %d columns, need %d (time, x, y, z)", e.Row, e.Width, trackWidth)
}

// Track is a 3-D position sampled over time. X, Y and Z share one time axis.
type Track struct {
	Label string
	X     *Series
	Y     *Series
	Z     *Series
}

// FromTable extracts a track from a loaded table. Row 0 holds labels; every
// later row contributes time, X, Y and Z from its first four columns.
// A text cell in those columns fails with *table.CellTypeError and a row
// narrower than four columns fails with *ShortRowError.
func FromTable(t table.Table) (*Track, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}

	n := len(t) - 1
	times := make([]float64, n)
	cols := [3][]float64{make([]float64, n), make([]float64, n), make([]float64, n)}

	for r := 1; r < len(t); r++ {
		if len(t[r]) < trackWidth {
			return nil, &ShortRowError{Row: r, Width: len(t[r])}
		}
		v, err := t.Number(r, TimeColumn)
		if err != nil {
			return nil, err
		}
		times[r-1] = v
		for axis := range cols {
			v, err := t.Number(r, XColumn+axis)
			if err != nil {
				return nil, err
			}
			cols[axis][r-1] = v
		}
	}

	header := t[0]
	return &Track{
		Label: headerName(header, TimeColumn, "t"),
		X:     &Series{Times: times, Values: cols[0], Name: headerName(header, XColumn, "x")},
		Y:     &Series{Times: times, Values: cols[1], Name: headerName(header, YColumn, "y")},
		Z:     &Series{Times: times, Values: cols[2], Name: headerName(header, ZColumn, "z")},
	}, nil
}

func headerName(header table.Row, col int, fallback string) string {
	if col >= len(header) {
		return fallback
	}
	if s := header[col].String(); s != "" {
		return s
	}
	return fallback
}

// Len returns the number of samples.
func (tr *Track) Len() int {
	return tr.X.Len()
}

// Time returns the shared time axis.
func (tr *Track) Time() []float64 {
	return tr.X.Times
}

// Axes returns the X, Y and Z series in order.
func (tr *Track) Axes() []*Series {
	return []*Series{tr.X, tr.Y, tr.Z}
}

// Duration returns the span between the first and last sample times.
func (tr *Track) Duration() float64 {
	times := tr.Time()
	if len(times) < 2 {
		return 0
	}
	return times[len(times)-1] - times[0]
}

// PathLength returns the total straight-line distance between consecutive
// samples.
func (tr *Track) PathLength() float64 {
	total := 0.0
	prev := make([]float64, 3)
	cur := make([]float64, 3)
	for i := 0; i < tr.Len(); i++ {
		cur[0], cur[1], cur[2] = tr.X.Values[i], tr.Y.Values[i], tr.Z.Values[i]
		if i > 0 {
			total += floats.Distance(cur, prev, 2)
		}
		prev, cur = cur, prev
	}
	return total
}

// MaxSpeed returns the largest distance per unit time between consecutive
// samples. Steps whose time does not advance are ignored.
func (tr *Track) MaxSpeed() float64 {
	vx, vy, vz := tr.X.Rate(), tr.Y.Rate(), tr.Z.Rate()
	max := 0.0
	v := make([]float64, 3)
	for i := range vx.Values {
		v[0], v[1], v[2] = vx.Values[i], vy.Values[i], vz.Values[i]
		if speed := floats.Norm(v, 2); speed > max {
			max = speed
		}
	}
	return max
}
