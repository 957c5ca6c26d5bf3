package timeseries

import (
	"fmt"
	"io"
)

// AxisSummary holds descriptive statistics for one axis.
type AxisSummary struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Summary describes a whole track.
type Summary struct {
	Label      string
	Samples    int
	Start      float64
	Duration   float64
	PathLength float64
	MaxSpeed   float64
	Axes       []AxisSummary
}

// Summary computes descriptive statistics for the track.
func (tr *Track) Summary() Summary {
	s := Summary{
		Label:      tr.Label,
		Samples:    tr.Len(),
		Duration:   tr.Duration(),
		PathLength: tr.PathLength(),
		MaxSpeed:   tr.MaxSpeed(),
	}
	if times := tr.Time(); len(times) > 0 {
		s.Start = times[0]
	}
	for _, axis := range tr.Axes() {
		s.Axes = append(s.Axes, AxisSummary{
			Name: axis.Name,
			Min:  axis.Min(),
			Max:  axis.Max(),
			Mean: axis.Mean(),
			Std:  axis.Std(),
		})
	}
	return s
}

// WriteTo prints the summary as aligned text.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if err := write("Samples:     %d\n", s.Samples); err != nil {
		return total, err
	}
	if err := write("Time (%s):  %.3f to %.3f (%.3f)\n", s.Label, s.Start, s.Start+s.Duration, s.Duration); err != nil {
		return total, err
	}
	if err := write("Path length: %.4f\n", s.PathLength); err != nil {
		return total, err
	}
	if err := write("Max speed:   %.4f\n", s.MaxSpeed); err != nil {
		return total, err
	}
	for _, a := range s.Axes {
		if err := write("   %-6s min=%.4f max=%.4f mean=%.4f std=%.4f\n", a.Name, a.Min, a.Max, a.Mean, a.Std); err != nil {
			return total, err
		}
	}
	return total, nil
}
