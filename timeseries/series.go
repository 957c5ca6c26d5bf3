// Package timeseries provides the numeric series extracted from loaded tables.
package timeseries

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Series represents sampled values against a time axis in seconds.
type Series struct {
	Times  []float64
	Values []float64
	Name   string
}

// New creates a new series sampled at t = 0, 1, 2, ...
func New(values []float64) *Series {
	times := make([]float64, len(values))
	if len(times) > 1 {
		floats.Span(times, 0, float64(len(times)-1))
	}
	return &Series{
		Times:  times,
		Values: values,
	}
}

// NewWithTimes creates a series with explicit sample times.
func NewWithTimes(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, errors.New("times and values must have the same length")
	}
	return &Series{
		Times:  times,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	mean, err := stats.Mean(s.Values)
	if err != nil {
		return 0
	}
	return mean
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	v, err := stats.SampleVariance(s.Values)
	if err != nil {
		return 0
	}
	return v
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	min, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	max, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	median, err := stats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return median
}

// Diff calculates the first difference of the series. Each difference is
// stamped with the later of its two sample times.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Times: []float64{}, Values: []float64{}, Name: s.Name + "_diff"}
	}

	n := len(s.Values) - 1
	result := make([]float64, n)
	floats.SubTo(result, s.Values[1:], s.Values[:n])

	times := make([]float64, n)
	if len(s.Times) == len(s.Values) {
		copy(times, s.Times[1:])
	}

	return &Series{
		Times:  times,
		Values: result,
		Name:   s.Name + "_diff",
	}
}

// Rate returns the derivative of the series with respect to time, using
// first differences. Steps with a non-positive time delta are dropped.
func (s *Series) Rate() *Series {
	out := &Series{Times: []float64{}, Values: []float64{}, Name: s.Name + "_rate"}
	if len(s.Times) != len(s.Values) {
		return out
	}
	for i := 1; i < len(s.Values); i++ {
		dt := s.Times[i] - s.Times[i-1]
		if dt <= 0 {
			continue
		}
		out.Times = append(out.Times, s.Times[i])
		out.Values = append(out.Values, (s.Values[i]-s.Values[i-1])/dt)
	}
	return out
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Times: []float64{}, Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	times := make([]float64, len(values))
	if len(s.Times) >= end {
		copy(times, s.Times[start:end])
	}

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

// MovingAverage calculates a simple moving average with window size.
// Each average is stamped with the time of the last sample in its window.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Times: []float64{}, Values: []float64{}, Name: s.Name + "_ma"}
	}

	result := make([]float64, len(s.Values)-window+1)
	sum := floats.Sum(s.Values[:window])
	result[0] = sum / float64(window)

	for i := window; i < len(s.Values); i++ {
		sum = sum - s.Values[i-window] + s.Values[i]
		result[i-window+1] = sum / float64(window)
	}

	times := make([]float64, len(result))
	if len(s.Times) >= window {
		copy(times, s.Times[window-1:])
	}

	return &Series{
		Times:  times,
		Values: result,
		Name:   s.Name + "_ma",
	}
}
