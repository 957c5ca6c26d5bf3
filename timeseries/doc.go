// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for one sampled quantity and the
// Track type for a 3-D position (X, Y, Z) sharing a single time axis.
//
// # Building a Track
//
// A Track is extracted from a loaded table. Row 0 holds labels; each later
// row must carry time, X, Y and Z in its first four columns:
//
//	t, err := table.LoadCSV("4000.csv", nil)
//	track, err := timeseries.FromTable(t)
//
// Text in one of those columns fails with *table.CellTypeError; a row with
// fewer than four columns fails with *ShortRowError.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := track.X.Mean()
//	std := track.X.Std()
//	min := track.X.Min()
//	max := track.X.Max()
//	median := track.X.Median()
//
// Or summarize the whole track:
//
//	summary := track.Summary()
//	summary.WriteTo(os.Stdout)
//
// # Transformations
//
//	diff := series.Diff()            // First difference
//	velocity := series.Rate()        // Difference over time
//	ma := series.MovingAverage(7)    // Moving average
//	subset := series.Slice(10, 50)
package timeseries
