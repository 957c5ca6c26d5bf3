// Package dailyplot loads position logs and plots them.
//
// A position log is a small comma-separated file: a label row followed by
// one sample per line with time, X, Y and Z in the first four columns. The
// package reads it into typed cells, extracts the numeric track and draws
// three stacked line charts (X, Y and Z against time).
//
// # Quick Start
//
// Plot the fixed 4000.csv log from the working directory in a window:
//
//	plotted, err := dailyplot.Plot4000(dailyplot.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !plotted {
//	    fmt.Println("4000.csv not found")
//	}
//
// Render any log to a PNG file instead:
//
//	opts := dailyplot.DefaultOptions()
//	opts.Display = dailyplot.FileDisplay{Path: "positions.png"}
//	plotted, err := dailyplot.PlotFile("positions.csv", opts)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - table: CSV and XLSX loading with per-cell normalization and coercion
//   - timeseries: numeric series and position tracks extracted from tables
//   - figure: rendering of the three stacked charts
//   - viewer: desktop window for a rendered figure
//   - plot4000: command-line entry point
package dailyplot
