// Package figure renders a position track as three stacked line charts.
//
// The top chart plots X against time, the middle Y and the bottom Z. Each
// chart has its own axes; they share the time column but are not linked.
//
//	fig, err := figure.New(track, figure.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	err = fig.Save("4000.png")
//
// Image returns the rendered raster for display in a window.
package figure
