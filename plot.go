package dailyplot

import (
	"os"

	"github.com/sartorproj/dailyplot/figure"
	"github.com/sartorproj/dailyplot/table"
	"github.com/sartorproj/dailyplot/timeseries"
	"github.com/sartorproj/dailyplot/viewer"
)

// DefaultFile is the log read by Plot4000, relative to the working directory.
const DefaultFile = "4000.csv"

// Displayer presents a finished figure.
type Displayer interface {
	Display(fig *figure.Figure) error
}

// WindowDisplay shows the figure in a desktop window and blocks until the
// window is closed.
type WindowDisplay struct {
	Title string
}

// Display implements Displayer.
func (d WindowDisplay) Display(fig *figure.Figure) error {
	title := d.Title
	if title == "" {
		title = "Figure"
	}
	return viewer.Show(fig.Image(), title)
}

// FileDisplay writes the figure to a PNG file.
type FileDisplay struct {
	Path string
}

// Display implements Displayer.
func (d FileDisplay) Display(fig *figure.Figure) error {
	return fig.Save(d.Path)
}

// Options holds plotting options.
type Options struct {
	Figure  *figure.Options
	Display Displayer
}

// DefaultOptions returns the 4000 position figure shown in a window.
func DefaultOptions() *Options {
	return &Options{
		Figure:  figure.DefaultOptions(),
		Display: WindowDisplay{Title: "4000 Position"},
	}
}

// Plot4000 plots DefaultFile. It reports false, without plotting, when the
// file does not exist.
func Plot4000(opts *Options) (bool, error) {
	return PlotFile(DefaultFile, opts)
}

// PlotFile loads path, builds the position figure and hands it to the
// displayer. It reports false with a nil error when path is not a regular
// file. Every other failure is returned as is.
func PlotFile(path string, opts *Options) (bool, error) {
	if !isRegularFile(path) {
		return false, nil
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	t, err := table.Load(path)
	if err != nil {
		return false, err
	}
	fig, err := Build(t, opts.Figure)
	if err != nil {
		return false, err
	}
	if opts.Display != nil {
		if err := opts.Display.Display(fig); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Build turns a loaded table into the stacked position figure.
func Build(t table.Table, opts *figure.Options) (*figure.Figure, error) {
	track, err := timeseries.FromTable(t)
	if err != nil {
		return nil, err
	}
	return figure.New(track, opts)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
