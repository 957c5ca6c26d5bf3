package figure

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/sartorproj/dailyplot/timeseries"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options holds figure layout and labels.
type Options struct {
	Width   vg.Length // Figure width (default: 6.4in)
	Height  vg.Length // Figure height (default: 4.8in)
	DPI     int       // Raster resolution (default: 100)
	Title   string    // Title above the top chart
	XLabel  string    // Time axis label, repeated on each chart
	YLabels [3]string // X, Y and Z axis labels
	Smooth  int       // Moving-average window overlaid on each chart (0: none)
}

// DefaultOptions returns the labels and size of the 4000 position figure.
func DefaultOptions() *Options {
	return &Options{
		Width:   6.4 * vg.Inch,
		Height:  4.8 * vg.Inch,
		DPI:     100,
		Title:   "4000 Position",
		XLabel:  "Time (sec)",
		YLabels: [3]string{"X (m)", "Y (m)", "Z (m)"},
	}
}

var (
	lineColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	smoothColor = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// Figure is a rendered-on-demand stack of three charts.
type Figure struct {
	plots []*plot.Plot
	opts  Options
}

// New builds the X, Y and Z charts for a track.
func New(track *timeseries.Track, opts *Options) (*Figure, error) {
	if track == nil {
		return nil, errors.New("figure: nil track")
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	fig := &Figure{opts: *opts}
	for i, series := range track.Axes() {
		p := plot.New()
		if i == 0 {
			p.Title.Text = opts.Title
		}
		p.X.Label.Text = opts.XLabel
		p.Y.Label.Text = opts.YLabels[i]

		if err := addSeries(p, series, opts.Smooth); err != nil {
			return nil, fmt.Errorf("figure: %s: %w", series.Name, err)
		}
		fig.plots = append(fig.plots, p)
	}
	return fig, nil
}

func addSeries(p *plot.Plot, s *timeseries.Series, smooth int) error {
	if s.Len() == 0 {
		return nil
	}

	line, err := plotter.NewLine(toXYs(s))
	if err != nil {
		return err
	}
	line.Color = lineColor
	p.Add(line)

	if smooth > 1 && smooth <= s.Len() {
		ma, err := plotter.NewLine(toXYs(s.MovingAverage(smooth)))
		if err != nil {
			return err
		}
		ma.Color = smoothColor
		ma.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(ma)
	}
	return nil
}

func toXYs(s *timeseries.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = s.Times[i]
		pts[i].Y = s.Values[i]
	}
	return pts
}

// Plots returns the X, Y and Z charts, top to bottom.
func (f *Figure) Plots() []*plot.Plot {
	return f.plots
}

func (f *Figure) render() *vgimg.Canvas {
	c := vgimg.NewWith(vgimg.UseWH(f.opts.Width, f.opts.Height), vgimg.UseDPI(f.opts.DPI))
	dc := draw.New(c)

	tiles := draw.Tiles{
		Rows: len(f.plots),
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}

	grid := make([][]*plot.Plot, len(f.plots))
	for i, p := range f.plots {
		grid[i] = []*plot.Plot{p}
	}

	canvases := plot.Align(grid, tiles, dc)
	for i, p := range f.plots {
		p.Draw(canvases[i][0])
	}
	return c
}

// Image renders the figure to a raster image.
func (f *Figure) Image() image.Image {
	return f.render().Image()
}

// WriteTo renders the figure and writes it to w as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: f.render()}
	return png.WriteTo(w)
}

// Save renders the figure to a PNG file.
func (f *Figure) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
