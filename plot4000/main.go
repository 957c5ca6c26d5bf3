// Package main is the command-line entry point for plotting position logs.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sartorproj/dailyplot"
	"github.com/sartorproj/dailyplot/figure"
	"github.com/sartorproj/dailyplot/table"
	"github.com/sartorproj/dailyplot/timeseries"
	"gonum.org/v1/plot/vg"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var smooth int

	rootCmd := &cobra.Command{
		Use:   "plot4000",
		Short: "Plot X, Y and Z position against time",
		Long: `Plot X, Y and Z position against time from 4000.csv in the working directory.

Figure size can be set in inches with DAILYPLOT_WIDTH and DAILYPLOT_HEIGHT,
either in the environment or in a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, smooth)
		},
	}
	rootCmd.PersistentFlags().IntVar(&smooth, "smooth", 0, "Overlay a moving average with this window (0 disables)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Open the 4000.csv position figure in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, smooth)
		},
	}

	rootCmd.AddCommand(
		showCmd,
		newRenderCmd(&smooth),
		newDumpCmd(),
		newSummaryCmd(),
	)
	return rootCmd
}

func runShow(cmd *cobra.Command, smooth int) error {
	opts := dailyplot.DefaultOptions()
	fo, err := figureOptions(smooth)
	if err != nil {
		return err
	}
	opts.Figure = fo

	plotted, err := dailyplot.Plot4000(opts)
	if err != nil {
		return err
	}
	if !plotted {
		fmt.Fprintf(cmd.OutOrStdout(), "%s not found, nothing plotted\n", dailyplot.DefaultFile)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plotted %s\n", dailyplot.DefaultFile)
	return nil
}

func newRenderCmd(smooth *int) *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the position figure to a PNG file",
		Long: `Render the position figure to a PNG file without opening a window.

Example: plot4000 render --file 4000.csv --out 4000.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fo, err := figureOptions(*smooth)
			if err != nil {
				return err
			}
			opts := &dailyplot.Options{
				Figure:  fo,
				Display: dailyplot.FileDisplay{Path: out},
			}

			plotted, err := dailyplot.PlotFile(file, opts)
			if err != nil {
				return err
			}
			if !plotted {
				return fmt.Errorf("%s: %w", file, fs.ErrNotExist)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", dailyplot.DefaultFile, "Position log to read (.csv or .xlsx)")
	cmd.Flags().StringVar(&out, "out", "4000.png", "PNG file to write")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the loaded table, one row per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := table.Load(fileArg(args))
			if err != nil {
				return err
			}
			return t.Print(cmd.OutOrStdout())
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [file]",
		Short: "Print per-axis statistics of the position track",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := table.Load(fileArg(args))
			if err != nil {
				return err
			}
			track, err := timeseries.FromTable(t)
			if err != nil {
				return err
			}
			_, err = track.Summary().WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

func fileArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return dailyplot.DefaultFile
}

// figureOptions applies DAILYPLOT_WIDTH and DAILYPLOT_HEIGHT (inches) and the
// smoothing window to the default figure.
func figureOptions(smooth int) (*figure.Options, error) {
	opts := figure.DefaultOptions()
	opts.Smooth = smooth

	for _, env := range []struct {
		name string
		dst  *vg.Length
	}{
		{"DAILYPLOT_WIDTH", &opts.Width},
		{"DAILYPLOT_HEIGHT", &opts.Height},
	} {
		raw := os.Getenv(env.name)
		if raw == "" {
			continue
		}
		inches, err := strconv.ParseFloat(raw, 64)
		if err != nil || inches <= 0 {
			return nil, fmt.Errorf("invalid %s %q: want a positive number of inches", env.name, raw)
		}
		*env.dst = vg.Length(inches) * vg.Inch
	}
	return opts, nil
}
