/*
PURPOSE:
  Renders thread-count vs. training-time curves for several trainers into one image.

REQUIREMENTS:
  User-specified:
  - One line per trainer with a legend.
  - x-axis: training time (sec.), y-axis: thread count.
  - Save straight to a file, optional title.

  Implementation-discovered:
  - gonum/plot picks the encoder from the file extension (png, svg, pdf, eps, jpg, tif).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli/plot.go
  - Consumes: internal/model.Series

ERROR HANDLING:
  - Backend errors are returned as-is, wrapped with the output path.

IMPLEMENTATION RULES:
  - No interactive display.

USAGE:
  plot.Render("threads.png", "text8", plot.Options{}, plot.Named{Name: "word2vec", Series: s})

SELF-HEALING INSTRUCTIONS:
  - If Save fails with "unsupported format", check the output extension.

RELATED FILES:
  - internal/table/loader.go

MAINTENANCE:
  - None.
*/

package plot

import (
	"errors"
	"fmt"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/daryltucker/w2v-bench/internal/model"
)

const (
	XLabel = "training time (sec.)"
	YLabel = "thread count"
)

// Named is a series with its legend label.
type Named struct {
	Name   string
	Series model.Series
}

// Options sets the image size in inches. Zero values fall back to 6x4.
type Options struct {
	Width  float64
	Height float64
}

// Build assembles the plot without saving it.
func Build(title string, series ...Named) (*gonumplot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to plot")
	}

	p := gonumplot.New()
	p.Title.Text = title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Series.Threads) != len(s.Series.Times) {
			return nil, fmt.Errorf("series %s: %d thread counts but %d times", s.Name, len(s.Series.Threads), len(s.Series.Times))
		}
		pts := make(plotter.XYs, s.Series.Len())
		for j := range pts {
			pts[j].X = s.Series.Times[j]
			pts[j].Y = float64(s.Series.Threads[j])
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	return p, nil
}

// Render draws every series and saves the image to path.
func Render(path, title string, opts Options, series ...Named) error {
	p, err := Build(title, series...)
	if err != nil {
		return err
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 6
	}
	if h <= 0 {
		h = 4
	}

	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", path, err)
	}
	return nil
}
