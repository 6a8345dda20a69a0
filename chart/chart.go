// Package chart renders elevation profiles along a path.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named, height-filled path.
type Series struct {
	Name   string
	Points []r3.Vec
}

// xys returns the series as (planar distance from the first point, height) pairs.
func (s Series) xys() plotter.XYs {
	pts := make(plotter.XYs, len(s.Points))
	if len(s.Points) == 0 {
		return pts
	}
	origin := s.Points[0]
	for i, p := range s.Points {
		pts[i].X = r3.Norm(r3.Vec{X: p.X - origin.X, Y: p.Y - origin.Y})
		pts[i].Y = p.Z
	}
	return pts
}

// Formats supported by Write.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatHTML = "html"
)

// Write renders series to w in the given format.
func Write(w io.Writer, format, title string, series ...Series) error {
	switch format {
	case FormatPNG, FormatSVG:
		return WritePlot(w, format, title, series...)
	case FormatHTML:
		return WriteHTML(w, title, series...)
	default:
		return fmt.Errorf("unsupported chart format: %#v", format)
	}
}

// WritePlot renders series as a static image; format is any format supported by gonum plot
// (png, svg, pdf, ...).
func WritePlot(w io.Writer, format, title string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance along path"
	p.Y.Label.Text = "Elevation"

	for i, s := range series {
		line, err := plotter.NewLine(s.xys())
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	wt, err := p.WriterTo(14*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("render %s plot: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// WriteHTML renders series as an interactive HTML page.
func WriteHTML(w io.Writer, title string, series ...Series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Distance", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Elevation", NameLocation: "middle", NameGap: 40}),
	)

	for _, s := range series {
		xys := s.xys()
		data := make([]opts.LineData, len(xys))
		for i, xy := range xys {
			data[i] = opts.LineData{Value: []interface{}{xy.X, xy.Y}}
		}
		line.AddSeries(s.Name, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}

	return line.Render(w)
}
