package render

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// Scatter writes spec as a PNG scatter plot with one colored series per
// category. An empty spec is written as a blank image.
func Scatter(w io.Writer, spec model.ScatterChart, opts Options) error {
	width, height := opts.size()
	if spec.Len() == 0 {
		return blank(w, width, height)
	}

	series := make([]chart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(colorAt(i)),
		})
	}

	xMin, xMax := xBounds(spec.Points())
	graph := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  spec.XField,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  spec.YField,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return eris.Wrap(err, "render: scatter chart")
	}
	return nil
}

// pointStyle draws dots only, without connecting lines.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// xBounds pads the payload extent so a single point still yields a
// non-zero axis range.
func xBounds(points []model.ScatterPoint) (float64, float64) {
	lo, hi := points[0].X, points[0].X
	for _, p := range points[1:] {
		lo = min(lo, p.X)
		hi = max(hi, p.X)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 100
	}
	return lo - pad, hi + pad
}
