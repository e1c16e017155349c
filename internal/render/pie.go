package render

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// Pie writes spec as a PNG pie chart. Zero-valued slices are not drawn; a
// chart with no positive slice is written as a blank image.
func Pie(w io.Writer, spec model.PieChart, opts Options) error {
	width, height := opts.size()

	var values []chart.Value
	for i, s := range spec.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", s.Label, formatCount(s.Value)),
			Value: s.Value,
			Style: chart.Style{FillColor: colorAt(i), StrokeColor: chart.ColorWhite, StrokeWidth: 2},
		})
	}
	if len(values) == 0 {
		return blank(w, width, height)
	}

	pie := chart.PieChart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return eris.Wrap(err, "render: pie chart")
	}
	return nil
}
