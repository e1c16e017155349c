package model

// Chart titles.
const (
	TitleAllSites   = "Ratio of Successes"
	TitleSingleSite = "Ratio of Successes to Failures"
)

// PieSlice is one labelled value of a pie chart.
type PieSlice struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// PieChart is the specification of a rendered pie chart.
type PieChart struct {
	Title  string     `json:"title" yaml:"title"`
	Site   string     `json:"site" yaml:"site"`
	Slices []PieSlice `json:"slices" yaml:"slices"`
}

// Total returns the sum of all slice values.
func (p PieChart) Total() float64 {
	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// Labels returns the slice labels in order.
func (p PieChart) Labels() []string {
	labels := make([]string, len(p.Slices))
	for i, s := range p.Slices {
		labels[i] = s.Label
	}
	return labels
}

// ScatterPoint is one plotted launch.
type ScatterPoint struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Category string  `json:"category" yaml:"category"`
}

// ScatterSeries groups the points sharing a color category.
type ScatterSeries struct {
	Category string         `json:"category" yaml:"category"`
	Points   []ScatterPoint `json:"points" yaml:"points"`
}

// ScatterChart is the specification of a rendered scatter plot.
type ScatterChart struct {
	Title   string          `json:"title,omitempty" yaml:"title,omitempty"`
	Site    string          `json:"site" yaml:"site"`
	Payload PayloadRange    `json:"payload" yaml:"payload"`
	XField  string          `json:"x_field" yaml:"x_field"`
	YField  string          `json:"y_field" yaml:"y_field"`
	Color   string          `json:"color_field" yaml:"color_field"`
	Series  []ScatterSeries `json:"series" yaml:"series"`
}

// Points flattens every series into a single slice, preserving series order.
func (s ScatterChart) Points() []ScatterPoint {
	var out []ScatterPoint
	for _, series := range s.Series {
		out = append(out, series.Points...)
	}
	return out
}

// Len returns the total number of points.
func (s ScatterChart) Len() int {
	n := 0
	for _, series := range s.Series {
		n += len(series.Points)
	}
	return n
}
