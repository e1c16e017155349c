package server

import (
	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
)

// DashboardTitle is the heading shown above the controls.
const DashboardTitle = "SpaceX Launch Records Dashboard"

// Control and graph identifiers used by the front end.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieGraphID      = "success-pie-chart"
	ScatterGraphID  = "success-payload-scatter-chart"
)

// Dropdown describes the launch site selector.
type Dropdown struct {
	ID          string             `json:"id"`
	Options     []model.SiteOption `json:"options"`
	Value       string             `json:"value"`
	Placeholder string             `json:"placeholder"`
	Searchable  bool               `json:"searchable"`
}

// SliderMark is a labelled tick on the payload slider.
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Slider describes the payload range slider.
type Slider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
	Value [2]float64   `json:"value"`
}

// Controls is the full control surface of the dashboard.
type Controls struct {
	Title    string   `json:"title"`
	Dropdown Dropdown `json:"dropdown"`
	Slider   Slider   `json:"slider"`
	Graphs   []string `json:"graphs"`
}

// NewControls derives the control surface from the dataset. The slider
// starts at the observed payload bounds.
func NewControls(ds *dataset.Dataset) Controls {
	return Controls{
		Title: DashboardTitle,
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     ds.SiteOptions(),
			Value:       model.AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		Slider: Slider{
			ID:   PayloadSliderID,
			Min:  0,
			Max:  10000,
			Step: 100,
			Marks: []SliderMark{
				{Value: 0, Label: "0"},
				{Value: 2500, Label: "2500"},
				{Value: 5000, Label: "5000"},
				{Value: 7500, Label: "7500"},
			},
			Value: [2]float64{ds.MinPayload(), ds.MaxPayload()},
		},
		Graphs: []string{PieGraphID, ScatterGraphID},
	}
}
