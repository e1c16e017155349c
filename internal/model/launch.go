package model

// Outcome is the binary landing outcome of a launch.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Label returns the display label used in per-site pie charts.
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "Success"
	}
	return "Failure"
}

// Valid reports whether the outcome is one of the two known classes.
func (o Outcome) Valid() bool {
	return o == OutcomeFailure || o == OutcomeSuccess
}

// Column names as they appear in the launch records file.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
)

// AllSites is the selector value meaning "no site filter".
const AllSites = "ALL"

// AllSitesLabel is the display label of the AllSites option.
const AllSitesLabel = "All Sites"

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	LaunchSite      string  `json:"launch_site" yaml:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg" yaml:"payload_mass_kg"`
	Class           Outcome `json:"class" yaml:"class"`
	BoosterCategory string  `json:"booster_version_category" yaml:"booster_version_category"`
}

// SiteOption is one entry of the launch site selector.
type SiteOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}
