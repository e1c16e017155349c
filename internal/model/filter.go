package model

import (
	"errors"
	"math"

	"github.com/rotisserie/eris"
)

// ErrInvalidRange is returned when a payload range has low > high or a NaN bound.
var ErrInvalidRange = errors.New("invalid payload range")

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether mass lies in the closed interval.
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

// Clamp limits both bounds to [min, max].
func (r PayloadRange) Clamp(min, max float64) PayloadRange {
	return PayloadRange{
		Low:  clamp(r.Low, min, max),
		High: clamp(r.High, min, max),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FilterState is the current value of the dashboard controls.
type FilterState struct {
	Site    string       `json:"site" yaml:"site"`
	Payload PayloadRange `json:"payload" yaml:"payload"`
}

// NewFilterState builds a FilterState, defaulting an empty site to AllSites.
func NewFilterState(site string, low, high float64) (FilterState, error) {
	if site == "" {
		site = AllSites
	}
	fs := FilterState{Site: site, Payload: PayloadRange{Low: low, High: high}}
	if err := fs.Validate(); err != nil {
		return FilterState{}, err
	}
	return fs, nil
}

// Validate checks the payload range ordering. NaN bounds never compare, so
// they are rejected outright.
func (f FilterState) Validate() error {
	if math.IsNaN(f.Payload.Low) || math.IsNaN(f.Payload.High) {
		return eris.Wrapf(ErrInvalidRange, "bounds must be numbers, got low %g high %g", f.Payload.Low, f.Payload.High)
	}
	if f.Payload.Low > f.Payload.High {
		return eris.Wrapf(ErrInvalidRange, "low %g > high %g", f.Payload.Low, f.Payload.High)
	}
	return nil
}

// IsAll reports whether the state selects every site.
func (f FilterState) IsAll() bool {
	return f.Site == AllSites
}
