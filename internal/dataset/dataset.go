// Package dataset loads the launch records file and derives the selector
// options and payload bounds used by the dashboard controls.
package dataset

import (
	"errors"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// ErrEmpty is returned when a dataset holds no records.
var ErrEmpty = errors.New("dataset: no launch records")

// Dataset is an immutable, in-memory collection of launch records.
// It is safe for concurrent reads.
type Dataset struct {
	id         string
	records    []model.LaunchRecord
	sites      []string
	siteIndex  map[string]struct{}
	minPayload float64
	maxPayload float64
}

// New builds a Dataset from records. The slice is copied.
func New(records []model.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{
		id:         uuid.NewString(),
		records:    slices.Clone(records),
		siteIndex:  make(map[string]struct{}),
		minPayload: records[0].PayloadMassKg,
		maxPayload: records[0].PayloadMassKg,
	}

	for i, r := range ds.records {
		if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
			return nil, eris.Errorf("dataset: record %d: payload mass must be finite, got %g", i, r.PayloadMassKg)
		}
		if r.PayloadMassKg < ds.minPayload {
			ds.minPayload = r.PayloadMassKg
		}
		if r.PayloadMassKg > ds.maxPayload {
			ds.maxPayload = r.PayloadMassKg
		}
		if _, seen := ds.siteIndex[r.LaunchSite]; !seen {
			ds.siteIndex[r.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, r.LaunchSite)
		}
	}

	return ds, nil
}

// ID identifies this loaded snapshot. It changes on every load.
func (d *Dataset) ID() string { return d.id }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of every record in load order.
func (d *Dataset) Records() []model.LaunchRecord {
	return slices.Clone(d.records)
}

// Each calls fn for every record in load order without copying.
func (d *Dataset) Each(fn func(model.LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Sites returns the distinct launch sites in first-seen order.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// HasSite reports whether site appears in the dataset.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteIndex[site]
	return ok
}

// MinPayload returns the smallest payload mass observed at load time.
func (d *Dataset) MinPayload() float64 { return d.minPayload }

// MaxPayload returns the largest payload mass observed at load time.
func (d *Dataset) MaxPayload() float64 { return d.maxPayload }

// PayloadBounds returns [MinPayload, MaxPayload].
func (d *Dataset) PayloadBounds() model.PayloadRange {
	return model.PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// SiteOptions returns one option per site followed by the "ALL" option.
func (d *Dataset) SiteOptions() []model.SiteOption {
	opts := make([]model.SiteOption, 0, len(d.sites)+1)
	for _, s := range d.sites {
		opts = append(opts, model.SiteOption{Label: s, Value: s})
	}
	return append(opts, model.SiteOption{Label: model.AllSitesLabel, Value: model.AllSites})
}

// ValidSite reports whether site is AllSites or a known site.
func (d *Dataset) ValidSite(site string) bool {
	return site == model.AllSites || d.HasSite(site)
}
