package resolve

import (
	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
)

// Scatter resolves the payload/outcome scatter plot.
//
// With "ALL" every launch whose payload lies in [payload.Low, payload.High]
// is plotted. With a specific site every launch from that site is plotted
// and the payload range is not applied. Points are grouped into one series
// per booster version category, in first-seen order.
func Scatter(ds *dataset.Dataset, site string, payload model.PayloadRange) (model.ScatterChart, error) {
	if err := checkSite(ds, site); err != nil {
		return model.ScatterChart{}, err
	}
	fs := model.FilterState{Site: site, Payload: payload}
	if err := fs.Validate(); err != nil {
		return model.ScatterChart{}, err
	}

	keep := func(r model.LaunchRecord) bool {
		return r.LaunchSite == site
	}
	if fs.IsAll() {
		keep = func(r model.LaunchRecord) bool {
			return payload.Contains(r.PayloadMassKg)
		}
	}

	var (
		order  []string
		groups = make(map[string][]model.ScatterPoint)
	)
	ds.Each(func(r model.LaunchRecord) {
		if !keep(r) {
			return
		}
		if _, ok := groups[r.BoosterCategory]; !ok {
			order = append(order, r.BoosterCategory)
		}
		groups[r.BoosterCategory] = append(groups[r.BoosterCategory], model.ScatterPoint{
			X:        r.PayloadMassKg,
			Y:        float64(r.Class),
			Category: r.BoosterCategory,
		})
	})

	series := make([]model.ScatterSeries, 0, len(order))
	for _, cat := range order {
		series = append(series, model.ScatterSeries{Category: cat, Points: groups[cat]})
	}

	return model.ScatterChart{
		Site:    site,
		Payload: payload,
		XField:  model.ColumnPayloadMass,
		YField:  model.ColumnClass,
		Color:   model.ColumnBoosterCategory,
		Series:  series,
	}, nil
}

// ScatterFor resolves the scatter plot for a FilterState.
func ScatterFor(ds *dataset.Dataset, fs model.FilterState) (model.ScatterChart, error) {
	return Scatter(ds, fs.Site, fs.Payload)
}
