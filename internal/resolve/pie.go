package resolve

import (
	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
)

// Pie resolves the success pie chart for the selected site.
//
// For "ALL" there is one slice per site, in first-seen order, valued at the
// number of successful launches from that site. Sites without successes keep
// a zero slice. For a specific site there is a "Failure" and a "Success"
// slice counting that site's launches per outcome; an outcome with no
// launches has no slice.
func Pie(ds *dataset.Dataset, site string) (model.PieChart, error) {
	if err := checkSite(ds, site); err != nil {
		return model.PieChart{}, err
	}
	if site == model.AllSites {
		return successesBySite(ds), nil
	}
	return outcomesForSite(ds, site), nil
}

func successesBySite(ds *dataset.Dataset) model.PieChart {
	sums := make(map[string]float64)
	ds.Each(func(r model.LaunchRecord) {
		sums[r.LaunchSite] += float64(r.Class)
	})

	sites := ds.Sites()
	slices := make([]model.PieSlice, 0, len(sites))
	for _, s := range sites {
		slices = append(slices, model.PieSlice{Label: s, Value: sums[s]})
	}

	return model.PieChart{
		Title:  model.TitleAllSites,
		Site:   model.AllSites,
		Slices: slices,
	}
}

func outcomesForSite(ds *dataset.Dataset, site string) model.PieChart {
	var counts [2]int
	ds.Each(func(r model.LaunchRecord) {
		if r.LaunchSite == site && r.Class.Valid() {
			counts[r.Class]++
		}
	})

	var slices []model.PieSlice
	for _, o := range []model.Outcome{model.OutcomeFailure, model.OutcomeSuccess} {
		if counts[o] == 0 {
			continue
		}
		slices = append(slices, model.PieSlice{Label: o.Label(), Value: float64(counts[o])})
	}

	return model.PieChart{
		Title:  model.TitleSingleSite,
		Site:   site,
		Slices: slices,
	}
}
