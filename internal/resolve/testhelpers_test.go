package resolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
)

func rec(site string, payload float64, class model.Outcome, booster string) model.LaunchRecord {
	return model.LaunchRecord{LaunchSite: site, PayloadMassKg: payload, Class: class, BoosterCategory: booster}
}

// twoSiteDataset: A has 2 successes and 1 failure, B has 3 failures.
func twoSiteDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]model.LaunchRecord{
		rec("A", 500, model.OutcomeSuccess, "v1.0"),
		rec("B", 1000, model.OutcomeFailure, "v1.1"),
		rec("A", 2500, model.OutcomeFailure, "FT"),
		rec("B", 3000, model.OutcomeFailure, "FT"),
		rec("A", 6000, model.OutcomeSuccess, "B4"),
		rec("B", 9000, model.OutcomeFailure, "B5"),
	})
	require.NoError(t, err)
	return ds
}

var randomSites = []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}
var randomBoosters = []string{"v1.0", "v1.1", "FT", "B4", "B5"}

// randomDataset builds a deterministic pseudo-random dataset.
func randomDataset(t *testing.T, seed uint64, n int) *dataset.Dataset {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed ^ 0x9e3779b97f4a7c15)))
	recs := make([]model.LaunchRecord, n)
	for i := range recs {
		recs[i] = rec(
			randomSites[r.Intn(len(randomSites))],
			float64(r.Intn(97))*100,
			model.Outcome(r.Intn(2)),
			randomBoosters[r.Intn(len(randomBoosters))],
		)
	}
	ds, err := dataset.New(recs)
	require.NoError(t, err)
	return ds
}
