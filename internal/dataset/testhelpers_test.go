package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// sampleCSV mirrors the layout of spacex_launch_dash.csv, including the
// unnamed index column and the extra Flight Number / Booster Version columns.
const sampleCSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0
2,3,VAFB SLC-4E,0,500.0,F9 v1.1  B1003,v1.1
3,4,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
4,5,KSC LC-39A,1,5600.0,F9 FT B1032.1,FT
5,6,CCAFS LC-40,1,3600.0,F9 FT B1029.1,FT
6,7,KSC LC-39A,0,5300.0,F9 B4 B1040.1,B4
7,8,VAFB SLC-4E,1,9600.0,F9 B4 B1041.1,B4
8,9,CCAFS SLC-40,1,4230.0,F9 B5 B1046.1,B5
`

var sampleSites = []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sampleRecords() []model.LaunchRecord {
	return []model.LaunchRecord{
		{LaunchSite: "A", PayloadMassKg: 100, Class: model.OutcomeSuccess, BoosterCategory: "v1.0"},
		{LaunchSite: "B", PayloadMassKg: 4000, Class: model.OutcomeFailure, BoosterCategory: "FT"},
		{LaunchSite: "A", PayloadMassKg: 50, Class: model.OutcomeFailure, BoosterCategory: "FT"},
		{LaunchSite: "C", PayloadMassKg: 9000, Class: model.OutcomeSuccess, BoosterCategory: "B5"},
	}
}
