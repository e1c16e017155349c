package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/launch-dashboard/internal/model"
)

func TestChart_PieAll(t *testing.T) {
	out, err := runCLI(t, "chart", "pie")
	require.NoError(t, err)

	var pie model.PieChart
	require.NoError(t, json.Unmarshal([]byte(out), &pie))
	assert.Equal(t, "Ratio of Successes", pie.Title)
	assert.Equal(t, []model.PieSlice{
		{Label: "CCAFS LC-40", Value: 1},
		{Label: "VAFB SLC-4E", Value: 1},
		{Label: "KSC LC-39A", Value: 2},
		{Label: "CCAFS SLC-40", Value: 1},
	}, pie.Slices)
}

func TestChart_PieSiteYAML(t *testing.T) {
	out, err := runCLI(t, "chart", "pie", "--site", "KSC LC-39A", "-o", "yaml")
	require.NoError(t, err)

	var pie model.PieChart
	require.NoError(t, yaml.Unmarshal([]byte(out), &pie))
	assert.Equal(t, "Ratio of Successes to Failures", pie.Title)
	assert.Equal(t, []model.PieSlice{
		{Label: "Failure", Value: 1},
		{Label: "Success", Value: 2},
	}, pie.Slices)
}

func TestChart_ScatterRange(t *testing.T) {
	out, err := runCLI(t, "chart", "scatter", "--low", "500", "--high", "5000")
	require.NoError(t, err)

	var sc model.ScatterChart
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, model.PayloadRange{Low: 500, High: 5000}, sc.Payload)
	assert.Equal(t, 5, sc.Len())
	for _, p := range sc.Points() {
		assert.True(t, sc.Payload.Contains(p.X))
	}
}

func TestChart_ScatterDefaultsToDatasetBounds(t *testing.T) {
	out, err := runCLI(t, "chart", "scatter")
	require.NoError(t, err)

	var sc model.ScatterChart
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, model.PayloadRange{Low: 0, High: 9600}, sc.Payload)
	assert.Equal(t, 9, sc.Len())
}

func TestChart_ScatterClampsToDatasetBounds(t *testing.T) {
	out, err := runCLI(t, "chart", "scatter", "--low", "-500", "--high", "20000")
	require.NoError(t, err)

	var sc model.ScatterChart
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, model.PayloadRange{Low: 0, High: 9600}, sc.Payload)
	assert.Equal(t, 9, sc.Len())
}

func TestChart_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")
	out, err := runCLI(t, "chart", "pie", "--png", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestChart_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown site", []string{"chart", "pie", "--site", "Nowhere"}, "unknown launch site"},
		{"inverted range", []string{"chart", "scatter", "--low", "5000", "--high", "10"}, "invalid payload range"},
		{"NaN low", []string{"chart", "scatter", "--low", "NaN"}, "invalid payload range"},
		{"unknown chart", []string{"chart", "bar"}, "invalid argument"},
		{"missing chart", []string{"chart"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
