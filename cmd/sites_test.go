package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/launch-dashboard/internal/model"
)

func TestSites_Table(t *testing.T) {
	out, err := runCLI(t, "sites")
	require.NoError(t, err)

	assert.Contains(t, out, "CCAFS LC-40")
	assert.Contains(t, out, "KSC LC-39A")
	assert.Contains(t, out, "All Sites")
	assert.Contains(t, out, "9,600 kg")
}

func TestSites_JSON(t *testing.T) {
	out, err := runCLI(t, "sites", "-o", "json")
	require.NoError(t, err)

	var report sitesReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 9, report.Records)
	assert.Equal(t, model.PayloadRange{Low: 0, High: 9600}, report.Payload)
	require.Len(t, report.Options, 5)
	assert.Equal(t, "CCAFS LC-40", report.Options[0].Value)
	assert.Equal(t, "VAFB SLC-4E", report.Options[1].Value)
	assert.Equal(t, "KSC LC-39A", report.Options[2].Value)
	assert.Equal(t, "CCAFS SLC-40", report.Options[3].Value)
	assert.Equal(t, model.SiteOption{Label: "All Sites", Value: "ALL"}, report.Options[4])
}

func TestSites_YAML(t *testing.T) {
	out, err := runCLI(t, "sites", "--output", "yaml")
	require.NoError(t, err)

	var report sitesReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 9, report.Records)
	assert.Len(t, report.Options, 5)
}

func TestSites_BadOutput(t *testing.T) {
	_, err := runCLI(t, "sites", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
