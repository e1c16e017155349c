package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "sites", "chart"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "launch-dashboard", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_DatasetFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("dataset")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestChartCommand_Flags(t *testing.T) {
	for _, name := range []string{"site", "low", "high", "png", "output"} {
		assert.NotNil(t, chartCmd.Flags().Lookup(name), "chart command should have --%s flag", name)
	}
	assert.Equal(t, "ALL", chartCmd.Flags().Lookup("site").DefValue)
	assert.Equal(t, []string{"pie", "scatter"}, chartCmd.ValidArgs)
}

func TestLoadDataset_MissingFileIsFatal(t *testing.T) {
	_, err := runCLI(t, "sites", "--dataset", "/nonexistent/launches.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset: load")
}
