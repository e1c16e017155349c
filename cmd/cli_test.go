package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testCSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
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

// resetFlags restores every flag of cmd to its default and clears Changed.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

// runCLI executes the root command in a temp working directory holding
// spacex_launch_dash.csv and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spacex_launch_dash.csv"), []byte(testCSV), 0o644))
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		os.Chdir(origDir)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd, sitesCmd, chartCmd, serveCmd)
		cfg = nil
	})

	err := rootCmd.Execute()
	return out.String(), err
}
