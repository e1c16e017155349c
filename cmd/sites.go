package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
)

var sitesOutput string

// sitesReport is the structured form of the sites command output.
type sitesReport struct {
	Options []model.SiteOption `json:"options" yaml:"options"`
	Payload model.PayloadRange `json:"payload" yaml:"payload"`
	Records int                `json:"records" yaml:"records"`
}

func newSitesReport(ds *dataset.Dataset) sitesReport {
	return sitesReport{
		Options: ds.SiteOptions(),
		Payload: ds.PayloadBounds(),
		Records: ds.Len(),
	}
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the launch site options and payload range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("chart"); err != nil {
			return err
		}
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		report := newSitesReport(ds)
		out := cmd.OutOrStdout()
		if sitesOutput != outputTable {
			return writeStructured(out, sitesOutput, report)
		}

		counts := make(map[string]int)
		ds.Each(func(r model.LaunchRecord) { counts[r.LaunchSite]++ })

		t := newTable("Label", "Value", "Launches")
		t.SetColumnConfigs(alignRight(3))
		for _, o := range report.Options {
			n := counts[o.Value]
			if o.Value == model.AllSites {
				n = report.Records
			}
			t.AppendRow([]any{o.Label, o.Value, n})
		}
		t.AppendFooter([]any{"Payload", formatKg(report.Payload.Low) + " - " + formatKg(report.Payload.High), ""})
		return writeTable(out, t)
	},
}

func init() {
	sitesCmd.Flags().StringVarP(&sitesOutput, "output", "o", outputTable, "output format: table, json or yaml")
	rootCmd.AddCommand(sitesCmd)
}
