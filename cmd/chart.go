package main

import (
	"bytes"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/launch-dashboard/internal/dataset"
	"github.com/sells-group/launch-dashboard/internal/model"
	"github.com/sells-group/launch-dashboard/internal/render"
	"github.com/sells-group/launch-dashboard/internal/resolve"
)

var (
	chartSite   string
	chartLow    float64
	chartHigh   float64
	chartPNG    string
	chartOutput string
)

var chartCmd = &cobra.Command{
	Use:       "chart pie|scatter",
	Short:     "Resolve one chart for the given control values",
	Long:      "Resolves the pie chart or the scatter plot for --site (and --low/--high for the scatter plot), printing the chart specification or writing a PNG.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pie", "scatter"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("chart"); err != nil {
			return err
		}
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		fs, err := chartFilter(cmd, ds)
		if err != nil {
			return err
		}
		opts := render.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height}

		var (
			spec any
			draw func(*bytes.Buffer) error
		)
		switch args[0] {
		case "pie":
			pie, err := resolve.Pie(ds, fs.Site)
			if err != nil {
				return err
			}
			spec = pie
			draw = func(buf *bytes.Buffer) error { return render.Pie(buf, pie, opts) }
		case "scatter":
			sc, err := resolve.ScatterFor(ds, fs)
			if err != nil {
				return err
			}
			spec = sc
			draw = func(buf *bytes.Buffer) error { return render.Scatter(buf, sc, opts) }
		}

		if chartPNG != "" {
			var buf bytes.Buffer
			if err := draw(&buf); err != nil {
				return err
			}
			if err := os.WriteFile(chartPNG, buf.Bytes(), 0o644); err != nil {
				return eris.Wrapf(err, "chart: write %s", chartPNG)
			}
			zap.L().Info("chart written",
				zap.String("chart", args[0]),
				zap.String("site", fs.Site),
				zap.String("path", chartPNG),
			)
			return nil
		}

		return writeStructured(cmd.OutOrStdout(), chartOutput, spec)
	},
}

// chartFilter builds the FilterState from flags. Unset bounds default to the
// dataset's payload range and set ones are clamped to it.
func chartFilter(cmd *cobra.Command, ds *dataset.Dataset) (model.FilterState, error) {
	low, high := ds.MinPayload(), ds.MaxPayload()
	if cmd.Flags().Changed("low") {
		low = chartLow
	}
	if cmd.Flags().Changed("high") {
		high = chartHigh
	}
	fs, err := model.NewFilterState(chartSite, low, high)
	if err != nil {
		return model.FilterState{}, err
	}
	fs.Payload = fs.Payload.Clamp(ds.MinPayload(), ds.MaxPayload())
	return fs, nil
}

func init() {
	chartCmd.Flags().StringVar(&chartSite, "site", model.AllSites, `launch site, or "ALL"`)
	chartCmd.Flags().Float64Var(&chartLow, "low", 0, "lower payload bound in kg (default dataset minimum)")
	chartCmd.Flags().Float64Var(&chartHigh, "high", 0, "upper payload bound in kg (default dataset maximum)")
	chartCmd.Flags().StringVar(&chartPNG, "png", "", "write a PNG image to this path instead of printing the specification")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", outputJSON, "specification format: json or yaml")
	rootCmd.AddCommand(chartCmd)
}
