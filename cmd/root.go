package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/launch-dashboard/internal/config"
	"github.com/sells-group/launch-dashboard/internal/dataset"
)

var cfg *config.Config

var datasetPath string

var rootCmd = &cobra.Command{
	Use:   "launch-dashboard",
	Short: "SpaceX launch records dashboard",
	Long:  "Loads a launch records file once and serves a site selector, a payload range slider, a success pie chart and a payload/outcome scatter plot.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if datasetPath != "" {
			cfg.Dataset.Path = datasetPath
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadDataset reads the configured dataset. A failure here is fatal.
func loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	return dataset.Load(ctx, cfg.Dataset.Path, dataset.Options{
		Format: dataset.Format(cfg.Dataset.Format),
		Sheet:  cfg.Dataset.Sheet,
		Table:  cfg.Dataset.Table,

		Delimiter: cfg.Dataset.Comma(),
	})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "launch records file (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
