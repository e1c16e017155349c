package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// Format identifies the on-disk layout of a dataset file.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Options configures Load.
type Options struct {
	Format Format
	Sheet  string // XLSX sheet name; first sheet when empty
	Table  string // SQLite table; DefaultTable when empty

	Delimiter rune // CSV field separator; ',' when zero
}

// DetectFormat maps a file extension to a Format. Unknown extensions read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Load reads the dataset at path once and builds the in-memory Dataset.
// Any error is fatal to the caller: there is no partial dataset.
func Load(ctx context.Context, path string, opts Options) (*Dataset, error) {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	log := zap.L().With(zap.String("path", path), zap.String("format", string(format)))
	log.Debug("dataset: loading")

	records, err := read(ctx, path, format, opts)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}

	ds, err := New(records)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}

	log.Info("dataset: loaded",
		zap.String("dataset_id", ds.ID()),
		zap.Int("records", ds.Len()),
		zap.Int("sites", len(ds.sites)),
		zap.Float64("min_payload", ds.MinPayload()),
		zap.Float64("max_payload", ds.MaxPayload()),
	)
	return ds, nil
}

func read(ctx context.Context, path string, format Format, opts Options) ([]model.LaunchRecord, error) {
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "csv: open file")
		}
		defer f.Close()
		return readCSV(ctx, f, csvOptions{Delimiter: opts.Delimiter})
	case FormatXLSX:
		return readXLSX(ctx, path, opts.Sheet)
	case FormatSQLite:
		return readSQLite(ctx, path, opts.Table)
	default:
		return nil, eris.Errorf("dataset: unsupported format %q", format)
	}
}
