package dataset

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// csvOptions configures the streaming CSV reader.
type csvOptions struct {
	Delimiter rune // default ','
}

// streamCSV reads CSV rows and sends them on the returned channel. The first
// row is sent like any other; the caller treats it as the header.
// Both channels are closed when reading completes.
func streamCSV(ctx context.Context, r io.Reader, opts csvOptions) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		reader.FieldsPerRecord = -1

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

// readCSV parses launch records from a CSV stream with a header row.
func readCSV(ctx context.Context, r io.Reader, opts csvOptions) ([]model.LaunchRecord, error) {
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rowCh, errCh := streamCSV(streamCtx, r, opts)
	records, parseErr := parseRows(rowCh)

	// Stop the reader and drain so its goroutine can exit.
	cancel()
	for range rowCh {
	}
	streamErr := <-errCh

	if ctx.Err() != nil {
		return nil, eris.Wrap(ctx.Err(), "csv: context cancelled")
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if streamErr != nil {
		return nil, streamErr
	}
	return records, nil
}

// parseRows consumes a header row followed by data rows.
func parseRows(rowCh <-chan []string) ([]model.LaunchRecord, error) {
	var (
		idx     columnIndex
		header  bool
		records []model.LaunchRecord
		line    int
	)
	for row := range rowCh {
		line++
		if !header {
			var err error
			if idx, err = newColumnIndex(row); err != nil {
				return nil, err
			}
			header = true
			continue
		}
		if isBlank(row) {
			continue
		}
		rec, err := idx.parse(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if !header {
		return nil, eris.Wrap(ErrEmpty, "dataset: no header row")
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}
