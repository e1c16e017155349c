package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("dataset: missing column")

// requiredColumns lists the columns every source must provide.
var requiredColumns = []string{
	model.ColumnLaunchSite,
	model.ColumnPayloadMass,
	model.ColumnClass,
	model.ColumnBoosterCategory,
}

// columnIndex maps required column names to their position in a row.
type columnIndex struct {
	site, payload, class, booster int
	width                         int
}

// newColumnIndex locates the required columns in header. Extra columns are ignored.
func newColumnIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		// A UTF-8 BOM may precede the first header cell.
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, eris.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}

	idx := columnIndex{
		site:    pos[model.ColumnLaunchSite],
		payload: pos[model.ColumnPayloadMass],
		class:   pos[model.ColumnClass],
		booster: pos[model.ColumnBoosterCategory],
	}
	idx.width = max(idx.site, idx.payload, idx.class, idx.booster) + 1
	return idx, nil
}

// parse converts one data row into a LaunchRecord. line is 1-based and used in errors.
func (c columnIndex) parse(row []string, line int) (model.LaunchRecord, error) {
	if len(row) < c.width {
		return model.LaunchRecord{}, eris.Errorf("dataset: line %d: expected at least %d fields, got %d", line, c.width, len(row))
	}

	payload, err := strconv.ParseFloat(strings.TrimSpace(row[c.payload]), 64)
	if err != nil {
		return model.LaunchRecord{}, eris.Wrapf(err, "dataset: line %d: parse %q", line, model.ColumnPayloadMass)
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) {
		return model.LaunchRecord{}, eris.Errorf("dataset: line %d: %q must be finite, got %q", line, model.ColumnPayloadMass, row[c.payload])
	}

	class, err := parseClass(row[c.class])
	if err != nil {
		return model.LaunchRecord{}, eris.Wrapf(err, "dataset: line %d: parse %q", line, model.ColumnClass)
	}

	return model.LaunchRecord{
		LaunchSite:      strings.TrimSpace(row[c.site]),
		PayloadMassKg:   payload,
		Class:           class,
		BoosterCategory: strings.TrimSpace(row[c.booster]),
	}, nil
}

// parseClass accepts "0", "1" and their float spellings ("1.0").
func parseClass(s string) (model.Outcome, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	o := model.Outcome(int(f))
	if float64(o) != f || !o.Valid() {
		return 0, eris.Errorf("class must be 0 or 1, got %q", s)
	}
	return o, nil
}
