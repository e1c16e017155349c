package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/launch-dashboard/internal/model"
)

// DefaultTable is the table read from SQLite datasets.
const DefaultTable = "launches"

// readSQLite reads launch records from a read-only SQLite file.
func readSQLite(ctx context.Context, path, table string) ([]model.LaunchRecord, error) {
	if table == "" {
		table = DefaultTable
	}
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrap(err, "sqlite: stat dataset")
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s",
		quoteIdent(model.ColumnLaunchSite),
		quoteIdent(model.ColumnPayloadMass),
		quoteIdent(model.ColumnClass),
		quoteIdent(model.ColumnBoosterCategory),
		quoteIdent(table),
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query table %s", table)
	}
	defer rows.Close()

	idx := columnIndex{site: 0, payload: 1, class: 2, booster: 3, width: 4}

	var records []model.LaunchRecord
	line := 0
	for rows.Next() {
		line++
		var site, payload, class, booster sql.NullString
		if err := rows.Scan(&site, &payload, &class, &booster); err != nil {
			return nil, eris.Wrapf(err, "sqlite: scan row %d", line)
		}
		rec, err := idx.parse([]string{site.String, payload.String, class.String, booster.String}, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate rows")
	}
	return records, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
