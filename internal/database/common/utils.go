package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Aarav718/seedkit/internal/types"
	"github.com/jmoiron/sqlx"
)

// validIdentifier matches SQL identifiers (table/column names) to prevent
// injection through interpolated names.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// ScanRows drains a sqlx result set into ordered columns plus one map per
// row. Driver []byte values are converted to strings so callers get
// printable data regardless of provider.
func ScanRows(rows *sqlx.Rows) (*types.ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &types.ResultSet{Columns: columns}

	for rows.Next() {
		row := make(map[string]interface{}, len(columns))
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for key, val := range row {
			if b, ok := val.([]byte); ok {
				row[key] = string(b)
			}
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// BatchRowCountQuery builds a single UNION ALL query counting rows in every
// table, so the table list stays one round trip.
func BatchRowCountQuery(tableNames []string, quote func(string) string) string {
	var queryParts []string
	for _, tableName := range tableNames {
		queryParts = append(queryParts, fmt.Sprintf(
			"SELECT '%s' AS table_name, COUNT(*) AS row_count FROM %s",
			tableName, quote(tableName),
		))
	}
	return strings.Join(queryParts, " UNION ALL ")
}
