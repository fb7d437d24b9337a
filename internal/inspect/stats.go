package inspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/spf13/cast"
)

type numericStats struct {
	Column string
	Type   string
	Min    interface{}
	Max    interface{}
	Avg    float64
}

type textStats struct {
	Column    string
	Type      string
	Distinct  int
	AvgLength float64
}

type otherStats struct {
	Column   string
	Type     string
	Distinct int
}

// Statistics renders per-column summary statistics for a table as markdown:
// min/max/avg for numeric columns, distinct count and average length for
// text columns, distinct count for everything else.
func (s *Service) Statistics(ctx context.Context, tableName string) (string, error) {
	if !database.IsValidIdentifier(tableName) {
		return "", fmt.Errorf("invalid table name: %s", tableName)
	}

	exists, err := s.adapter.CheckTableExists(ctx, tableName)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("table %s does not exist", tableName)
	}

	rowCount, err := s.adapter.GetTableRowCount(ctx, tableName)
	if err != nil {
		return "", err
	}

	columns, err := s.adapter.GetTableColumns(ctx, tableName)
	if err != nil {
		return "", err
	}

	var numeric []numericStats
	var text []textStats
	var other []otherStats

	quotedTable := s.adapter.QuoteIdentifier(tableName)
	for _, col := range columns {
		quoted := s.adapter.QuoteIdentifier(col.Name)

		switch classifyType(col.Type) {
		case kindNumeric:
			query, args, err := s.adapter.Builder().
				Select(
					fmt.Sprintf("MIN(%s)", quoted),
					fmt.Sprintf("MAX(%s)", quoted),
					fmt.Sprintf("AVG(%s)", quoted),
				).
				From(quotedTable).
				ToSql()
			if err != nil {
				return "", err
			}
			result, err := s.adapter.Query(ctx, query, args...)
			if err != nil {
				return "", fmt.Errorf("failed to compute stats for %s.%s: %w", tableName, col.Name, err)
			}
			stat := numericStats{Column: col.Name, Type: col.Type}
			if len(result.Rows) > 0 {
				row := result.Rows[0]
				stat.Min = row[result.Columns[0]]
				stat.Max = row[result.Columns[1]]
				stat.Avg = cast.ToFloat64(row[result.Columns[2]])
			}
			numeric = append(numeric, stat)

		case kindText:
			query, args, err := s.adapter.Builder().
				Select(
					fmt.Sprintf("COUNT(DISTINCT %s)", quoted),
					fmt.Sprintf("AVG(LENGTH(%s))", quoted),
				).
				From(quotedTable).
				ToSql()
			if err != nil {
				return "", err
			}
			result, err := s.adapter.Query(ctx, query, args...)
			if err != nil {
				return "", fmt.Errorf("failed to compute stats for %s.%s: %w", tableName, col.Name, err)
			}
			stat := textStats{Column: col.Name, Type: col.Type}
			if len(result.Rows) > 0 {
				row := result.Rows[0]
				stat.Distinct = cast.ToInt(row[result.Columns[0]])
				stat.AvgLength = cast.ToFloat64(row[result.Columns[1]])
			}
			text = append(text, stat)

		default:
			query, args, err := s.adapter.Builder().
				Select(fmt.Sprintf("COUNT(DISTINCT %s)", quoted)).
				From(quotedTable).
				ToSql()
			if err != nil {
				return "", err
			}
			result, err := s.adapter.Query(ctx, query, args...)
			if err != nil {
				return "", fmt.Errorf("failed to compute stats for %s.%s: %w", tableName, col.Name, err)
			}
			stat := otherStats{Column: col.Name, Type: col.Type}
			if len(result.Rows) > 0 {
				stat.Distinct = cast.ToInt(result.Rows[0][result.Columns[0]])
			}
			other = append(other, stat)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Statistics: %s\n\n", tableName)
	fmt.Fprintf(&b, "Total rows: %d\n", rowCount)

	if len(numeric) > 0 {
		b.WriteString("\n## Numeric columns\n\n")
		b.WriteString("| Column | Type | Min | Max | Avg |\n")
		b.WriteString("| ------ | ---- | --- | --- | --- |\n")
		for _, st := range numeric {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f |\n",
				st.Column, st.Type, formatCell(st.Min), formatCell(st.Max), st.Avg)
		}
	}

	if len(text) > 0 {
		b.WriteString("\n## Text columns\n\n")
		b.WriteString("| Column | Type | Distinct | Avg length |\n")
		b.WriteString("| ------ | ---- | -------- | ---------- |\n")
		for _, st := range text {
			fmt.Fprintf(&b, "| %s | %s | %d | %.2f |\n", st.Column, st.Type, st.Distinct, st.AvgLength)
		}
	}

	if len(other) > 0 {
		b.WriteString("\n## Other columns\n\n")
		b.WriteString("| Column | Type | Distinct |\n")
		b.WriteString("| ------ | ---- | -------- |\n")
		for _, st := range other {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", st.Column, st.Type, st.Distinct)
		}
	}

	return b.String(), nil
}

type columnKind int

const (
	kindOther columnKind = iota
	kindNumeric
	kindText
)

func classifyType(colType string) columnKind {
	lower := strings.ToLower(colType)
	for _, numericType := range []string{"int", "decimal", "numeric", "float", "double", "real", "serial"} {
		if strings.Contains(lower, numericType) {
			return kindNumeric
		}
	}
	for _, textType := range []string{"char", "text"} {
		if strings.Contains(lower, textType) {
			return kindText
		}
	}
	return kindOther
}
