package inspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/Aarav718/seedkit/internal/types"
)

// Service answers read-only questions about the database: which tables
// exist, what shape they have, and summary statistics per column.
type Service struct {
	adapter database.DatabaseAdapter
}

func NewService(adapter database.DatabaseAdapter) *Service {
	return &Service{adapter: adapter}
}

// Tables returns every base table with its row count.
func (s *Service) Tables(ctx context.Context) ([]types.TableInfo, error) {
	names, err := s.adapter.GetAllTableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	counts, err := s.adapter.GetAllTableRowCounts(ctx, names)
	if err != nil {
		// Fall back to one count per table.
		counts = make(map[string]int, len(names))
		for _, name := range names {
			count, _ := s.adapter.GetTableRowCount(ctx, name)
			counts[name] = count
		}
	}

	result := make([]types.TableInfo, 0, len(names))
	for _, name := range names {
		result = append(result, types.TableInfo{Name: name, RowCount: counts[name]})
	}
	return result, nil
}

// Describe renders a markdown document with the column listing and a
// reconstructed CREATE statement for the table.
func (s *Service) Describe(ctx context.Context, tableName string) (string, error) {
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

	columns, err := s.adapter.GetTableColumns(ctx, tableName)
	if err != nil {
		return "", fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Table: %s\n\n", tableName)
	b.WriteString("## Columns\n\n")
	b.WriteString("| Column | Type | Nullable | Key | Default | Extra |\n")
	b.WriteString("| ------ | ---- | -------- | --- | ------- | ----- |\n")

	for _, col := range columns {
		nullable := "NO"
		if col.Nullable {
			nullable = "YES"
		}
		key := ""
		if col.IsPrimary {
			key = "PRI"
		}
		def := col.Default
		if def == "" {
			def = "NULL"
		}
		extra := ""
		if col.IsAutoIncrement {
			extra = "auto_increment"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			col.Name, col.Type, nullable, key, def, extra)
	}

	fmt.Fprintf(&b, "\n## Definition\n\n```sql\n%s\n```\n", s.createStatement(tableName, columns))

	return b.String(), nil
}

// createStatement rebuilds a CREATE TABLE statement from column metadata.
func (s *Service) createStatement(tableName string, columns []types.Column) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("CREATE TABLE %s (", s.adapter.QuoteIdentifier(tableName)))

	for i, col := range columns {
		parts := []string{s.adapter.QuoteIdentifier(col.Name), col.Type}
		if col.IsPrimary {
			parts = append(parts, "PRIMARY KEY")
		}
		if col.IsAutoIncrement {
			parts = append(parts, "AUTO_INCREMENT")
		}
		if !col.Nullable && !col.IsPrimary {
			parts = append(parts, "NOT NULL")
		}
		if col.Default != "" {
			parts = append(parts, "DEFAULT "+col.Default)
		}

		comma := ","
		if i == len(columns)-1 {
			comma = ""
		}
		lines = append(lines, "  "+strings.Join(parts, " ")+comma)
	}

	lines = append(lines, ");")
	return strings.Join(lines, "\n")
}
