package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aarav718/seedkit/internal/database/common"
	"github.com/Aarav718/seedkit/internal/types"
	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db *sqlx.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite serializes writers; a single connection avoids lock errors.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) DB() *sqlx.DB {
	return s.db
}

func (s *Adapter) Builder() squirrel.StatementBuilderType {
	return s.qb
}

func (s *Adapter) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*types.ResultSet, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (s *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) > 0 FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`, tableName).Scan(&exists)
	return exists, err
}

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	if !common.IsValidIdentifier(tableName) {
		return nil, fmt.Errorf("invalid table name: %s", tableName)
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", s.QuoteIdentifier(tableName)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var def *string
		if err := rows.Scan(&cid, &name, &colType, &notNull, &def, &pk); err != nil {
			return nil, err
		}
		col := types.Column{
			Name:      name,
			Type:      colType,
			Nullable:  notNull == 0 && pk == 0,
			IsPrimary: pk > 0,
			// An INTEGER PRIMARY KEY is an alias for the rowid.
			IsAutoIncrement: pk > 0 && strings.EqualFold(colType, "INTEGER"),
		}
		if def != nil {
			col.Default = *def
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func (s *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.QuoteIdentifier(tableName))
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}
	for _, name := range tableNames {
		if !common.IsValidIdentifier(name) {
			return nil, fmt.Errorf("invalid table name: %s", name)
		}
	}

	query := common.BatchRowCountQuery(tableNames, s.QuoteIdentifier)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to batch count table rows: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int, len(tableNames))
	for rows.Next() {
		var tableName string
		var count int
		if err := rows.Scan(&tableName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan batch count result: %w", err)
		}
		result[tableName] = count
	}
	return result, rows.Err()
}

func (s *Adapter) GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	if !common.IsValidIdentifier(tableName) {
		return nil, fmt.Errorf("invalid table name: %s", tableName)
	}
	result, err := s.Query(ctx, fmt.Sprintf("SELECT * FROM %s", s.QuoteIdentifier(tableName)))
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

func (s *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	if err := s.Exec(ctx, fmt.Sprintf("DELETE FROM %s", s.QuoteIdentifier(tableName))); err != nil {
		return err
	}
	// Reset the autoincrement counter; the table is absent from
	// sqlite_sequence unless AUTOINCREMENT was declared, so errors are
	// ignored.
	s.Exec(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", tableName)
	return nil
}

func (s *Adapter) DropTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	return s.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", s.QuoteIdentifier(tableName)))
}

// SetDatabaseCollation is a no-op: SQLite's text encoding is a per-file
// property fixed at creation and collations are chosen per expression.
func (s *Adapter) SetDatabaseCollation(ctx context.Context, charset, collation string) error {
	return nil
}
