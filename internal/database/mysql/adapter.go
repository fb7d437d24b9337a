package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aarav718/seedkit/internal/database/common"
	"github.com/Aarav718/seedkit/internal/types"
	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
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

// Connect accepts either a mysql:// URL or a raw go-sql-driver DSN.
func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = strings.TrimPrefix(url, "mysql://")

		atIndex := strings.Index(dsn, "@")
		if atIndex > 0 {
			credentials := dsn[:atIndex]
			remainder := dsn[atIndex+1:]

			slashIndex := strings.Index(remainder, "/")
			if slashIndex > 0 {
				hostPort := remainder[:slashIndex]
				dbAndParams := remainder[slashIndex+1:]

				dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
				dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
				dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
				dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
			}
		}
	}

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) DB() *sqlx.DB {
	return m.db
}

func (m *Adapter) Builder() squirrel.StatementBuilderType {
	return m.qb
}

func (m *Adapter) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (m *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*types.ResultSet, error) {
	rows, err := m.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (m *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(*) > 0 FROM information_schema.tables
		WHERE table_name = ? AND table_schema = DATABASE()
	`, tableName).Scan(&exists)
	return exists, err
}

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name
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

func (m *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT column_name, column_type, is_nullable, column_key,
		       COALESCE(column_default, ''), extra
		FROM information_schema.columns
		WHERE table_name = ? AND table_schema = DATABASE()
		ORDER BY ordinal_position
	`, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var name, colType, nullable, key, def, extra string
		if err := rows.Scan(&name, &colType, &nullable, &key, &def, &extra); err != nil {
			return nil, err
		}
		columns = append(columns, types.Column{
			Name:            name,
			Type:            colType,
			Nullable:        nullable == "YES",
			IsPrimary:       key == "PRI",
			IsAutoIncrement: strings.Contains(extra, "auto_increment"),
			Default:         def,
		})
	}
	return columns, rows.Err()
}

func (m *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", m.QuoteIdentifier(tableName))
	if err := m.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (m *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}
	for _, name := range tableNames {
		if !common.IsValidIdentifier(name) {
			return nil, fmt.Errorf("invalid table name: %s", name)
		}
	}

	query := common.BatchRowCountQuery(tableNames, m.QuoteIdentifier)
	rows, err := m.db.QueryContext(ctx, query)
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

func (m *Adapter) GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	if !common.IsValidIdentifier(tableName) {
		return nil, fmt.Errorf("invalid table name: %s", tableName)
	}
	result, err := m.Query(ctx, fmt.Sprintf("SELECT * FROM %s", m.QuoteIdentifier(tableName)))
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

func (m *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	return m.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", m.QuoteIdentifier(tableName)))
}

func (m *Adapter) DropTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	return m.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", m.QuoteIdentifier(tableName)))
}

// SetDatabaseCollation alters the current database's default character set
// and collation. Text columns created afterwards inherit it.
func (m *Adapter) SetDatabaseCollation(ctx context.Context, charset, collation string) error {
	if !common.IsValidIdentifier(charset) {
		return fmt.Errorf("invalid character set name: %s", charset)
	}
	if !common.IsValidIdentifier(collation) {
		return fmt.Errorf("invalid collation name: %s", collation)
	}
	query := fmt.Sprintf("ALTER DATABASE CHARACTER SET %s COLLATE %s", charset, collation)
	if err := m.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to set database collation: %w", err)
	}
	return nil
}
