package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Aarav718/seedkit/internal/database/common"
	"github.com/Aarav718/seedkit/internal/types"
	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Adapter struct {
	db *sqlx.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sqlx.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	p.db = db
	return nil
}

func (p *Adapter) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Adapter) DB() *sqlx.DB {
	return p.db
}

func (p *Adapter) Builder() squirrel.StatementBuilderType {
	return p.qb
}

func (p *Adapter) QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

func (p *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := p.db.ExecContext(ctx, query, args...)
	return err
}

func (p *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*types.ResultSet, error) {
	rows, err := p.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (p *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*) > 0 FROM information_schema.tables
		WHERE table_name = $1 AND table_schema = current_schema()
	`, tableName).Scan(&exists)
	return exists, err
}

func (p *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
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

func (p *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT c.column_name, c.data_type, c.is_nullable,
		       COALESCE(c.column_default, ''),
		       EXISTS (
		           SELECT 1 FROM information_schema.key_column_usage kcu
		           JOIN information_schema.table_constraints tc
		             ON tc.constraint_name = kcu.constraint_name
		            AND tc.table_schema = kcu.table_schema
		           WHERE tc.constraint_type = 'PRIMARY KEY'
		             AND kcu.table_name = c.table_name
		             AND kcu.column_name = c.column_name
		             AND kcu.table_schema = c.table_schema
		       ) AS is_primary
		FROM information_schema.columns c
		WHERE c.table_name = $1 AND c.table_schema = current_schema()
		ORDER BY c.ordinal_position
	`, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var name, colType, nullable, def string
		var isPrimary bool
		if err := rows.Scan(&name, &colType, &nullable, &def, &isPrimary); err != nil {
			return nil, err
		}
		columns = append(columns, types.Column{
			Name:            name,
			Type:            colType,
			Nullable:        nullable == "YES",
			IsPrimary:       isPrimary,
			IsAutoIncrement: isSerialDefault(def),
			Default:         def,
		})
	}
	return columns, rows.Err()
}

// isSerialDefault reports whether a column default comes from a sequence,
// which is how SERIAL columns surface in information_schema.
func isSerialDefault(def string) bool {
	return len(def) > 8 && def[:8] == "nextval("
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", p.QuoteIdentifier(tableName))
	if err := p.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (p *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}
	for _, name := range tableNames {
		if !common.IsValidIdentifier(name) {
			return nil, fmt.Errorf("invalid table name: %s", name)
		}
	}

	query := common.BatchRowCountQuery(tableNames, p.QuoteIdentifier)
	rows, err := p.db.QueryContext(ctx, query)
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

func (p *Adapter) GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	if !common.IsValidIdentifier(tableName) {
		return nil, fmt.Errorf("invalid table name: %s", tableName)
	}
	result, err := p.Query(ctx, fmt.Sprintf("SELECT * FROM %s", p.QuoteIdentifier(tableName)))
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

func (p *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	return p.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", p.QuoteIdentifier(tableName)))
}

func (p *Adapter) DropTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	return p.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", p.QuoteIdentifier(tableName)))
}

// SetDatabaseCollation is a no-op: PostgreSQL fixes encoding and collation
// at CREATE DATABASE time and they cannot be altered afterwards.
func (p *Adapter) SetDatabaseCollation(ctx context.Context, charset, collation string) error {
	return nil
}
