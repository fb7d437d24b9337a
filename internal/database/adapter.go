package database

import (
	"context"

	"github.com/Aarav718/seedkit/internal/database/common"
	"github.com/Aarav718/seedkit/internal/types"
	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// DB exposes the underlying handle for callers that manage their own
	// statements or transactions.
	DB() *sqlx.DB
	// Builder returns a statement builder with the provider's placeholder
	// format already applied.
	Builder() squirrel.StatementBuilderType
	QuoteIdentifier(name string) string

	Exec(ctx context.Context, query string, args ...interface{}) error
	Query(ctx context.Context, query string, args ...interface{}) (*types.ResultSet, error)

	// Schema operations
	CheckTableExists(ctx context.Context, tableName string) (bool, error)
	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error)
	GetTableRowCount(ctx context.Context, tableName string) (int, error)
	GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error)

	// Data operations
	GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error)
	TruncateTable(ctx context.Context, tableName string) error
	DropTable(ctx context.Context, tableName string) error

	// SetDatabaseCollation applies the database-level character set and
	// collation. Providers without the concept treat it as a no-op.
	SetDatabaseCollation(ctx context.Context, charset, collation string) error
}

func IsValidIdentifier(name string) bool {
	return common.IsValidIdentifier(name)
}
