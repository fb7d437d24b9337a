package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *Adapter {
	t.Helper()

	adapter := New()
	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, adapter.Connect(context.Background(), url))
	t.Cleanup(func() { adapter.Close() })
	require.NoError(t, adapter.Ping(context.Background()))

	return adapter
}

func createUsersTable(t *testing.T, adapter *Adapter) {
	t.Helper()
	require.NoError(t, adapter.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER,
			email TEXT
		)`))
}

func TestCheckTableExists(t *testing.T) {
	adapter := openTestDB(t)
	ctx := context.Background()

	exists, err := adapter.CheckTableExists(ctx, "users")
	require.NoError(t, err)
	assert.False(t, exists)

	createUsersTable(t, adapter)

	exists, err = adapter.CheckTableExists(ctx, "users")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetTableColumns(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)

	columns, err := adapter.GetTableColumns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	byName := make(map[string]int)
	for i, col := range columns {
		byName[col.Name] = i
	}

	id := columns[byName["id"]]
	assert.True(t, id.IsPrimary)
	assert.True(t, id.IsAutoIncrement)
	assert.False(t, id.Nullable)

	name := columns[byName["name"]]
	assert.False(t, name.Nullable)
	assert.Equal(t, "TEXT", name.Type)

	age := columns[byName["age"]]
	assert.True(t, age.Nullable)
	assert.Equal(t, "INTEGER", age.Type)

	email := columns[byName["email"]]
	assert.True(t, email.Nullable)
}

func TestRowCounts(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)
	ctx := context.Background()

	count, err := adapter.GetTableRowCount(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?), (?, ?, ?)",
		"User_42", 30, "user1@example.com",
		"User_7", 55, "user2@example.com"))

	count, err = adapter.GetTableRowCount(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	counts, err := adapter.GetAllTableRowCounts(ctx, []string{"users"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"users": 2}, counts)
}

func TestGetAllTableNamesSkipsInternal(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)
	ctx := context.Background()

	// AUTOINCREMENT creates sqlite_sequence, which must not be listed.
	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?)", "User_1", 20, "user1@example.com"))

	tables, err := adapter.GetAllTableNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, tables)
}

func TestQueryReturnsTypedRows(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)
	ctx := context.Background()

	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?)", "User_9", 44, "user1@example.com"))

	result, err := adapter.Query(ctx, "SELECT name, age, email FROM users WHERE id = ?", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "email"}, result.Columns)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "User_9", result.Rows[0]["name"])
	assert.EqualValues(t, 44, result.Rows[0]["age"])
}

func TestTruncateResetsAutoincrement(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)
	ctx := context.Background()

	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?)", "User_1", 20, "user1@example.com"))
	require.NoError(t, adapter.TruncateTable(ctx, "users"))

	count, err := adapter.GetTableRowCount(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// After the sequence reset the next insert starts back at id 1.
	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?)", "User_2", 21, "user1@example.com"))

	result, err := adapter.Query(ctx, "SELECT id FROM users")
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.EqualValues(t, 1, result.Rows[0]["id"])
}

func TestDropTable(t *testing.T) {
	adapter := openTestDB(t)
	createUsersTable(t, adapter)
	ctx := context.Background()

	require.NoError(t, adapter.DropTable(ctx, "users"))

	exists, err := adapter.CheckTableExists(ctx, "users")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRejectsInvalidIdentifiers(t *testing.T) {
	adapter := openTestDB(t)
	ctx := context.Background()

	_, err := adapter.GetTableRowCount(ctx, "users; DROP TABLE users")
	assert.Error(t, err)

	_, err = adapter.GetTableColumns(ctx, "users--")
	assert.Error(t, err)

	assert.Error(t, adapter.TruncateTable(ctx, `users"`))
	assert.Error(t, adapter.DropTable(ctx, "1users"))
}

func TestQuoteIdentifier(t *testing.T) {
	adapter := New()
	assert.Equal(t, `"users"`, adapter.QuoteIdentifier("users"))
	assert.Equal(t, `"a""b"`, adapter.QuoteIdentifier(`a"b`))
}
