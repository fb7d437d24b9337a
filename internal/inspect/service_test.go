package inspect

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()

	adapter := database.NewAdapter("sqlite")
	url := "sqlite://" + filepath.Join(t.TempDir(), "inspect.db")
	require.NoError(t, adapter.Connect(context.Background(), url))
	t.Cleanup(func() { adapter.Close() })

	ctx := context.Background()
	require.NoError(t, adapter.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER,
			email TEXT
		)`))
	require.NoError(t, adapter.Exec(ctx,
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		"User_12", 25, "user1@example.com",
		"User_980", 60, "user2@example.com",
		"User_12", 97, "user3@example.com"))

	return NewService(adapter)
}

func TestTables(t *testing.T) {
	svc := setupTestService(t)

	tables, err := svc.Tables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "users", tables[0].Name)
	assert.Equal(t, 3, tables[0].RowCount)
}

func TestDescribe(t *testing.T) {
	svc := setupTestService(t)

	doc, err := svc.Describe(context.Background(), "users")
	require.NoError(t, err)

	assert.Contains(t, doc, "# Table: users")
	assert.Contains(t, doc, "## Columns")
	assert.Contains(t, doc, "| id | INTEGER | NO | PRI | NULL | auto_increment |")
	assert.Contains(t, doc, "| name | TEXT | NO |  | NULL |  |")
	assert.Contains(t, doc, "| age | INTEGER | YES |  | NULL |  |")
	assert.Contains(t, doc, "```sql")
	assert.Contains(t, doc, `CREATE TABLE "users" (`)
	assert.Contains(t, doc, `"name" TEXT NOT NULL`)
}

func TestDescribeMissingTable(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Describe(context.Background(), "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDescribeInvalidName(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Describe(context.Background(), "users; --")
	assert.Error(t, err)
}

func TestStatistics(t *testing.T) {
	svc := setupTestService(t)

	doc, err := svc.Statistics(context.Background(), "users")
	require.NoError(t, err)

	assert.Contains(t, doc, "# Statistics: users")
	assert.Contains(t, doc, "Total rows: 3")
	assert.Contains(t, doc, "## Numeric columns")
	// age: min 25, max 97, avg (25+60+97)/3
	assert.Contains(t, doc, "| age | INTEGER | 25 | 97 | 60.67 |")
	assert.Contains(t, doc, "## Text columns")
	// Two distinct names, three distinct emails.
	assert.Contains(t, doc, "| name | TEXT | 2 |")
	assert.Contains(t, doc, "| email | TEXT | 3 | 17.00 |")
}

func TestQueryRendersMarkdown(t *testing.T) {
	svc := setupTestService(t)

	out, err := svc.Query(context.Background(), "SELECT name, age FROM users ORDER BY id", 100)
	require.NoError(t, err)

	assert.Contains(t, out, "Query result (3 rows):")
	assert.Contains(t, out, "| name | age |")
	assert.Contains(t, out, "| User_12 | 25 |")
}

func TestQueryAppendsLimit(t *testing.T) {
	svc := setupTestService(t)

	out, err := svc.Query(context.Background(), "SELECT name FROM users ORDER BY id;", 2)
	require.NoError(t, err)
	assert.Contains(t, out, "Query result (2 rows):")
}

func TestQueryKeepsExistingLimit(t *testing.T) {
	svc := setupTestService(t)

	out, err := svc.Query(context.Background(), "SELECT name FROM users LIMIT 1", 100)
	require.NoError(t, err)
	assert.Contains(t, out, "Query result (1 rows):")
}

func TestQueryRejectsNonSelect(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Query(context.Background(), "DELETE FROM users", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only SELECT")

	_, err = svc.Query(context.Background(), "DROP TABLE users", 100)
	assert.Error(t, err)
}

func TestQueryNoRows(t *testing.T) {
	svc := setupTestService(t)

	out, err := svc.Query(context.Background(), "SELECT name FROM users WHERE age > 200", 100)
	require.NoError(t, err)
	assert.Contains(t, out, "returned no rows")
}
