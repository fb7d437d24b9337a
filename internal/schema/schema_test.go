package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveComments(t *testing.T) {
	sql := "-- header comment\nCREATE TABLE users (id INTEGER); -- trailing\n/* block\ncomment */SELECT 1;"
	cleaned := RemoveComments(sql)

	assert.NotContains(t, cleaned, "header comment")
	assert.NotContains(t, cleaned, "trailing")
	assert.NotContains(t, cleaned, "block")
	assert.Contains(t, cleaned, "CREATE TABLE users (id INTEGER);")
	assert.Contains(t, cleaned, "SELECT 1;")
}

func TestSplit(t *testing.T) {
	content := `
-- users table
CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

ALTER DATABASE CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci;
`
	statements := Split(content)
	require.Len(t, statements, 2)
	assert.Contains(t, statements[0], "CREATE TABLE users")
	assert.Contains(t, statements[1], "ALTER DATABASE")
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("-- only comments\n"))
	assert.Empty(t, Split(";;;"))
}

func TestLoadStatements(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "users.sql")
	content := "CREATE TABLE users (id INTEGER);\nCREATE TABLE logs (id INTEGER);"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	statements, err := LoadStatements([]string{file})
	require.NoError(t, err)
	require.Len(t, statements, 2)
	assert.Equal(t, file, statements[0].File)
	assert.Contains(t, statements[1].SQL, "logs")
}

func TestLoadStatementsMissingFile(t *testing.T) {
	_, err := LoadStatements([]string{filepath.Join(t.TempDir(), "nope.sql")})
	assert.Error(t, err)
}
