package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupExportDB(t *testing.T) database.DatabaseAdapter {
	t.Helper()

	adapter := database.NewAdapter("sqlite")
	url := "sqlite://" + filepath.Join(t.TempDir(), "export.db")
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
		"INSERT INTO users (name, age, email) VALUES (?, ?, ?), (?, ?, ?)",
		"User_3", 31, "user1@example.com",
		"User_77", 52, "user2@example.com"))

	return adapter
}

func TestPerformExportJSON(t *testing.T) {
	adapter := setupExportDB(t)
	exportPath := t.TempDir()

	filePath, err := PerformExport(context.Background(), adapter, exportPath, "json")
	require.NoError(t, err)
	require.NotEmpty(t, filePath)
	assert.True(t, strings.HasSuffix(filePath, ".json"))

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Equal(t, "1.0", snapshot.Version)
	assert.NotEmpty(t, snapshot.Timestamp)

	rows, ok := snapshot.Tables["users"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 2)

	first := rows[0].(map[string]interface{})
	assert.Equal(t, "User_3", first["name"])
	assert.Equal(t, "user1@example.com", first["email"])
}

func TestPerformExportYAML(t *testing.T) {
	adapter := setupExportDB(t)
	exportPath := t.TempDir()

	filePath, err := PerformExport(context.Background(), adapter, exportPath, "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filePath, ".yaml"))

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, yaml.Unmarshal(data, &snapshot))
	assert.Contains(t, snapshot.Tables, "users")
}

func TestPerformExportEmptyDatabase(t *testing.T) {
	adapter := database.NewAdapter("sqlite")
	url := "sqlite://" + filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, adapter.Connect(context.Background(), url))
	t.Cleanup(func() { adapter.Close() })

	filePath, err := PerformExport(context.Background(), adapter, t.TempDir(), "json")
	require.NoError(t, err)
	assert.Empty(t, filePath)
}

func TestPerformExportCreatesDirectory(t *testing.T) {
	adapter := setupExportDB(t)
	exportPath := filepath.Join(t.TempDir(), "nested", "export")

	filePath, err := PerformExport(context.Background(), adapter, exportPath, "json")
	require.NoError(t, err)
	assert.DirExists(t, exportPath)
	assert.FileExists(t, filePath)
}
