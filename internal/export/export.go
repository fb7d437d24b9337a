package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Snapshot is the on-disk export document: every table's rows keyed by name.
type Snapshot struct {
	Timestamp string                 `json:"timestamp" yaml:"timestamp"`
	Version   string                 `json:"version" yaml:"version"`
	Tables    map[string]interface{} `json:"tables" yaml:"tables"`
}

// PerformExport dumps every table to a single file under exportPath and
// returns the file path. Supported formats: json (default), yaml.
func PerformExport(ctx context.Context, adapter database.DatabaseAdapter, exportPath, format string) (string, error) {
	tables, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get table names: %w", err)
	}

	if len(tables) == 0 {
		return "", nil
	}

	snapshot := Snapshot{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Tables:    make(map[string]interface{}, len(tables)),
	}

	type tableResult struct {
		name string
		data []map[string]interface{}
		err  error
	}

	results := make(chan tableResult, len(tables))
	var wg sync.WaitGroup

	for _, tableName := range tables {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			data, err := adapter.GetTableData(ctx, name)
			results <- tableResult{name, data, err}
		}(tableName)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		if result.err != nil {
			color.Yellow("⚠️  Failed to get data for table %s: %v", result.name, result.err)
			continue
		}
		snapshot.Tables[result.name] = result.data
	}

	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	switch format {
	case "yaml":
		return writeYAML(snapshot, exportPath, timestamp)
	default:
		return writeJSON(snapshot, exportPath, timestamp)
	}
}

func writeJSON(snapshot Snapshot, exportPath, timestamp string) (string, error) {
	filePath := filepath.Join(exportPath, fmt.Sprintf("export_%s.json", timestamp))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export data: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filePath, nil
}

func writeYAML(snapshot Snapshot, exportPath, timestamp string) (string, error) {
	filePath := filepath.Join(exportPath, fmt.Sprintf("export_%s.yaml", timestamp))

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal export data: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filePath, nil
}
