package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	SchemaDir  string   `json:"schema_dir" mapstructure:"schema_dir"`
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
	Database   Database `json:"database" mapstructure:"database"`
	Seed       Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider  string `json:"provider" mapstructure:"provider"`
	URLEnv    string `json:"url_env" mapstructure:"url_env"`
	Charset   string `json:"charset" mapstructure:"charset"`
	Collation string `json:"collation" mapstructure:"collation"`
}

type Seed struct {
	Table string `json:"table" mapstructure:"table"`
	Count int    `json:"count" mapstructure:"count"`
	Batch int    `json:"batch" mapstructure:"batch"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.SchemaDir == "" {
		cfg.SchemaDir = "db/schema"
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "db/export"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mysql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.Charset == "" {
		cfg.Database.Charset = "utf8mb4"
	}
	if cfg.Database.Collation == "" {
		cfg.Database.Collation = "utf8mb4_unicode_ci"
	}
	if cfg.Seed.Table == "" {
		cfg.Seed.Table = "users"
	}
	if cfg.Seed.Count <= 0 {
		cfg.Seed.Count = 1000
	}
	if cfg.Seed.Batch <= 0 {
		cfg.Seed.Batch = 100
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"mysql", "postgresql", "postgres", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.SchemaDir == "" {
		return fmt.Errorf("schema_dir cannot be empty")
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.SchemaDir,
		c.ExportPath,
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetSchemaFiles returns all .sql files in the schema directory, sorted so
// files named like 001_users.sql run in a stable order.
func (c *Config) GetSchemaFiles() ([]string, error) {
	entries, err := os.ReadDir(c.SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory %s: %w", c.SchemaDir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, filepath.Join(c.SchemaDir, entry.Name()))
		}
	}

	return files, nil
}
