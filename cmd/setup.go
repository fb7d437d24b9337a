package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the schema and set the database collation",
	Long: `
Execute every statement in the schema directory against the configured
database, then apply the configured database-level character set and
collation (MySQL only; other providers skip this step).

The generated schema uses CREATE TABLE IF NOT EXISTS, so setup is safe
to re-run against an existing database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		files, err := cfg.GetSchemaFiles()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no .sql files found in %s, run 'seedkit init' first", cfg.SchemaDir)
		}

		statements, err := schema.LoadStatements(files)
		if err != nil {
			return err
		}
		if len(statements) == 0 {
			return fmt.Errorf("schema files in %s contain no statements", cfg.SchemaDir)
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		color.Cyan("📄 Applying %d statement(s) from %s...", len(statements), cfg.SchemaDir)

		for i, stmt := range statements {
			if err := adapter.Exec(ctx, stmt.SQL); err != nil {
				return fmt.Errorf("failed to execute statement %d from %s: %w", i+1, stmt.File, err)
			}
		}

		if err := adapter.SetDatabaseCollation(ctx, cfg.Database.Charset, cfg.Database.Collation); err != nil {
			return err
		}

		color.Green("✅ Schema applied (%s/%s)", cfg.Database.Charset, cfg.Database.Collation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
