package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export database tables to a file",
	Long: `
Export all database tables to a single snapshot file.
Supported formats: json (default), yaml

Examples:
  seedkit export
  seedkit export --yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		format := "json"
		if yamlFlag, _ := cmd.Flags().GetBool("yaml"); yamlFlag {
			format = "yaml"
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		exportPath, err := export.PerformExport(ctx, adapter, cfg.ExportPath, format)
		if err != nil {
			return err
		}

		if exportPath != "" {
			fmt.Printf("✅ Export completed: %s\n", exportPath)
		} else {
			fmt.Println("No export created (database is empty)")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolP("json", "j", false, "Export as JSON (default)")
	exportCmd.Flags().BoolP("yaml", "y", false, "Export as YAML")
}
