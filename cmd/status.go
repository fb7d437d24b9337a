package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/inspect"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List tables and row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		tables, err := inspect.NewService(adapter).Tables(ctx)
		if err != nil {
			return err
		}

		if len(tables) == 0 {
			color.Yellow("⚠️  No tables found, run 'seedkit setup' first")
			return nil
		}

		color.Cyan("📊 %d table(s) in %s database:", len(tables), cfg.Database.Provider)
		fmt.Println()
		for _, table := range tables {
			fmt.Printf("  %-24s %d row(s)\n", table.Name, table.RowCount)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
