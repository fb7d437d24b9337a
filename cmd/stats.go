package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/inspect"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <table>",
	Short: "Show per-column statistics for a table",
	Long: `
Compute summary statistics for every column of a table: min/max/avg for
numeric columns, distinct count and average length for text columns,
and distinct count for everything else.`,
	Args: cobra.ExactArgs(1),
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

		doc, err := inspect.NewService(adapter).Statistics(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Print(doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
