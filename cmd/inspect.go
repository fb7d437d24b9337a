package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/inspect"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <table>",
	Short: "Show a table's columns and definition",
	Args:  cobra.ExactArgs(1),
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

		doc, err := inspect.NewService(adapter).Describe(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Print(doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
