package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all tables in the database",
	Long: `
Drop every table in the configured database.

⚠️  WARNING: This permanently deletes all data!

Use --force to skip the confirmation prompt.`,
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

		tables, err := adapter.GetAllTableNames(ctx)
		if err != nil {
			return err
		}

		if len(tables) == 0 {
			color.Yellow("⚠️  Database has no tables, nothing to reset")
			return nil
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			color.Yellow("⚠️  This will drop %d table(s): %s", len(tables), strings.Join(tables, ", "))
			fmt.Print("Type 'yes' to continue: ")

			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted")
				return nil
			}
		}

		for _, table := range tables {
			if err := adapter.DropTable(ctx, table); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
			color.Cyan("  🗑️  Dropped %s", table)
		}

		color.Green("✅ Database reset complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
}
