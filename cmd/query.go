package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/inspect"
	"github.com/spf13/cobra"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a read-only SELECT query",
	Long: `
Execute a SELECT statement and print the result as a markdown table.
Only SELECT is accepted. A LIMIT clause is appended when the query has
none (pass --limit 0 to disable).

Example:
  seedkit query "SELECT name, age FROM users WHERE age > 40"`,
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

		out, err := inspect.NewService(adapter).Query(ctx, args[0], queryLimit)
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().IntVar(&queryLimit, "limit", 100, "Maximum rows to return (0 = no limit)")
}
