package cmd

import (
	"context"

	"github.com/Aarav718/seedkit/internal/seeder"
	"github.com/spf13/cobra"
)

var (
	seedCount  int
	seedTable  string
	seedBatch  int
	seedTrunc  bool
	seedNoTx   bool
	seedForce  bool
	seedSource int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the users table with synthetic rows",
	Long: `
Insert N synthetic rows into the target table:

  name  = "User_<r>" with r random in [0, 999] (duplicates expected)
  age   = random integer in [18, 97]
  email = "user<k>@example.com" with k the row's 1-based index

Inserts run in batches inside a single transaction, so a failure leaves
the table untouched. Pass --no-transaction to commit batches
independently instead.`,
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

		plan := seeder.Plan{
			Table:         cfg.Seed.Table,
			Count:         cfg.Seed.Count,
			Batch:         cfg.Seed.Batch,
			Truncate:      seedTrunc,
			NoTransaction: seedNoTx,
			Force:         seedForce,
		}
		if cmd.Flags().Changed("count") {
			plan.Count = seedCount
		}
		if cmd.Flags().Changed("table") {
			plan.Table = seedTable
		}
		if cmd.Flags().Changed("batch") {
			plan.Batch = seedBatch
		}

		generator := seeder.NewGenerator()
		if cmd.Flags().Changed("seed") {
			generator = seeder.NewGeneratorWithSeed(seedSource)
		}

		return seeder.New(adapter, generator).Run(ctx, plan)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedCount, "count", 1000, "Number of rows to insert")
	seedCmd.Flags().StringVar(&seedTable, "table", "users", "Target table")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 100, "Rows per INSERT statement")
	seedCmd.Flags().BoolVar(&seedTrunc, "truncate", false, "Clear the table before seeding")
	seedCmd.Flags().BoolVar(&seedNoTx, "no-transaction", false, "Commit batches independently")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Continue past truncate failures")
	seedCmd.Flags().Int64Var(&seedSource, "seed", 0, "Random seed for reproducible name/age values")
}
