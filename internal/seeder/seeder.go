package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Aarav718/seedkit/internal/database"
	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
)

// Plan describes a single seeding run.
type Plan struct {
	Table         string
	Count         int
	Batch         int  // rows per INSERT statement
	Truncate      bool // clear the table before seeding
	NoTransaction bool // commit each batch independently
	Force         bool // continue past truncate failures
}

type Seeder struct {
	adapter   database.DatabaseAdapter
	generator *Generator
}

func New(adapter database.DatabaseAdapter, generator *Generator) *Seeder {
	return &Seeder{
		adapter:   adapter,
		generator: generator,
	}
}

// execer is satisfied by both *sqlx.DB and *sqlx.Tx so the insert loop does
// not care whether it runs inside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Run seeds plan.Count rows into plan.Table. The table must already exist;
// seeding never creates schema.
func (s *Seeder) Run(ctx context.Context, plan Plan) error {
	if plan.Count < 0 {
		return fmt.Errorf("record count cannot be negative: %d", plan.Count)
	}
	if !database.IsValidIdentifier(plan.Table) {
		return fmt.Errorf("invalid table name: %s", plan.Table)
	}

	exists, err := s.adapter.CheckTableExists(ctx, plan.Table)
	if err != nil {
		return fmt.Errorf("failed to check table %s: %w", plan.Table, err)
	}
	if !exists {
		return fmt.Errorf("table %s does not exist, run 'seedkit setup' first", plan.Table)
	}

	color.Cyan("🌱 Seeding %s (%d records)...", plan.Table, plan.Count)

	if plan.Truncate {
		if err := s.adapter.TruncateTable(ctx, plan.Table); err != nil {
			if !plan.Force {
				return fmt.Errorf("failed to truncate %s: %w (use --force to continue)", plan.Table, err)
			}
			color.Yellow("⚠️  Truncate failed but continuing with --force: %v", err)
		}
	}

	batch := plan.Batch
	if batch <= 0 {
		batch = 100
	}

	var exec execer = s.adapter.DB()
	var tx *sqlx.Tx
	if !plan.NoTransaction {
		var txErr error
		tx, txErr = s.adapter.DB().BeginTxx(ctx, nil)
		if txErr != nil {
			color.Yellow("⚠️  Could not start transaction: %v (continuing without transaction)", txErr)
			tx = nil
		} else {
			exec = tx
		}
	}

	if err := s.insertAll(ctx, exec, plan.Table, plan.Count, batch); err != nil {
		if tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, err)
			}
			color.Yellow("🔄 Transaction rolled back, no rows committed")
		}
		return err
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	color.Green("✅ %s seeded with %d records", plan.Table, plan.Count)
	return nil
}

func (s *Seeder) insertAll(ctx context.Context, exec execer, table string, count, batch int) error {
	qb := s.adapter.Builder()
	quoted := s.adapter.QuoteIdentifier(table)

	for start := 1; start <= count; start += batch {
		end := start + batch - 1
		if end > count {
			end = count
		}

		ins := qb.Insert(quoted).Columns("name", "age", "email")
		for i := start; i <= end; i++ {
			record := s.generator.Record(i)
			ins = ins.Values(record.Name, record.Age, record.Email)
		}

		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert statement: %w", err)
		}

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d: %w", start, end, err)
		}
	}

	return nil
}
