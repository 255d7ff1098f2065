package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/kpi-dashboard/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TestDatabaseSetup owns a set of uniquely named KPI tables in a live database
type TestDatabaseSetup struct {
	Handle *database.Handle
	Tables postgresql.Tables
}

// NewTestDatabase connects with TEST_DATABASE_URL and TEST_DATABASE_KEY and
// skips the test when they are not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	key := os.Getenv("TEST_DATABASE_KEY")
	if dsn == "" || key == "" {
		t.Skip("TEST_DATABASE_URL and TEST_DATABASE_KEY are not set")
	}

	suffix := strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	setup := &TestDatabaseSetup{
		Handle: database.NewHandle(dsn, key),
		Tables: postgresql.Tables{
			Sales:       "donut_sales_hourly_" + suffix,
			Labor:       "actual_table_labor_" + suffix,
			Waste:       "usage_overview_" + suffix,
			StoreColumn: "pc_number",
		},
	}
	if err := setup.createTables(context.Background()); err != nil {
		setup.Handle.Close()
		t.Fatalf("create test tables: %v", err)
	}
	t.Cleanup(func() {
		setup.dropTables(context.Background())
		setup.Handle.Close()
	})
	return setup
}

func (s *TestDatabaseSetup) createTables(ctx context.Context) error {
	q, err := s.Handle.Querier(ctx)
	if err != nil {
		return err
	}

	ddl := map[string]string{
		s.Tables.Sales: `pc_number text, date date, time text, product_type text, product_name text,
			quantity numeric, value numeric`,
		s.Tables.Labor: `pc_number text, date date, hour_range text, actual_hours numeric, actual_labor numeric,
			sales_value numeric, check_count integer, sales_per_labor_hour numeric`,
		s.Tables.Waste: `usage_id text, pc_number text, date date, product_type text, store_name text,
			ordered_qty numeric, wasted_qty numeric, waste_percent numeric, waste_dollar numeric,
			expected_consumption numeric`,
	}
	for table, columns := range ddl {
		sql := fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{table}.Sanitize(), columns)
		if _, err := q.Exec(ctx, sql); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

// Exec runs a statement against the test database
func (s *TestDatabaseSetup) Exec(t *testing.T, sql string, args ...any) {
	t.Helper()
	q, err := s.Handle.Querier(context.Background())
	if err != nil {
		t.Fatalf("querier: %v", err)
	}
	if _, err := q.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}

func (s *TestDatabaseSetup) dropTables(ctx context.Context) {
	q, err := s.Handle.Querier(ctx)
	if err != nil {
		return
	}
	for _, table := range []string{s.Tables.Sales, s.Tables.Labor, s.Tables.Waste} {
		_, _ = q.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{table}.Sanitize())
	}
}
