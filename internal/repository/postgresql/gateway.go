package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/query"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type gatewayImpl struct {
	conn     database.Connector
	reporter query.Reporter
}

func NewGateway(conn database.Connector, reporter query.Reporter) query.Gateway {
	return &gatewayImpl{conn: conn, reporter: reporter}
}

// Fetch runs one SELECT and returns its rows, or an empty set on any failure
func (g *gatewayImpl) Fetch(ctx context.Context, table string, columns []string, filters ...query.Filter) []query.Row {
	rows, err := g.fetch(ctx, table, columns, filters)
	if err != nil {
		kind := query.KindQuery
		var cfgErr *database.ConfigurationError
		if errors.As(err, &cfgErr) {
			kind = query.KindConfiguration
		}
		g.reporter.Report(ctx, query.NewDiagnostic(table, kind, err))
		return []query.Row{}
	}
	return rows
}

func (g *gatewayImpl) fetch(ctx context.Context, table string, columns []string, filters []query.Filter) ([]query.Row, error) {
	sql, args, err := BuildSelect(table, columns, filters)
	if err != nil {
		return nil, err
	}

	q, err := g.conn.Querier(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", table, err)
	}

	result := make([]query.Row, 0, len(maps))
	for _, m := range maps {
		result = append(result, query.Row(m))
	}
	return result, nil
}

// BuildSelect composes a parameterized SELECT. Filters are AND-ed in order.
func BuildSelect(table string, columns []string, filters []query.Filter) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, fmt.Errorf("table name is required")
	}

	selection := "*"
	if len(columns) > 0 {
		quoted := make([]string, 0, len(columns))
		for _, c := range columns {
			if strings.TrimSpace(c) == "" {
				return "", nil, fmt.Errorf("empty column name in selection for %s", table)
			}
			quoted = append(quoted, pgx.Identifier{c}.Sanitize())
		}
		selection = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", selection, pgx.Identifier{table}.Sanitize())

	var (
		conds []string
		args  []any
	)
	placeholder := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, f := range filters {
		switch f := f.(type) {
		case query.Equals:
			col := pgx.Identifier{f.Column}.Sanitize()
			conds = append(conds, fmt.Sprintf("%s = %s", col, placeholder(f.Value)))
		case query.InRange:
			col := pgx.Identifier{f.Column}.Sanitize()
			conds = append(conds, fmt.Sprintf("%s >= %s", col, placeholder(f.Low)))
			conds = append(conds, fmt.Sprintf("%s <= %s", col, placeholder(f.High)))
		default:
			return "", nil, fmt.Errorf("unsupported filter %T", f)
		}
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	return sb.String(), args, nil
}
