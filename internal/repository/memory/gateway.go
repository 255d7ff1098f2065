// Package memory is a query.Gateway over in-process tables.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/query"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/numeric"
)

// Call records one Fetch invocation
type Call struct {
	Table   string
	Columns []string
	Filters []query.Filter
}

type Gateway struct {
	mu       sync.RWMutex
	tables   map[string][]query.Row
	failures map[string]error
	calls    []Call
	reporter query.Reporter
}

// NewGateway creates the named tables empty
func NewGateway(reporter query.Reporter, tables ...string) *Gateway {
	g := &Gateway{
		tables:   make(map[string][]query.Row),
		failures: make(map[string]error),
		reporter: reporter,
	}
	for _, t := range tables {
		g.tables[t] = nil
	}
	return g
}

// Insert appends rows to a table, creating it if needed
func (g *Gateway) Insert(table string, rows ...query.Row) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, row := range rows {
		g.tables[table] = append(g.tables[table], cloneRow(row))
	}
}

// Fail makes every fetch of table fail with err
func (g *Gateway) Fail(table string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[table] = err
}

// Calls returns every fetch made so far
func (g *Gateway) Calls() []Call {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Call, len(g.calls))
	copy(out, g.calls)
	return out
}

func (g *Gateway) Fetch(ctx context.Context, table string, columns []string, filters ...query.Filter) []query.Row {
	g.mu.Lock()
	g.calls = append(g.calls, Call{Table: table, Columns: columns, Filters: filters})
	failure := g.failures[table]
	stored, exists := g.tables[table]
	g.mu.Unlock()

	if failure == nil && !exists {
		failure = fmt.Errorf("relation %q does not exist", table)
	}
	if failure == nil {
		failure = validateFilters(filters)
	}
	if failure != nil {
		if g.reporter != nil {
			g.reporter.Report(ctx, query.NewDiagnostic(table, query.KindQuery, failure))
		}
		return []query.Row{}
	}

	result := []query.Row{}
	for _, row := range stored {
		if matches(row, filters) {
			result = append(result, project(row, columns))
		}
	}
	return result
}

func validateFilters(filters []query.Filter) error {
	for _, f := range filters {
		switch f.(type) {
		case query.Equals, query.InRange:
		default:
			return fmt.Errorf("unsupported filter %T", f)
		}
	}
	return nil
}

func matches(row query.Row, filters []query.Filter) bool {
	for _, f := range filters {
		switch f := f.(type) {
		case query.Equals:
			v, ok := row[f.Column]
			if !ok || numeric.Text(v) != numeric.Text(f.Value) {
				return false
			}
		case query.InRange:
			v, ok := row[f.Column]
			if !ok || compare(f.Low, v) > 0 || compare(v, f.High) > 0 {
				return false
			}
		}
	}
	return true
}

// compare orders range bounds numerically when both sides are numbers, else by text.
// Equals always matches on text: store ids are opaque keys.
func compare(a, b any) int {
	da, aok := numeric.Parse(a)
	db, bok := numeric.Parse(b)
	if aok && bok {
		return da.Cmp(db)
	}
	return strings.Compare(numeric.Text(a), numeric.Text(b))
}

func project(row query.Row, columns []string) query.Row {
	if len(columns) == 0 {
		return cloneRow(row)
	}
	out := make(query.Row, len(columns))
	for _, c := range columns {
		if v, ok := row[c]; ok {
			out[c] = v
		}
	}
	return out
}

func cloneRow(row query.Row) query.Row {
	out := make(query.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
