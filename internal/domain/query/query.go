package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Row is one record returned by a table fetch, keyed by column name.
type Row map[string]any

// Filter is a predicate applied to a table fetch. Filters are AND-ed in order.
type Filter interface {
	isFilter()
}

// Equals matches rows where Column = Value.
type Equals struct {
	Column string
	Value  any
}

// InRange matches rows where Low <= Column <= High.
type InRange struct {
	Column string
	Low    any
	High   any
}

func (Equals) isFilter()  {}
func (InRange) isFilter() {}

// Gateway executes a single table fetch.
// Fetch never returns an error: failures yield an empty row set and a Diagnostic.
type Gateway interface {
	Fetch(ctx context.Context, table string, columns []string, filters ...Filter) []Row
}

// DiagnosticKind classifies a fetch failure
type DiagnosticKind string

const (
	KindConfiguration DiagnosticKind = "configuration"
	KindQuery         DiagnosticKind = "query"
)

// Diagnostic describes a fetch failure absorbed by a Gateway
type Diagnostic struct {
	ID         uuid.UUID
	Table      string
	Kind       DiagnosticKind
	Err        error
	OccurredAt time.Time
}

// Reporter receives diagnostics from a Gateway.
type Reporter interface {
	Report(ctx context.Context, d Diagnostic)
}

// NewDiagnostic stamps a failure with an id and time
func NewDiagnostic(table string, kind DiagnosticKind, err error) Diagnostic {
	id, uerr := uuid.NewV7()
	if uerr != nil {
		id = uuid.New()
	}
	return Diagnostic{
		ID:         id,
		Table:      table,
		Kind:       kind,
		Err:        err,
		OccurredAt: time.Now(),
	}
}
