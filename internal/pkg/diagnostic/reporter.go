package diagnostic

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/query"
)

type logReporter struct {
	logger *slog.Logger
}

// NewLogReporter logs every diagnostic at error level
func NewLogReporter(logger *slog.Logger) query.Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &logReporter{logger: logger}
}

func (r *logReporter) Report(ctx context.Context, d query.Diagnostic) {
	r.logger.ErrorContext(ctx, "Failed to query table",
		slog.String("diagnostic_id", d.ID.String()),
		slog.String("table", d.Table),
		slog.String("kind", string(d.Kind)),
		slog.Any("error", d.Err),
	)
}

// Recorder keeps diagnostics in memory
type Recorder struct {
	mu          sync.Mutex
	diagnostics []query.Diagnostic
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(_ context.Context, d query.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns a copy of everything reported so far
func (r *Recorder) Diagnostics() []query.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]query.Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Tables returns the table of each diagnostic in report order
func (r *Recorder) Tables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	tables := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		tables = append(tables, d.Table)
	}
	return tables
}
