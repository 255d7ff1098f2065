package diagnostic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReporter_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	reporter := NewLogReporter(logger)

	d := query.NewDiagnostic("usage_overview", query.KindQuery, errors.New("permission denied"))
	reporter.Report(context.Background(), d)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "usage_overview", entry["table"])
	assert.Equal(t, "query", entry["kind"])
	assert.Equal(t, d.ID.String(), entry["diagnostic_id"])
	assert.Equal(t, "permission denied", entry["error"])
}

func TestRecorder_KeepsOrder(t *testing.T) {
	rec := NewRecorder()
	rec.Report(context.Background(), query.NewDiagnostic("sales", query.KindQuery, errors.New("a")))
	rec.Report(context.Background(), query.NewDiagnostic("waste", query.KindConfiguration, errors.New("b")))

	assert.Equal(t, []string{"sales", "waste"}, rec.Tables())

	got := rec.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, query.KindConfiguration, got[1].Kind)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}
