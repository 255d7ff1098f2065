package kpi

import (
	"testing"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/kpi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopline_Nothing(t *testing.T) {
	got := Topline(nil, nil, nil)

	assert.True(t, got.Sales.IsZero())
	assert.True(t, got.AvgCheck.IsZero())
	assert.Zero(t, got.Checks)
	assert.Zero(t, got.DonutUnits)
	assert.Nil(t, got.WastePct)
	assert.Nil(t, got.LaborPct)
}

func TestTopline_TruncatesUnits(t *testing.T) {
	sales := []kpi.SalesRecord{
		{Value: decimal.NewFromInt(10), Quantity: decimal.RequireFromString("2.6")},
		{Value: decimal.NewFromInt(10), Quantity: decimal.RequireFromString("0.3")},
	}

	got := Topline(sales, nil, nil)

	assert.Equal(t, int64(2), got.DonutUnits)
}

func TestTopline_WasteWithZeroDollars(t *testing.T) {
	sales := []kpi.SalesRecord{{Value: decimal.NewFromInt(80)}}
	waste := []kpi.WasteRecord{{WasteDollar: decimal.Zero}}

	got := Topline(sales, nil, waste)

	require.NotNil(t, got.WastePct)
	assert.Zero(t, *got.WastePct)
}

func TestGroupHourly_KeepsUnbucketedRows(t *testing.T) {
	sales := []kpi.SalesRecord{
		{TimeBucket: "10:00", Value: decimal.NewFromInt(3), Quantity: decimal.NewFromInt(1)},
		{TimeBucket: "", Value: decimal.NewFromInt(2), Quantity: decimal.NewFromInt(1)},
		{TimeBucket: "06:00", Value: decimal.NewFromInt(1), Quantity: decimal.NewFromInt(1)},
	}

	got := GroupHourly(sales)

	require.Len(t, got, 3)
	assert.Equal(t, "", got[0].TimeBucket)
	assert.Equal(t, "06:00", got[1].TimeBucket)
	assert.Equal(t, "10:00", got[2].TimeBucket)
}

func TestGroupHourly_Empty(t *testing.T) {
	got := GroupHourly(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
