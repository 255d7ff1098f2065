// Package numeric coerces loosely typed column values into numbers.
// A value that cannot be read as a number counts as zero.
package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Decimal converts v to a decimal, falling back to zero.
func Decimal(v any) decimal.Decimal {
	d, ok := Parse(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Parse converts v to a decimal and reports whether it was numeric.
func Parse(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	case []byte:
		return fromString(string(n))
	case pgtype.Numeric:
		return fromNumeric(n)
	case pgtype.Float8:
		if !n.Valid {
			return decimal.Zero, false
		}
		return fromFloat(n.Float64)
	case pgtype.Int8:
		if !n.Valid {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(n.Int64), true
	case pgtype.Int4:
		if !n.Valid {
			return decimal.Zero, false
		}
		return decimal.NewFromInt32(n.Int32), true
	default:
		return decimal.Zero, false
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func fromString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func fromNumeric(n pgtype.Numeric) (decimal.Decimal, bool) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), true
}

// Int truncates a decimal toward zero.
func Int(d decimal.Decimal) int64 {
	return d.IntPart()
}

// Text renders a column value as a string. Dates render as YYYY-MM-DD and
// times of day as HH:MM:SS.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	case pgtype.Date:
		if !t.Valid {
			return ""
		}
		return t.Time.Format("2006-01-02")
	case pgtype.Time:
		if !t.Valid {
			return ""
		}
		return clock(t.Microseconds)
	case pgtype.Text:
		if !t.Valid {
			return ""
		}
		return t.String
	default:
		return fmt.Sprint(t)
	}
}

func clock(micros int64) string {
	secs := micros / 1_000_000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
