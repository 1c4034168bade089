package repository

import (
	"fmt"
	"time"

	"biotrack/internal/repository/db"

	"github.com/spf13/cast"
)

// Drivers disagree on column types (int64 vs string, time.Time vs text), so
// row values go through cast rather than type assertions.

func colInt64(row db.Row, col string) (int64, error) {
	v, err := cast.ToInt64E(row[col])
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func colFloat64(row db.Row, col string) (float64, error) {
	v, err := cast.ToFloat64E(row[col])
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func colString(row db.Row, col string) (string, error) {
	v, err := cast.ToStringE(row[col])
	if err != nil {
		return "", fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

// colOptFloat64 returns nil for SQL NULL.
func colOptFloat64(row db.Row, col string) (*float64, error) {
	if row[col] == nil {
		return nil, nil
	}
	v, err := colFloat64(row, col)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// colOptInt returns nil for SQL NULL.
func colOptInt(row db.Row, col string) (*int, error) {
	if row[col] == nil {
		return nil, nil
	}
	v, err := cast.ToIntE(row[col])
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", col, err)
	}
	return &v, nil
}

// colTime reads timestamps stored without zone information as UTC wall clock.
func colTime(row db.Row, col string) (time.Time, error) {
	v, err := cast.ToTimeInDefaultLocationE(row[col], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}
