package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 with microsecond precision and no timezone
// suffix. Timestamps are naive UTC on the wire and in the database.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp wraps time.Time to serialize in the wallpost wire format and to
// scan cleanly from a Postgres `timestamp` column.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to microsecond precision in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Microsecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string: %s", raw)
	}

	parsed, err := time.ParseInLocation(TimestampLayout, raw[1:len(raw)-1], time.UTC)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp: %w", err)
	}

	t.Time = parsed
	return nil
}

// Scan implements sql.Scanner. lib/pq hands back `timestamp` columns as
// time.Time values already anchored to UTC.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC(), nil
}
