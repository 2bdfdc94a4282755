package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Date wraps time.Time so we can control both JSON un/marshaling and SQL
// driver encoding. Accepts full RFC3339 timestamps as well as the plain
// "2006-01-02" form date pickers tend to submit.
type Date time.Time

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = Date(t)
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = Date(t)
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("Date.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*d = Date(t)
	return nil
}

// MarshalJSON always emits full RFC3339.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339))
}

// Value implements driver.Valuer so GORM can turn Date into a SQL
// TIMESTAMPTZ parameter.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner so GORM can read TIMESTAMPTZ back into Date.
func (d *Date) Scan(src interface{}) error {
	if src == nil {
		*d = Date(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*d = Date(v)
		return nil
	case []byte:
		t, err := time.Parse(time.RFC3339Nano, string(v))
		if err != nil {
			return fmt.Errorf("Date.Scan: parse %q: %w", string(v), err)
		}
		*d = Date(t)
		return nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("Date.Scan: parse %q: %w", v, err)
		}
		*d = Date(t)
		return nil
	default:
		return fmt.Errorf("Date.Scan: unsupported type %T", src)
	}
}
