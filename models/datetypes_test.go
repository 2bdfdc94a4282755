package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339", `"2025-06-01T10:30:00Z"`, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2025-06-01"`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !time.Time(d).Equal(tt.expected) {
				t.Errorf("got %v, expected %v", time.Time(d), tt.expected)
			}
		})
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestDateMarshalRFC3339(t *testing.T) {
	d := Date(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC))
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-06-01T10:30:00Z"` {
		t.Errorf("got %s", raw)
	}
}
