package utils

import "testing"

func TestMatchesPermission(t *testing.T) {
	tests := []struct {
		name     string
		granted  string
		required string
		expected bool
	}{
		// Exact matches
		{"exact match", "bill:update", "bill:update", true},
		{"different action", "bill:update", "bill:read", false},
		{"different entity", "bill:update", "customer:update", false},

		// Full wildcard
		{"full wildcard *:*", "*:*", "bill:delete", true},
		{"full wildcard *", "*", "anything:goes", true},
		{"full wildcard matches any entity", "*:*", "meter_reading:create", true},

		// Entity wildcard
		{"entity wildcard matches create", "bill:*", "bill:create", true},
		{"entity wildcard matches delete", "bill:*", "bill:delete", true},
		{"entity wildcard wrong entity", "bill:*", "customer:create", false},

		// Action wildcard
		{"action wildcard matches bill", "*:read", "bill:read", true},
		{"action wildcard matches user", "*:read", "user:read", true},
		{"action wildcard wrong action", "*:read", "bill:update", false},

		// Edge cases
		{"empty required", "bill:read", "", false},
		{"empty granted", "", "bill:read", false},
		{"single part only exact", "admin", "admin", true},
		{"single part vs two part", "admin", "admin:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPermission(tt.granted, tt.required); got != tt.expected {
				t.Errorf("MatchesPermission(%q, %q) = %v, expected %v",
					tt.granted, tt.required, got, tt.expected)
			}
		})
	}
}

func TestHasPermission(t *testing.T) {
	meterReader := []string{"*:read", "meter_reading:create", "meter_reading:update"}

	if !HasPermission(meterReader, "bill:read") {
		t.Error("meter reader should read bills")
	}
	if !HasPermission(meterReader, "meter_reading:update") {
		t.Error("meter reader should update meter readings")
	}
	if HasPermission(meterReader, "bill:update") {
		t.Error("meter reader should not update bills")
	}
	if HasPermission(nil, "bill:read") {
		t.Error("no grants should mean no access")
	}
}
