package utils

import "testing"

func TestConvertRouteToEntity(t *testing.T) {
	tests := []struct {
		route    string
		expected string
	}{
		{"assignments", "assignment"},
		{"bills", "bill"},
		{"companies", "company"},
		{"customers", "customer"},
		{"meter-readings", "meter_reading"},
		{"users", "user"},

		// Identity fallback
		{"unknown-thing", "unknown-thing"},
		{"", ""},
		{"bill", "bill"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := ConvertRouteToEntity(tt.route); got != tt.expected {
				t.Errorf("ConvertRouteToEntity(%q) = %q, expected %q", tt.route, got, tt.expected)
			}
		})
	}
}

func TestResourceFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/api/meter-readings", "meter-readings"},
		{"/api/meter-readings/123", "meter-readings"},
		{"/api/bills/abc/extra", "bills"},
		{"/auth/login", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		if got := ResourceFromPath(tt.path); got != tt.expected {
			t.Errorf("ResourceFromPath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
