package services

import "testing"

func TestComputeBillAmount(t *testing.T) {
	tests := []struct {
		name     string
		reading  int64
		tariff   int64
		expected int64
	}{
		{"typical reading", 120, 45, 5400},
		{"zero reading", 0, 45, 0},
		{"unit tariff", 300, 1, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeBillAmount(tt.reading, tt.tariff); got != tt.expected {
				t.Errorf("ComputeBillAmount(%d, %d) = %d, expected %d",
					tt.reading, tt.tariff, got, tt.expected)
			}
		})
	}
}
