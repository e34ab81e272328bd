package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		major float64
		minor int64
	}{
		{50, 5000},
		{70, 7000},
		{119.5, 11950},
		{1.005, 101},
		{0.125, 13},
		{0.124, 12},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.minor, ToMinorUnits(tt.major), "major=%v", tt.major)
	}
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "£120.00", FormatMinor(12000, "GBP"))
	assert.Equal(t, "$0.05", FormatMinor(5, "usd"))
	assert.Equal(t, "-€1.50", FormatMinor(-150, "EUR"))
	assert.Equal(t, "99.99 CHF", FormatMinor(9999, "CHF"))
}
