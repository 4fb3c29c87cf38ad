package get_stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRevenue(t *testing.T) {
	testCases := []struct {
		name     string
		revenue  float64
		expected string
	}{
		{
			name:     "Zero revenue",
			revenue:  0,
			expected: "₹0.00",
		},
		{
			name:     "Below lakh threshold",
			revenue:  99999.99,
			expected: "₹99999.99",
		},
		{
			name:     "Exactly one lakh",
			revenue:  100000,
			expected: "₹1.0L",
		},
		{
			name:     "Two and a half lakh",
			revenue:  250000,
			expected: "₹2.5L",
		},
		{
			name:     "Fraction rounds to one decimal",
			revenue:  1234567,
			expected: "₹12.3L",
		},
		{
			name:     "Small amount keeps paise",
			revenue:  19500.5,
			expected: "₹19500.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRevenue(tc.revenue))
		})
	}
}
