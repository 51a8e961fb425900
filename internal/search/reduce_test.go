package search_test

import (
	"testing"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func quote(class, total string) schema.VehicleQuote {
	return schema.VehicleQuote{ClassName: class, Total: decimal.RequireFromString(total)}
}

func TestCheapest(t *testing.T) {
	tests := []struct {
		name     string
		quotes   []schema.VehicleQuote
		expected schema.VehicleQuote
		found    bool
	}{
		{
			name:   "empty list",
			quotes: []schema.VehicleQuote{},
			found:  false,
		},
		{
			name:   "nil list",
			quotes: nil,
			found:  false,
		},
		{
			name:     "single quote",
			quotes:   []schema.VehicleQuote{quote("SUV", "80.00")},
			expected: quote("SUV", "80.00"),
			found:    true,
		},
		{
			name:     "minimum first",
			quotes:   []schema.VehicleQuote{quote("Economy", "45.00"), quote("SUV", "80.00")},
			expected: quote("Economy", "45.00"),
			found:    true,
		},
		{
			name:     "minimum last",
			quotes:   []schema.VehicleQuote{quote("SUV", "80.00"), quote("Compact", "61.10"), quote("Economy", "45.99")},
			expected: quote("Economy", "45.99"),
			found:    true,
		},
		{
			name:     "tie keeps first seen",
			quotes:   []schema.VehicleQuote{quote("SUV", "90"), quote("Compact", "45.00"), quote("Economy", "45")},
			expected: quote("Compact", "45.00"),
			found:    true,
		},
		{
			name:     "unknown class priced",
			quotes:   []schema.VehicleQuote{quote("Unknown Class", "52.75")},
			expected: quote("Unknown Class", "52.75"),
			found:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			best, found := search.Cheapest(test.quotes)

			assert.Equal(t, test.found, found)
			assert.Equal(t, test.expected.ClassName, best.ClassName)
			assert.True(t, test.expected.Total.Equal(best.Total))

			for _, q := range test.quotes {
				assert.True(t, best.Total.LessThanOrEqual(q.Total))
			}
		})
	}
}

func TestSummarizeByClass(t *testing.T) {
	summary := search.SummarizeByClass([]schema.VehicleQuote{
		quote("Economy", "45.00"),
		quote("SUV", "80.00"),
		quote("Economy", "47.25"),
		quote("Compact", "50"),
	})

	assert.Equal(t, []string{"Economy", "SUV", "Compact"}, []string{summary[0].ClassName, summary[1].ClassName, summary[2].ClassName})
	assert.Equal(t, "47.25", summary[0].Total.String())
	assert.Empty(t, search.SummarizeByClass(nil))
}
