package invoice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(q, r float64) LineItem {
	return LineItem{ID: "x", Quantity: q, Rate: r}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		taxRate      float64
		discount     float64
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:         "empty sequence",
			items:        nil,
			taxRate:      18,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
		{
			name:         "single item with tax and discount",
			items:        []LineItem{item(2, 50)},
			taxRate:      18,
			discount:     5,
			wantSubtotal: 100,
			wantTax:      18,
			wantTotal:    113,
		},
		{
			name:         "multiple items sum in order",
			items:        []LineItem{item(8, 120), item(2, 100), item(1, 500)},
			taxRate:      0,
			wantSubtotal: 1660,
			wantTax:      0,
			wantTotal:    1660,
		},
		{
			name:         "negative discount increases total",
			items:        []LineItem{item(1, 100)},
			taxRate:      0,
			discount:     -10,
			wantSubtotal: 100,
			wantTax:      0,
			wantTotal:    110,
		},
		{
			name:         "non-finite fields coerced to zero",
			items:        []LineItem{item(math.NaN(), 50), item(2, math.Inf(1)), item(3, 10)},
			taxRate:      10,
			wantSubtotal: 30,
			wantTax:      3,
			wantTotal:    33,
		},
		{
			name:         "non-finite tax rate coerced to zero",
			items:        []LineItem{item(1, 100)},
			taxRate:      math.Inf(-1),
			wantSubtotal: 100,
			wantTax:      0,
			wantTotal:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.taxRate, tt.discount)
			assert.InDelta(t, tt.wantSubtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantTax, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.wantTotal, got.Total, 1e-9)
		})
	}
}

func TestComputeNeverStoresState(t *testing.T) {
	items := []LineItem{item(2, 50)}
	first := Compute(items, 18, 5)
	items[0].Rate = 100
	second := Compute(items, 18, 5)
	assert.InDelta(t, 100.0, first.Subtotal, 1e-9)
	assert.InDelta(t, 200.0, second.Subtotal, 1e-9)
}
