package invoice

import "math"

// Totals are derived values, recomputed from the document on demand and
// never stored with it. Presentation layers round to 2 decimals at render
// time; keeping full precision here avoids compounding rounding error
// across repeated recomputation.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// Compute derives totals from an item sequence, a tax rate percentage and
// a fixed discount amount. It is total: non-finite quantities, rates,
// taxRate or discount are coerced to 0 (editors may transiently hold
// invalid input), and an empty item sequence yields a zero subtotal.
func Compute(items []LineItem, taxRate, discount float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += finite(it.Quantity) * finite(it.Rate)
	}
	taxAmount := subtotal * finite(taxRate) / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount - finite(discount),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
