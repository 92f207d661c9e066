package layout

import (
	"fmt"
	"strconv"
	"strings"

	"fatura-backend/invoice"
)

// CurrencySymbol returns the display symbol appended after money values.
func CurrencySymbol(c invoice.Currency) string {
	switch c {
	case invoice.CurrencyEUR:
		return "€"
	case invoice.CurrencyALL:
		return "Lek"
	default:
		return "$"
	}
}

// FormatMoney renders a money value to exactly 2 decimals followed by a
// space and the currency symbol, e.g. "113.00 €".
func FormatMoney(v float64, c invoice.Currency) string {
	return fmt.Sprintf("%.2f %s", v, CurrencySymbol(c))
}

// FormatAmount renders a bare 2-decimal number, used in table cells where
// the original preview omits the currency symbol.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatQuantity renders a quantity in minimal decimal form (no trailing
// zeros), matching how the editor displays raw numbers.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate maps a stored ISO date (YYYY-MM-DD) to display form
// (DD/MM/YYYY). Empty stays empty and anything that is not three dash
// separated fields passes through verbatim; no input ever renders as
// "Invalid Date" or an epoch.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
