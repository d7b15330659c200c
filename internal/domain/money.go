package domain

import (
	"fmt"
	"math"
)

// Prices are carried as int64 centavos everywhere in this service so totals
// never accumulate floating-point error. Catalog source files store decimal
// BRL values; CentsFromDecimal converts on ingest.

// CentsFromDecimal converts a decimal BRL amount (e.g. 199.90) to centavos,
// rounding half away from zero.
func CentsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FormatCents renders centavos as a Brazilian decimal string with a comma
// separator: 28000 → "280,00". No thousands separator is used.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
