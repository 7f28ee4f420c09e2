package manifest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseVNNumber parses a vi-VN formatted number.
// Format examples: "8.500" -> 8500, "1.234,5" -> 1234.5, "120" -> 120.
func parseVNNumber(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	return decimal.NewFromString(clean)
}

// FormatVNNumber renders d with a decimal comma and no grouping, the form parseVNNumber reads back.
func FormatVNNumber(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}
