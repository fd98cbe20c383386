// Package format renders monetary amounts for reports.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/drill-cost/pkg/constants"
)

// Rupiah returns a currency string with the Rp prefix, comma thousands
// separators and two decimals (e.g., "Rp1,234,567.50"). A negative sign
// follows the prefix ("Rp-1,234.00").
func Rupiah(amount float64) string {
	return constants.CurrencyPrefix + NumericCurrency(amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + formatted
	}
	return formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
