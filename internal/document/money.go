package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as currency with thousands separators and
// two decimals, e.g. 1234.5 -> "$1,234.50".
func FormatMoney(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := "$" + grouped.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
