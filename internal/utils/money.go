package utils

import (
	"fmt"
	"math"
	"strings"
)

var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
	"AUD": "A$",
	"CAD": "C$",
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half up.
// The epsilon absorbs binary representation error such as 1.005*100 = 100.49999.
func ToMinorUnits(major float64) int64 {
	return int64(math.Floor(major*100 + 0.5 + 1e-9))
}

// FormatMinor renders minor units as a display amount such as "£120.00"
func FormatMinor(amount int64, currency string) string {
	code := strings.ToUpper(currency)
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	value := fmt.Sprintf("%d.%02d", amount/100, amount%100)
	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + value
	}
	return fmt.Sprintf("%s%s %s", sign, value, code)
}
