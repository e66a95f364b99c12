package chain

import (
	"math/big"
	"strings"
)

// FormatUnits renders an integer amount of base units as a decimal string with
// the given number of decimals, trailing fractional zeros removed.
// FormatUnits(1500000000000000000, 18) == "1.5".
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil || amount.Sign() == 0 {
		return "0"
	}
	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(amount).String()
	if decimals <= 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")
	if frac == "" {
		return sign + whole
	}
	return sign + whole + "." + frac
}
