// Package money holds the exact-decimal helpers shared by the pricing
// components. Monetary values are shopspring decimals throughout; binary
// floats never enter an amount.
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"cartcalc/internal/common"
)

// Only plain decimal notation is allowed. Exponent forms, NaN, and stray
// characters are the door binary-float artifacts sneak in through.
var exactDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Parse converts an exact decimal string into a decimal amount. Inputs that
// are not plain decimal notation fail with INVALID_PRICE.
func Parse(s string) (decimal.Decimal, error) {
	if !exactDecimal.MatchString(s) {
		return decimal.Zero, common.NewAppError(common.CodeInvalidPrice, fmt.Sprintf("amount %q is not an exact decimal", s), nil)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewAppError(common.CodeInvalidPrice, fmt.Sprintf("amount %q is not an exact decimal", s), err)
	}
	return d, nil
}

// MustParse parses a trusted literal and panics on failure. For fixed
// configuration data only.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TruncateCent drops everything past the second decimal place: multiply by
// 100, truncate toward zero, divide by 100. A value ending exactly on a
// half-cent therefore lands one cent below round-half-up.
func TruncateCent(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
