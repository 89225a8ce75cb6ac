// Package money converts between the decimal amount strings used at the API
// boundary and the unsigned integer base units the ledger stores.
package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Parse converts an amount string like "12.34" into base units at the given
// number of decimal places ("12.34" at 2 places -> 1234). Negative amounts
// and amounts with excess precision are rejected.
func Parse(s string, places int32) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}

	shifted := d.Shift(places)
	if !shifted.Equal(shifted.Floor()) {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, places)
	}

	units := shifted.BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("amount %q does not fit in 64 bits at %d decimal places", s, places)
	}
	return units.Uint64(), nil
}

// Format renders base units as a decimal string with the given number of
// decimal places (1234 at 2 places -> "12.34").
func Format(units uint64, places int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -places).StringFixed(places)
}
