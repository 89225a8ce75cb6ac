// Package interest implements the linear simple-interest formula shared by
// the fixed-deposit and loan instruments. All arithmetic is integer
// fixed-point with floor division, so results are bit-reproducible.
package interest

import "math/big"

const (
	// Scale retains sub-unit precision while the year fraction is carried
	// through integer arithmetic.
	Scale = 1_000_000_000_000_000_000

	// SecondsPerYear approximates a calendar year with leap adjustment
	// (365.25 days).
	SecondsPerYear = 31_557_600
)

// Default annual rates, percent per year.
const (
	DefaultFixedDepositRate = 10
	DefaultLoanRate         = 12
)

var (
	bigScale          = big.NewInt(Scale)
	bigSecondsPerYear = big.NewInt(SecondsPerYear)
	bigHundredScale   = new(big.Int).Mul(big.NewInt(100), bigScale)
)

// Interest returns the simple interest owed on principal at ratePercent per
// year after elapsedSeconds:
//
//	yearFraction = elapsedSeconds * Scale / SecondsPerYear
//	owed         = principal * ratePercent * yearFraction / (100 * Scale)
//
// Both divisions floor. Interest is pure: callers fold the result into
// stored principal or pay it out.
//
// If the exact result does not fit in 64 bits the maximum uint64 is
// returned; checked addition at the fold site then rejects the operation.
func Interest(principal, ratePercent, elapsedSeconds uint64) uint64 {
	if principal == 0 || ratePercent == 0 || elapsedSeconds == 0 {
		return 0
	}

	yearFraction := new(big.Int).SetUint64(elapsedSeconds)
	yearFraction.Mul(yearFraction, bigScale)
	yearFraction.Quo(yearFraction, bigSecondsPerYear)

	owed := new(big.Int).SetUint64(principal)
	owed.Mul(owed, new(big.Int).SetUint64(ratePercent))
	owed.Mul(owed, yearFraction)
	owed.Quo(owed, bigHundredScale)

	if !owed.IsUint64() {
		return ^uint64(0)
	}
	return owed.Uint64()
}
