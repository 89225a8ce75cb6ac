package model

import "time"

// Account is the ledger record for one registered identity. Owner and Name
// are set once at registration; amounts are unsigned integer base units.
type Account struct {
	Owner         string // identity key, equals the registry map key
	Name          string
	AccountNumber uint64 // opaque label, not validated for uniqueness

	Balance      uint64 // spendable funds
	FixedDeposit uint64 // principal locked in the fixed-deposit instrument

	// FixedDepositAt anchors interest accrual for the fixed deposit. It
	// restarts on every deposit into, or withdrawal of, the instrument.
	FixedDepositAt time.Time

	CreatedAt time.Time
}

// HasFixedDeposit reports whether any principal is locked in the
// fixed-deposit instrument.
func (a Account) HasFixedDeposit() bool {
	return a.FixedDeposit > 0
}
