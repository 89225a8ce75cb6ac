package ledger

import "errors"

// Precondition failures. Every operation validates before it mutates, so any
// of these means the ledger state is exactly as it was before the call.
var (
	ErrAlreadyRegistered      = errors.New("account already registered")
	ErrNotRegistered          = errors.New("account not registered")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrRecipientNotRegistered = errors.New("recipient not registered")
	ErrZeroDeposit            = errors.New("fixed deposit amount must be positive")
	ErrNoFixedDeposit         = errors.New("no fixed deposit to withdraw")
	ErrZeroLoan               = errors.New("loan amount must be positive")
	ErrInsufficientRepayment  = errors.New("repayment is less than loan principal")

	// ErrInsufficientRepaymentWithInterest means the repayment covered the
	// principal but not the interest accrued on it.
	ErrInsufficientRepaymentWithInterest = errors.New("repayment does not cover principal plus interest")

	// ErrAmountOverflow rejects any operation whose result would no longer
	// fit in 64 bits instead of wrapping.
	ErrAmountOverflow = errors.New("amount exceeds representable range")
)
