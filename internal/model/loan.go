package model

import "time"

// Loan is an unsecured principal advanced to an identity. A record with
// zero principal means no active loan; entries are zeroed on full
// repayment, never deleted.
type Loan struct {
	Owner     string
	Principal uint64

	// IssuedAt anchors interest accrual for the loan. A further draw folds
	// accrued interest into the principal and restarts the anchor.
	IssuedAt time.Time
}

// Active reports whether any principal is outstanding.
func (l Loan) Active() bool {
	return l.Principal > 0
}
