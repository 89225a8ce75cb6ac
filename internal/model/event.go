package model

import "time"

// LoanRepaidEvent is emitted exactly once per successful loan repayment,
// after the loan has been zeroed and any excess refunded.
type LoanRepaidEvent struct {
	ID        string // ULID
	Owner     string
	TotalPaid uint64 // principal plus accrued interest actually retained
	RepaidAt  time.Time
}
