package ledger

import (
	"fmt"
	"time"
)

// ValidationError describes a single invariant violation in a ledger
// snapshot.
type ValidationError struct {
	Invariant   int
	Owner       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Owner, e.Description)
}

// Validate enforces 4 invariants on a set of account snapshots taken at
// asOf.
func Validate(snaps []AccountSnapshot, asOf time.Time) []ValidationError {
	var errs []ValidationError

	for _, s := range snaps {
		// Invariant 1: identity and display name are set.
		if s.Owner == "" {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Owner:       s.Owner,
				Description: "account has empty owner",
			})
		}
		if s.Name == "" {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Owner:       s.Owner,
				Description: "account has empty name",
			})
		}

		// Invariant 2: anchors never lie in the future.
		if s.FixedDepositAt.After(asOf) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Owner:       s.Owner,
				Description: fmt.Sprintf("fixed-deposit anchor %s is in the future", s.FixedDepositAt.Format(time.RFC3339)),
			})
		}
		if s.CreatedAt.After(asOf) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Owner:       s.Owner,
				Description: fmt.Sprintf("creation time %s is in the future", s.CreatedAt.Format(time.RFC3339)),
			})
		}

		// Invariant 3: an active loan has a sane anchor.
		if s.LoanPrincipal > 0 && s.LoanIssuedAt.After(asOf) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Owner:       s.Owner,
				Description: fmt.Sprintf("loan anchor %s is in the future", s.LoanIssuedAt.Format(time.RFC3339)),
			})
		}

		// Invariant 4: interest is derived, so empty positions accrue none.
		if !s.HasFixedDeposit() && s.FixedInterestAccrued != 0 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Owner:       s.Owner,
				Description: "empty fixed deposit has accrued interest",
			})
		}
		if s.LoanPrincipal == 0 && s.LoanInterestAccrued != 0 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Owner:       s.Owner,
				Description: "zero loan has accrued interest",
			})
		}
	}

	return errs
}
