package ledger

import (
	"time"

	"github.com/coffer-dev/coffer/internal/id"
	"github.com/coffer-dev/coffer/internal/interest"
	"github.com/coffer-dev/coffer/internal/model"
)

// ApplyForLoan advances amount to owner on top of any outstanding
// principal and pays it out. There is no collateral requirement and no
// borrowing limit. Interest accrued on the existing principal is folded in
// before the new draw, so the anchor restart never erases accrual.
func (l *Ledger) ApplyForLoan(owner string, amount uint64) error {
	l.mu.Lock()
	if _, err := l.get(owner); err != nil {
		l.mu.Unlock()
		return err
	}
	if amount == 0 {
		l.mu.Unlock()
		return ErrZeroLoan
	}

	now := l.now()
	ln, ok := l.loans[owner]
	if !ok {
		ln = &model.Loan{Owner: owner, IssuedAt: now}
		l.loans[owner] = ln
	}

	total, err := checkedAdd(ln.Principal, l.accruedLoan(ln, now), amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	ln.Principal = total
	ln.IssuedAt = now
	l.mu.Unlock()

	return l.payout(owner, amount, func() {
		// Relative restore: only the failed advance comes back off the
		// debt. Anything a reentrant operation committed during the
		// payout stays. Clamped because a reentrant repayment may have
		// already cleared the principal.
		ln.Principal -= min(ln.Principal, amount)
	})
}

// RepayLoan settles owner's loan with the value sent. The payment must
// cover the principal plus accrued interest; the loan is zeroed before any
// excess is refunded, and the notifier fires exactly once on success.
// Returns the total retained.
func (l *Ledger) RepayLoan(owner string, sent uint64) (uint64, error) {
	l.mu.Lock()
	if _, err := l.get(owner); err != nil {
		l.mu.Unlock()
		return 0, err
	}

	ln := l.loans[owner]
	var principal uint64
	if ln != nil {
		principal = ln.Principal
	}
	if sent < principal {
		l.mu.Unlock()
		return 0, ErrInsufficientRepayment
	}

	now := l.now()
	owed, err := checkedAdd(principal, l.accruedLoan(ln, now))
	if err != nil {
		l.mu.Unlock()
		return 0, err
	}
	if sent < owed {
		l.mu.Unlock()
		return 0, ErrInsufficientRepaymentWithInterest
	}

	if ln != nil {
		ln.Principal = 0
		ln.IssuedAt = now
	}
	excess := sent - owed
	l.mu.Unlock()

	if excess > 0 {
		err := l.payout(owner, excess, func() {
			// Relative restore: the debt comes back as owed at the
			// restarted anchor, which preserves the accrued interest
			// without overwriting reentrant commits.
			if ln != nil {
				ln.Principal += owed
			}
		})
		if err != nil {
			return 0, err
		}
	}

	if l.notifier != nil {
		l.notifier.LoanRepaid(model.LoanRepaidEvent{
			ID:        id.NewEventID(),
			Owner:     owner,
			TotalPaid: owed,
			RepaidAt:  now,
		})
	}
	return owed, nil
}

// LoanInterest returns the interest accrued on owner's outstanding loan so
// far, without touching state.
func (l *Ledger) LoanInterest(owner string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.accruedLoan(l.loans[owner], l.now())
}

// accruedLoan computes loan interest since the anchor. Callers hold l.mu.
func (l *Ledger) accruedLoan(ln *model.Loan, now time.Time) uint64 {
	if ln == nil || !ln.Active() {
		return 0
	}
	return interest.Interest(ln.Principal, l.loanRate, elapsedSeconds(ln.IssuedAt, now))
}
