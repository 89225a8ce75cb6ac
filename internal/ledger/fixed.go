package ledger

import (
	"time"

	"github.com/coffer-dev/coffer/internal/interest"
	"github.com/coffer-dev/coffer/internal/model"
)

// DepositFixed adds value received from owner to the fixed-deposit
// instrument. Interest accrued since the last touch is folded into the
// principal and the anchor restarts, so compounding happens only at touch
// points.
func (l *Ledger) DepositFixed(owner string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(owner)
	if err != nil {
		return err
	}
	if amount == 0 {
		return ErrZeroDeposit
	}

	now := l.now()
	total, err := checkedAdd(a.FixedDeposit, amount, l.accruedFixed(a, now))
	if err != nil {
		return err
	}
	a.FixedDeposit = total
	a.FixedDepositAt = now
	return nil
}

// WithdrawFixed closes the instrument: principal plus accrued interest is
// paid out and the position is zeroed before the payout starts. The anchor
// restarts so a later deposit cannot accrue across the closed period.
// Returns the amount paid.
func (l *Ledger) WithdrawFixed(owner string) (uint64, error) {
	l.mu.Lock()
	a, err := l.get(owner)
	if err != nil {
		l.mu.Unlock()
		return 0, err
	}
	if !a.HasFixedDeposit() {
		l.mu.Unlock()
		return 0, ErrNoFixedDeposit
	}

	now := l.now()
	total, err := checkedAdd(a.FixedDeposit, l.accruedFixed(a, now))
	if err != nil {
		l.mu.Unlock()
		return 0, err
	}
	a.FixedDeposit = 0
	a.FixedDepositAt = now
	l.mu.Unlock()

	err = l.payout(owner, total, func() {
		// Relative restore: a reentrant operation may have committed
		// during the payout. The accrued interest is already folded into
		// total and the anchor already restarted.
		a.FixedDeposit += total
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// FixedInterest returns the interest accrued on owner's fixed deposit so
// far, without touching state. An unregistered or empty position accrues
// nothing.
func (l *Ledger) FixedInterest(owner string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[owner]
	if !ok {
		return 0
	}
	return l.accruedFixed(a, l.now())
}

// accruedFixed computes fixed-deposit interest since the anchor. Callers
// hold l.mu.
func (l *Ledger) accruedFixed(a *model.Account, now time.Time) uint64 {
	return interest.Interest(a.FixedDeposit, l.fixedRate, elapsedSeconds(a.FixedDepositAt, now))
}
