package ledger

import (
	"sort"
	"time"

	"github.com/coffer-dev/coffer/internal/model"
)

// AccountSnapshot is a point-in-time copy of one account, its loan state,
// and the interest both instruments have accrued so far. Snapshots never
// alias live ledger state.
type AccountSnapshot struct {
	model.Account

	LoanPrincipal uint64
	LoanIssuedAt  time.Time

	FixedInterestAccrued uint64
	LoanInterestAccrued  uint64
}

// Account returns a snapshot of a single registered account.
func (l *Ledger) Account(owner string) (AccountSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(owner)
	if err != nil {
		return AccountSnapshot{}, err
	}
	return l.snapshot(a, l.now()), nil
}

// Snapshot returns copies of every account, ordered by owner, for invariant
// checking and reporting.
func (l *Ledger) Snapshot() []AccountSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	snaps := make([]AccountSnapshot, 0, len(l.accounts))
	for _, a := range l.accounts {
		snaps = append(snaps, l.snapshot(a, now))
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Owner < snaps[j].Owner })
	return snaps
}

// Check validates the ledger's structural invariants as of now.
func (l *Ledger) Check() []ValidationError {
	return Validate(l.Snapshot(), l.now())
}

// snapshot copies one account record. Callers hold l.mu.
func (l *Ledger) snapshot(a *model.Account, now time.Time) AccountSnapshot {
	s := AccountSnapshot{
		Account:              *a,
		FixedInterestAccrued: l.accruedFixed(a, now),
	}
	if ln, ok := l.loans[a.Owner]; ok {
		s.LoanPrincipal = ln.Principal
		s.LoanIssuedAt = ln.IssuedAt
		s.LoanInterestAccrued = l.accruedLoan(ln, now)
	}
	return s
}
