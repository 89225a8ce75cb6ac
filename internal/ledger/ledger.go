// Package ledger implements the single-writer accounting engine: account
// registration, balance operations, the fixed-deposit instrument, and the
// loan instrument, with lazily computed linear interest on both.
//
// Every public operation is one critical section under a single mutex:
// read, validate, mutate. Outbound value moves through the Payer only after
// the critical section ends, so a payer that re-enters the ledger observes
// the already-updated state.
package ledger

import (
	"fmt"
	"math/bits"
	"sync"
	"time"

	"github.com/coffer-dev/coffer/internal/interest"
	"github.com/coffer-dev/coffer/internal/model"
)

// Payer is the outbound value-transfer channel to an external payee. Pay is
// invoked with the ledger's own bookkeeping already settled.
type Payer interface {
	Pay(owner string, amount uint64) error
}

// Notifier receives the loan-repayment notification, exactly once per
// successful repayment.
type Notifier interface {
	LoanRepaid(model.LoanRepaidEvent)
}

// Config carries the tunable engine parameters. Zero values fall back to
// the defaults in the interest package and to time.Now.
type Config struct {
	FixedDepositRate uint64 // percent per year
	LoanRate         uint64 // percent per year
	Now              func() time.Time
}

// Ledger owns the account and loan maps behind a single mutex,
// reconstructing the host runtime's single-writer discipline.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
	loans    map[string]*model.Loan

	fixedRate uint64
	loanRate  uint64
	now       func() time.Time
	payer     Payer
	notifier  Notifier
}

// New creates an empty ledger wired to an outbound payment channel and a
// repayment notifier. notifier may be nil.
func New(cfg Config, payer Payer, notifier Notifier) *Ledger {
	if cfg.FixedDepositRate == 0 {
		cfg.FixedDepositRate = interest.DefaultFixedDepositRate
	}
	if cfg.LoanRate == 0 {
		cfg.LoanRate = interest.DefaultLoanRate
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Ledger{
		accounts:  make(map[string]*model.Account),
		loans:     make(map[string]*model.Loan),
		fixedRate: cfg.FixedDepositRate,
		loanRate:  cfg.LoanRate,
		now:       cfg.Now,
		payer:     payer,
		notifier:  notifier,
	}
}

// Register creates the account record for owner. Each identity registers at
// most once; there is no deregistration.
func (l *Ledger) Register(owner, name string, accountNumber uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[owner]; ok {
		return ErrAlreadyRegistered
	}
	now := l.now()
	l.accounts[owner] = &model.Account{
		Owner:          owner,
		Name:           name,
		AccountNumber:  accountNumber,
		FixedDepositAt: now,
		CreatedAt:      now,
	}
	return nil
}

// Deposit credits value received from owner to the spendable balance.
func (l *Ledger) Deposit(owner string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(owner)
	if err != nil {
		return err
	}
	b, err := checkedAdd(a.Balance, amount)
	if err != nil {
		return err
	}
	a.Balance = b
	return nil
}

// Withdraw debits the spendable balance, then sends the funds through the
// payer. The debit lands before the payout starts; a failed payout is
// compensated so the caller observes no net change.
func (l *Ledger) Withdraw(owner string, amount uint64) error {
	l.mu.Lock()
	a, err := l.get(owner)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if a.Balance < amount {
		l.mu.Unlock()
		return ErrInsufficientBalance
	}
	a.Balance -= amount
	l.mu.Unlock()

	return l.payout(owner, amount, func() {
		a.Balance += amount
	})
}

// Transfer moves amount between two registered accounts. No value leaves
// the ledger.
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, err := l.get(from)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return ErrInsufficientBalance
	}
	dst, ok := l.accounts[to]
	if !ok {
		return ErrRecipientNotRegistered
	}

	// Debit first so a self-transfer nets to zero.
	src.Balance -= amount
	b, err := checkedAdd(dst.Balance, amount)
	if err != nil {
		src.Balance += amount
		return err
	}
	dst.Balance = b
	return nil
}

// get returns the live account record for owner. Callers hold l.mu.
func (l *Ledger) get(owner string) (*model.Account, error) {
	a, ok := l.accounts[owner]
	if !ok {
		return nil, ErrNotRegistered
	}
	return a, nil
}

// payout sends amount through the payer. If the payout fails, restore runs
// under the mutex to put the moved funds back, and the payer's error is
// returned wrapped.
func (l *Ledger) payout(owner string, amount uint64, restore func()) error {
	if err := l.payer.Pay(owner, amount); err != nil {
		l.mu.Lock()
		restore()
		l.mu.Unlock()
		return fmt.Errorf("payout to %s: %w", owner, err)
	}
	return nil
}

func checkedAdd(terms ...uint64) (uint64, error) {
	var sum uint64
	for _, t := range terms {
		s, carry := bits.Add64(sum, t, 0)
		if carry != 0 {
			return 0, ErrAmountOverflow
		}
		sum = s
	}
	return sum, nil
}

// elapsedSeconds measures whole seconds from anchor to now, clamped at zero.
func elapsedSeconds(anchor, now time.Time) uint64 {
	d := now.Sub(anchor)
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Second)
}
