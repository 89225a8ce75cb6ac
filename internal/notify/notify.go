// Package notify delivers the ledger's loan-repayment notification.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/coffer-dev/coffer/internal/model"
)

// Log emits each loan repayment as a structured log entry.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

// LoanRepaid logs the repayment event.
func (n *Log) LoanRepaid(ev model.LoanRepaidEvent) {
	n.logger.Info("loan repaid",
		zap.String("event_id", ev.ID),
		zap.String("owner", ev.Owner),
		zap.Uint64("total_paid", ev.TotalPaid),
		zap.Time("repaid_at", ev.RepaidAt),
	)
}

// Recorder retains events in memory so callers can inspect what fired.
type Recorder struct {
	mu     sync.Mutex
	events []model.LoanRepaidEvent
}

// LoanRepaid records the event.
func (r *Recorder) LoanRepaid(ev model.LoanRepaidEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []model.LoanRepaidEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.LoanRepaidEvent, len(r.events))
	copy(out, r.events)
	return out
}
