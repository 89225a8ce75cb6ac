package server

import (
	"go.uber.org/zap"

	"github.com/coffer-dev/coffer/internal/money"
)

// LogPayer stands in for the external value-transfer channel: each outbound
// payment is acknowledged as a structured log entry. A deployment with a
// real payment rail swaps this for its own ledger.Payer.
type LogPayer struct {
	logger *zap.Logger
	places int32
}

// NewLogPayer creates a LogPayer rendering amounts at decimalPlaces.
func NewLogPayer(logger *zap.Logger, decimalPlaces int32) *LogPayer {
	return &LogPayer{logger: logger, places: decimalPlaces}
}

// Pay records the outbound transfer.
func (p *LogPayer) Pay(owner string, amount uint64) error {
	p.logger.Info("paid out",
		zap.String("owner", owner),
		zap.String("amount", money.Format(amount, p.places)),
	)
	return nil
}
